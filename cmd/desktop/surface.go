package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/simukka/galaxy-invaders/game"
)

// sprite is an ebiten image loaded from the assets directory.
type sprite struct {
	img *ebiten.Image
}

func (s *sprite) Loaded() bool {
	return s != nil && s.img != nil
}

// faces caches one Go Regular face per pixel size.
type faces struct {
	tt    *opentype.Font
	sizes map[int]font.Face
}

func newFaces() *faces {
	f := &faces{sizes: make(map[int]font.Face)}
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v, falling back to basicfont", err)
		return f
	}
	f.tt = tt
	return f
}

func (f *faces) face(size int) font.Face {
	if face, ok := f.sizes[size]; ok {
		return face
	}
	if f.tt == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("font size %d: %v", size, err)
		face = basicfont.Face7x13
	}
	f.sizes[size] = face
	return face
}

// screenSurface adapts an ebiten frame to game.Surface.
type screenSurface struct {
	dst   *ebiten.Image
	faces *faces
}

var _ game.Surface = (*screenSurface)(nil)

// resolve maps a CSS color name to RGBA. Unknown names draw magenta so they
// stand out.
func resolve(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Magenta
}

func (s *screenSurface) Clear(name string) {
	s.dst.Fill(resolve(name))
}

func (s *screenSurface) FillRect(r game.Rect, name string) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), resolve(name), false)
}

func (s *screenSurface) DrawImage(img game.Sprite, r game.Rect) {
	sp, ok := img.(*sprite)
	if !ok || !sp.Loaded() {
		return
	}
	b := sp.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	s.dst.DrawImage(sp.img, op)
}

func (s *screenSurface) FillText(str string, x, y float64, f game.Font, name string) {
	face := s.faces.face(f.Size)
	if f.Align == game.AlignCenter {
		x -= float64(font.MeasureString(face, str).Round()) / 2
	}
	text.Draw(s.dst, str, face, int(x), int(y), resolve(name))
}
