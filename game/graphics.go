//go:build js
// +build js

package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// CanvasSurface draws onto a 2-D canvas context.
type CanvasSurface struct {
	Ctx *js.Object
}

var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface sizes canvas to the playfield and wraps its 2-D context.
func NewCanvasSurface(canvas *js.Object) *CanvasSurface {
	canvas.Set("width", WIDTH)
	canvas.Set("height", HEIGHT)
	return &CanvasSurface{Ctx: canvas.Call("getContext", "2d")}
}

func (c *CanvasSurface) Clear(color string) {
	c.Ctx.Set("fillStyle", color)
	c.Ctx.Call("fillRect", 0, 0, WIDTH, HEIGHT)
}

func (c *CanvasSurface) FillRect(r Rect, color string) {
	c.Ctx.Set("fillStyle", color)
	c.Ctx.Call("fillRect", r.X, r.Y, r.W, r.H)
}

func (c *CanvasSurface) DrawImage(img Sprite, r Rect) {
	if s, ok := img.(*ImageSprite); ok {
		c.Ctx.Call("drawImage", s.Image, r.X, r.Y, r.W, r.H)
	}
}

func (c *CanvasSurface) FillText(text string, x, y float64, font Font, color string) {
	c.Ctx.Set("fillStyle", color)
	c.Ctx.Set("font", strconv.Itoa(font.Size)+"px "+font.Family)
	if font.Align == AlignCenter {
		c.Ctx.Set("textAlign", "center")
	} else {
		c.Ctx.Set("textAlign", "left")
	}
	c.Ctx.Call("fillText", text, x, y)
}

// ImageSprite is an HTMLImageElement that reports when it has loaded.
type ImageSprite struct {
	Image  *js.Object
	loaded bool
}

func (s *ImageSprite) Loaded() bool {
	return s.loaded
}

// LoadImage starts loading src. Until it loads, or if it fails, the sprite
// renders as its fallback rectangle.
func LoadImage(src string) *ImageSprite {
	s := &ImageSprite{Image: js.Global.Get("Image").New()}
	s.Image.Set("onload", func() {
		s.loaded = true
		Debug("Loaded", src)
	})
	s.Image.Set("onerror", func() {
		DebugWarn("Failed to load", src)
	})
	s.Image.Set("src", src)
	return s
}
