// Command desktop runs Galaxy Invaders in a native window with software
// synthesized audio.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/galaxy-invaders/audio"
	"github.com/simukka/galaxy-invaders/audio/synth"
	"github.com/simukka/galaxy-invaders/common"
	"github.com/simukka/galaxy-invaders/game"
)

var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyA:          game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyD:          game.KeyRight,
	ebiten.KeySpace:      game.KeyFire,
	ebiten.KeyArrowUp:    game.KeySpeedUp,
	ebiten.KeyArrowDown:  game.KeySpeedDown,
	ebiten.KeyR:          game.KeyRestart,
	ebiten.KeyF10:        game.KeyStats,
}

// window drives the game from ebiten's update and draw callbacks.
type window struct {
	g       *game.Game
	surface *screenSurface
}

func (w *window) Update() error {
	for ek, k := range keyMap {
		if inpututil.IsKeyJustPressed(ek) {
			w.g.KeyDown(k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			w.g.KeyUp(k)
		}
	}
	w.g.Stats.CurrentFPS = ebiten.ActualFPS()
	w.g.Update()
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	w.surface.dst = screen
	w.g.Render(w.surface)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.WIDTH, game.HEIGHT
}

func loadSprite(dir, path string) game.Sprite {
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, path))
	if err != nil {
		log.Printf("load %s: %v", path, err)
		return nil
	}
	return &sprite{img: img}
}

// newSound builds the audio controller. Muted or failed output yields a
// controller with no graph, which stays silent.
func newSound(assets string, mute bool) (*audio.Controller, func()) {
	logger := log.New(os.Stderr, "[audio] ", log.LstdFlags)
	if mute {
		return audio.NewController(nil, audio.DefaultConfig, logger), func() {}
	}

	eng := synth.New(synth.DefaultSampleRate)
	eng.Logger = logger
	eng.Open = func(path string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(assets, path))
	}
	sr := eng.SampleRate()
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		logger.Printf("speaker init: %v, running silent", err)
		return audio.NewController(nil, audio.DefaultConfig, logger), func() {}
	}
	speaker.Play(eng)

	cfg := audio.DefaultConfig
	cfg.UnlockOnGesture = false
	return audio.NewController(eng, cfg, logger), func() {
		eng.Close()
		speaker.Close()
	}
}

func main() {
	assets := flag.String("assets", common.GetEnv("INVADERS_ASSETS", "."), "Directory holding the assets/ folder")
	mute := flag.Bool("mute", false, "Disable audio output")
	debug := flag.Bool("debug", false, "Log game events")
	flag.Parse()

	game.EnableDebug = *debug

	sound, closeAudio := newSound(*assets, *mute)
	defer closeAudio()
	defer sound.Close()

	g := game.NewGame(sound)
	g.PlayerSprite = loadSprite(*assets, game.PlayerSpritePath)
	g.EnemySprite = loadSprite(*assets, game.EnemySpritePath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g.Start(ctx)

	ebiten.SetWindowSize(game.WIDTH, game.HEIGHT)
	ebiten.SetWindowTitle("Galaxy Invaders")
	if err := ebiten.RunGame(&window{g: g, surface: &screenSurface{faces: newFaces()}}); err != nil {
		log.Fatal(err)
	}
}
