//go:build js
// +build js

package main

import (
	"context"
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/galaxy-invaders/audio"
	"github.com/simukka/galaxy-invaders/game"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "gameCanvas")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	game.EnableDebug = strings.Contains(js.Global.Get("location").Get("search").String(), "debug")

	cfg := audio.DefaultConfig
	var graph audio.Graph
	if wg, err := audio.NewWebGraph(); err != nil {
		game.DebugError("audio unavailable, running silent:", err)
	} else {
		graph = wg
	}
	sound := audio.NewController(graph, cfg, nil)

	g := game.NewGame(sound)
	g.PlayerSprite = game.LoadImage(game.PlayerSpritePath)
	g.EnemySprite = game.LoadImage(game.EnemySpritePath)

	var onGesture func()
	if cfg.UnlockOnGesture {
		onGesture = sound.Unlock
	}
	g.SetupInputHandlers(onGesture)

	ctx, cancel := context.WithCancel(context.Background())
	js.Global.Call("addEventListener", "beforeunload", func() {
		cancel()
		sound.Close()
	})

	g.Start(ctx)
	g.Run(game.NewCanvasSurface(canvas))

	select {}
}
