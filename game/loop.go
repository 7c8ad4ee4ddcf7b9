//go:build js
// +build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// Run starts the requestAnimationFrame loop drawing onto surface.
func (g *Game) Run(surface Surface) {
	// Cancel existing animation frame
	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
	}
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", func(t float64) {
		g.GameLoopRAF(surface, t)
	}).Int()
}

// GameLoopRAF is the main game loop using requestAnimationFrame.
func (g *Game) GameLoopRAF(surface Surface, currentTime float64) {
	// Schedule next frame
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", func(t float64) {
		g.GameLoopRAF(surface, t)
	}).Int()

	// Fixed timestep so high refresh displays do not speed the game up
	if currentTime-g.LastFrameTime < FrameDuration {
		return
	}
	g.LastFrameTime = currentTime
	g.Stats.UpdateFPS(currentTime)

	g.Update()
	g.Render(surface)
}
