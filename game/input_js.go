//go:build js
// +build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// SetupInputHandlers initializes keyboard event handlers. onGesture, if not
// nil, runs once on the first key or mouse press.
func (g *Game) SetupInputHandlers(onGesture func()) {
	doc := js.Global.Get("document")

	gesture := func() {
		if onGesture != nil {
			onGesture()
			onGesture = nil
		}
	}

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		gesture()
		k, ok := KeyFromCode(event.Get("code").String())
		if !ok {
			return
		}
		// Keep arrows and space from scrolling the page; R stays free for reload
		if k != KeyRestart {
			event.Call("preventDefault")
		}
		g.KeyDown(k)
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		if k, ok := KeyFromCode(event.Get("code").String()); ok {
			g.KeyUp(k)
		}
	})

	doc.Call("addEventListener", "mousedown", func(event *js.Object) {
		gesture()
	})
}
