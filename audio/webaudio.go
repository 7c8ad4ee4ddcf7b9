//go:build js
// +build js

package audio

import (
	"context"
	"fmt"
	"log"

	"github.com/gopherjs/gopherjs/js"
)

// WebGraph binds Graph to a browser AudioContext.
type WebGraph struct {
	ctx *js.Object
}

// NewWebGraph creates the shared AudioContext.
func NewWebGraph() (*WebGraph, error) {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil, ErrNoAudio
	}
	return &WebGraph{ctx: ctor.New()}, nil
}

// State maps AudioContext.state.
func (g *WebGraph) State() State {
	switch g.ctx.Get("state").String() {
	case "running":
		return Running
	case "closed":
		return Closed
	default:
		return Suspended
	}
}

// Resume awaits AudioContext.resume().
func (g *WebGraph) Resume(ctx context.Context) error {
	_, err := await(ctx, g.ctx.Call("resume"))
	return err
}

func (g *WebGraph) CurrentTime() float64 {
	return g.ctx.Get("currentTime").Float()
}

func (g *WebGraph) Destination() Node {
	return &webNode{obj: g.ctx.Get("destination")}
}

func (g *WebGraph) NewOscillator(wave Waveform) Oscillator {
	osc := g.ctx.Call("createOscillator")
	osc.Set("type", wave.String())
	return &webOscillator{webNode{obj: osc}}
}

func (g *WebGraph) NewGain() GainNode {
	return &webGain{webNode{obj: g.ctx.Call("createGain")}}
}

// OpenTrack fetches the asset as a blob and hands a blob URL to an
// HTMLAudioElement.
func (g *WebGraph) OpenTrack(ctx context.Context, path string, opts TrackOptions) (Track, error) {
	resp, err := await(ctx, js.Global.Call("fetch", path))
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if !resp.Get("ok").Bool() {
		return nil, fmt.Errorf("fetch: HTTP %d", resp.Get("status").Int())
	}
	blob, err := await(ctx, resp.Call("blob"))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	url := js.Global.Get("URL").Call("createObjectURL", blob).String()
	el := js.Global.Get("Audio").New(url)
	el.Set("loop", opts.Loop)
	el.Set("volume", opts.Volume)
	el.Call("addEventListener", "canplaythrough", func() {
		log.Print("[audio] Music loaded (canplaythrough)")
	})
	el.Call("addEventListener", "error", func(e *js.Object) {
		log.Print("[audio] Music failed to load")
	})
	return &webTrack{el: el, url: url}, nil
}

// jsBacked is implemented by every node and param of this backend.
type jsBacked interface {
	object() *js.Object
}

type webNode struct {
	obj *js.Object
}

func (n *webNode) object() *js.Object { return n.obj }

func (n *webNode) Connect(dst Node) {
	if b, ok := dst.(jsBacked); ok {
		n.obj.Call("connect", b.object())
	}
}

func (n *webNode) ConnectParam(dst Param) {
	if b, ok := dst.(jsBacked); ok {
		n.obj.Call("connect", b.object())
	}
}

type webParam struct {
	obj *js.Object
}

func (p *webParam) object() *js.Object { return p.obj }

func (p *webParam) SetValueAtTime(value, at float64) {
	p.obj.Call("setValueAtTime", value, at)
}

func (p *webParam) ExponentialRampToValueAtTime(value, at float64) {
	p.obj.Call("exponentialRampToValueAtTime", value, at)
}

type webOscillator struct {
	webNode
}

func (o *webOscillator) Frequency() Param { return &webParam{obj: o.obj.Get("frequency")} }
func (o *webOscillator) Start(at float64) { o.obj.Call("start", at) }
func (o *webOscillator) Stop(at float64)  { o.obj.Call("stop", at) }

type webGain struct {
	webNode
}

func (g *webGain) Gain() Param { return &webParam{obj: g.obj.Get("gain")} }

type webTrack struct {
	el  *js.Object
	url string
}

func (t *webTrack) Play(ctx context.Context) error {
	_, err := await(ctx, t.el.Call("play"))
	return err
}

func (t *webTrack) Pause()  { t.el.Call("pause") }
func (t *webTrack) Rewind() { t.el.Set("currentTime", 0) }

func (t *webTrack) Release() {
	js.Global.Get("URL").Call("revokeObjectURL", t.url)
}

// await blocks the calling goroutine until promise settles. It must not be
// called directly from a JS callback.
func await(ctx context.Context, promise *js.Object) (*js.Object, error) {
	type result struct {
		val *js.Object
		err error
	}
	ch := make(chan result, 1)
	promise.Call("then",
		func(v *js.Object) { ch <- result{val: v} },
		func(e *js.Object) { ch <- result{err: &js.Error{Object: e}} },
	)
	select {
	case r := <-ch:
		return r.val, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
