package synth

import (
	"math"

	"github.com/simukka/galaxy-invaders/audio"
)

// source is a node that yields one mono sample per frame. Results are cached
// per frame so a node feeding several outputs advances only once.
type source interface {
	sample(frame int64, t float64) float64
	finished(t float64) bool
}

// sink accepts connections from sources.
type sink interface {
	addInput(src source)
}

type event struct {
	exp   bool
	value float64
	at    float64
}

// param is an automation timeline plus audio-rate modulation inputs.
type param struct {
	eng          *Engine
	defaultValue float64
	events       []event
	inputs       []source
}

func (p *param) SetValueAtTime(value, at float64) {
	p.eng.mu.Lock()
	defer p.eng.mu.Unlock()
	p.insert(event{value: value, at: at})
}

func (p *param) ExponentialRampToValueAtTime(value, at float64) {
	p.eng.mu.Lock()
	defer p.eng.mu.Unlock()
	p.insert(event{exp: true, value: value, at: at})
}

// insert keeps events ordered by time; equal times keep insertion order.
func (p *param) insert(ev event) {
	i := len(p.events)
	for i > 0 && p.events[i-1].at > ev.at {
		i--
	}
	p.events = append(p.events, event{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = ev
}

// base returns the automated value at t, ignoring modulation.
func (p *param) base(t float64) float64 {
	v := p.defaultValue
	t0 := 0.0
	for _, ev := range p.events {
		if ev.at <= t {
			v, t0 = ev.value, ev.at
			continue
		}
		if ev.exp {
			return expRamp(v, ev.value, t0, ev.at, t)
		}
		return v
	}
	return v
}

func (p *param) value(frame int64, t float64) float64 {
	v := p.base(t)
	for _, in := range p.inputs {
		v += in.sample(frame, t)
	}
	return v
}

// compact drops events that can no longer affect values at or after t.
func (p *param) compact(t float64) {
	last := -1
	for i, ev := range p.events {
		if ev.at > t {
			break
		}
		last = i
	}
	if last > 0 {
		p.events = append(p.events[:0], p.events[last:]...)
	}
}

// expRamp interpolates exponentially from v0 at t0 to v1 at t1. Ramps between
// values of different sign, or from zero, hold v0.
func expRamp(v0, v1, t0, t1, t float64) float64 {
	if v0 == 0 || v0*v1 <= 0 || t1 <= t0 {
		return v0
	}
	return v0 * math.Pow(v1/v0, (t-t0)/(t1-t0))
}

type oscillator struct {
	eng   *Engine
	wave  audio.Waveform
	freq  *param
	start float64
	stop  float64
	phase float64

	lastFrame int64
	last      float64
}

func (o *oscillator) Frequency() audio.Param { return o.freq }

func (o *oscillator) Start(at float64) {
	o.eng.mu.Lock()
	o.start = at
	o.eng.mu.Unlock()
}

func (o *oscillator) Stop(at float64) {
	o.eng.mu.Lock()
	o.stop = at
	o.eng.mu.Unlock()
}

func (o *oscillator) Connect(dst audio.Node) { o.eng.connect(o, dst) }
func (o *oscillator) ConnectParam(dst audio.Param) { o.eng.connectParam(o, dst) }

func (o *oscillator) sample(frame int64, t float64) float64 {
	if frame == o.lastFrame {
		return o.last
	}
	o.lastFrame = frame
	if t < o.start || t >= o.stop {
		o.last = 0
		return 0
	}

	var v float64
	switch o.wave {
	case audio.Square:
		if o.phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	case audio.Sawtooth:
		v = 2*o.phase - 1
	case audio.Triangle:
		v = 4*math.Abs(o.phase-0.5) - 1
	default:
		v = math.Sin(2 * math.Pi * o.phase)
	}

	f := o.freq.value(frame, t)
	o.phase += f / float64(o.eng.sr)
	o.phase -= math.Floor(o.phase)
	o.last = v
	return v
}

func (o *oscillator) finished(t float64) bool {
	return t >= o.stop
}

type gainNode struct {
	eng    *Engine
	gain   *param
	inputs []source

	lastFrame int64
	last      float64
}

func (g *gainNode) Gain() audio.Param { return g.gain }

func (g *gainNode) Connect(dst audio.Node) { g.eng.connect(g, dst) }
func (g *gainNode) ConnectParam(dst audio.Param) { g.eng.connectParam(g, dst) }

func (g *gainNode) addInput(src source) {
	g.inputs = append(g.inputs, src)
}

func (g *gainNode) sample(frame int64, t float64) float64 {
	if frame == g.lastFrame {
		return g.last
	}
	g.lastFrame = frame
	var sum float64
	for _, in := range g.inputs {
		sum += in.sample(frame, t)
	}
	g.last = sum * g.gain.value(frame, t)
	return g.last
}

func (g *gainNode) finished(t float64) bool {
	for _, in := range g.inputs {
		if !in.finished(t) {
			return false
		}
	}
	return true
}

// bus is the destination: it sums its inputs and drops finished ones.
type bus struct {
	inputs []source
}

func (b *bus) Connect(dst audio.Node) {}
func (b *bus) ConnectParam(dst audio.Param) {}

func (b *bus) addInput(src source) {
	b.inputs = append(b.inputs, src)
}

func (b *bus) sample(frame int64, t float64) float64 {
	var sum float64
	for _, in := range b.inputs {
		sum += in.sample(frame, t)
	}
	return sum
}

func (b *bus) prune(t float64) {
	kept := b.inputs[:0]
	for _, in := range b.inputs {
		if !in.finished(t) {
			kept = append(kept, in)
			compactParams(in, t)
		}
	}
	for i := len(kept); i < len(b.inputs); i++ {
		b.inputs[i] = nil
	}
	b.inputs = kept
}

// compactParams trims automation events on src and everything feeding it.
func compactParams(src source, t float64) {
	switch n := src.(type) {
	case *oscillator:
		n.freq.compact(t)
		for _, in := range n.freq.inputs {
			compactParams(in, t)
		}
	case *gainNode:
		n.gain.compact(t)
		for _, in := range n.gain.inputs {
			compactParams(in, t)
		}
		for _, in := range n.inputs {
			compactParams(in, t)
		}
	}
}
