package audio

import (
	"context"
	"errors"
)

// ErrNoAudio is returned by backends when no audio device or context exists.
var ErrNoAudio = errors.New("audio: no audio context available")

// State is the running state of a Graph.
type State int

const (
	Suspended State = iota
	Running
	Closed
)

func (s State) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Waveform is the periodic wave an Oscillator produces.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

// String returns the Web Audio OscillatorType name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return "sine"
	}
}

// Param is an automatable value on a node, in seconds of graph time.
type Param interface {
	SetValueAtTime(value, at float64)
	ExponentialRampToValueAtTime(value, at float64)
}

// Node is anything that produces a signal and can be routed.
type Node interface {
	// Connect routes this node's output into dst.
	Connect(dst Node)
	// ConnectParam routes this node's output into a param, modulating it.
	ConnectParam(dst Param)
}

// Oscillator is a periodic source node.
type Oscillator interface {
	Node
	Frequency() Param
	Start(at float64)
	Stop(at float64)
}

// GainNode scales its summed inputs.
type GainNode interface {
	Node
	Gain() Param
}

// Track is a streamed, decoded music asset.
type Track interface {
	// Play starts playback. Browsers may reject it without a user gesture.
	Play(ctx context.Context) error
	Pause()
	Rewind()
	// Release frees the underlying handle. The track is unusable afterwards.
	Release()
}

// TrackOptions configure OpenTrack.
type TrackOptions struct {
	Loop   bool
	Volume float64
}

// Graph is the synthesis context shared by all sounds.
type Graph interface {
	State() State
	Resume(ctx context.Context) error
	// CurrentTime is the graph clock in seconds.
	CurrentTime() float64
	Destination() Node
	NewOscillator(wave Waveform) Oscillator
	NewGain() GainNode
	// OpenTrack fetches and decodes the asset at path. It may block.
	OpenTrack(ctx context.Context, path string, opts TrackOptions) (Track, error)
}
