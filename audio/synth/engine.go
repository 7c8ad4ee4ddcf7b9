// Package synth renders the audio graph in software on top of beep, for the
// native build and for tests.
package synth

import (
	"context"
	"io"
	"log"
	"math"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"

	"github.com/simukka/galaxy-invaders/audio"
)

// DefaultSampleRate is the engine rate used by the desktop build.
const DefaultSampleRate = beep.SampleRate(44100)

// Engine is an audio.Graph that is also a beep.Streamer. Play it through
// speaker.Play, or pull samples from it directly.
type Engine struct {
	// Open opens a track asset. Defaults to os.Open.
	Open func(path string) (io.ReadCloser, error)
	// Decode decodes an opened asset. Defaults to mp3.Decode.
	Decode func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
	// Logger receives decoder errors that have no caller to return to.
	Logger *log.Logger

	mu    sync.Mutex
	sr    beep.SampleRate
	state audio.State
	frame int64
	dest  *bus
	music *beep.Mixer
}

var (
	_ audio.Graph   = (*Engine)(nil)
	_ beep.Streamer = (*Engine)(nil)
)

// New creates a running engine at sample rate sr.
func New(sr beep.SampleRate) *Engine {
	return &Engine{
		Open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		Decode: mp3.Decode,
		Logger: log.New(os.Stderr, "[audio] ", log.LstdFlags),
		sr:     sr,
		state:  audio.Running,
		dest:   &bus{},
		music:  &beep.Mixer{},
	}
}

// SampleRate returns the engine rate.
func (e *Engine) SampleRate() beep.SampleRate {
	return e.sr
}

func (e *Engine) State() audio.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Suspend freezes the clock and silences output until Resume.
func (e *Engine) Suspend() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == audio.Running {
		e.state = audio.Suspended
	}
}

func (e *Engine) Resume(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case audio.Closed:
		return audio.ErrNoAudio
	case audio.Suspended:
		e.state = audio.Running
	}
	return nil
}

// Close silences the engine permanently.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = audio.Closed
	e.dest.inputs = nil
	e.music.Clear()
}

func (e *Engine) CurrentTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now()
}

func (e *Engine) now() float64 {
	return float64(e.frame) / float64(e.sr)
}

func (e *Engine) Destination() audio.Node {
	return e.dest
}

func (e *Engine) NewOscillator(wave audio.Waveform) audio.Oscillator {
	return &oscillator{
		eng:       e,
		wave:      wave,
		freq:      &param{eng: e, defaultValue: 440},
		start:     math.Inf(1),
		stop:      math.Inf(1),
		lastFrame: -1,
	}
}

func (e *Engine) NewGain() audio.GainNode {
	return &gainNode{
		eng:       e,
		gain:      &param{eng: e, defaultValue: 1},
		lastFrame: -1,
	}
}

func (e *Engine) connect(src source, dst audio.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := dst.(sink); ok {
		s.addInput(src)
	}
}

func (e *Engine) connectParam(src source, dst audio.Param) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok := dst.(*param); ok {
		p.inputs = append(p.inputs, src)
	}
}

// Voices returns the number of nodes still routed into the destination.
func (e *Engine) Voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.dest.inputs)
}

// Stream implements beep.Streamer. Graph output is mono, copied to both
// channels and mixed over the music tracks.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != audio.Running {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	e.music.Stream(samples)
	for i := range samples {
		v := e.dest.sample(e.frame, e.now())
		samples[i][0] += v
		samples[i][1] += v
		e.frame++
	}
	e.dest.prune(e.now())
	return len(samples), true
}

func (e *Engine) Err() error {
	return nil
}

// Tracks returns the number of music tracks in the mix.
func (e *Engine) Tracks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.music.Len()
}
