package synth

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/simukka/galaxy-invaders/audio"
)

var errReleased = errors.New("synth: track released")

// OpenTrack opens and decodes a music asset, wrapped for looping, resampling
// and volume. The track is added to the mix paused.
func (e *Engine) OpenTrack(ctx context.Context, path string, opts audio.TrackOptions) (audio.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := e.Open(path)
	if err != nil {
		return nil, err
	}
	src, format, err := e.Decode(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decode: %w", err)
	}

	var s beep.Streamer = src
	if opts.Loop {
		s = beep.Loop(-1, src)
	}
	if format.SampleRate != e.sr {
		s = beep.Resample(4, format.SampleRate, e.sr, s)
	}
	vol := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(opts.Volume),
		Silent:   opts.Volume <= 0,
	}
	return &track{
		eng:  e,
		src:  src,
		ctrl: &beep.Ctrl{Streamer: vol, Paused: true},
	}, nil
}

type track struct {
	eng      *Engine
	src      beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	added    bool
	released bool
}

func (t *track) Play(ctx context.Context) error {
	t.eng.mu.Lock()
	defer t.eng.mu.Unlock()
	if t.released {
		return errReleased
	}
	if t.eng.state == audio.Closed {
		return audio.ErrNoAudio
	}
	if !t.added {
		t.eng.music.Add(t.ctrl)
		t.added = true
	}
	t.ctrl.Paused = false
	return nil
}

func (t *track) Pause() {
	t.eng.mu.Lock()
	defer t.eng.mu.Unlock()
	t.ctrl.Paused = true
}

func (t *track) Rewind() {
	t.eng.mu.Lock()
	defer t.eng.mu.Unlock()
	if t.released {
		return
	}
	if err := t.src.Seek(0); err != nil {
		t.eng.Logger.Printf("rewind: %v", err)
	}
}

// Release detaches the track from the mix and closes the decoder.
func (t *track) Release() {
	t.eng.mu.Lock()
	defer t.eng.mu.Unlock()
	if t.released {
		return
	}
	t.released = true
	t.ctrl.Paused = true
	t.ctrl.Streamer = nil
	t.src.Close()
}
