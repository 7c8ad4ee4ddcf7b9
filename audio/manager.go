package audio

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
)

// Controller owns the shared synthesis graph and the optional background
// drone and music handles. All methods are safe to call from the frame loop.
type Controller struct {
	graph  Graph
	cfg    Config
	logger *log.Logger

	mu       sync.Mutex
	drone    *drone
	music     Track
	loading   bool
	wantMusic bool // last StartMusic/StopMusic decides what a finished load does
	unlocked  bool
}

// drone is the wobbling background tone: osc -> gain -> destination with
// lfo -> lfoGain -> osc.frequency.
type drone struct {
	osc     Oscillator
	gain    GainNode
	lfo     Oscillator
	lfoGain GainNode
}

// NewController creates a controller over graph. A nil graph yields a
// controller whose operations are silent no-ops.
func NewController(graph Graph, cfg Config, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(os.Stderr, "[audio] ", log.LstdFlags)
	}
	return &Controller{
		graph:  graph,
		cfg:    cfg,
		logger: logger,
	}
}

// Available reports whether the controller has a device to play on.
func (c *Controller) Available() bool {
	return c.graph != nil
}

// PlaySfx schedules the preset tone for e. It never blocks and never fails
// loudly.
func (c *Controller) PlaySfx(e Effect) {
	if c.graph == nil {
		return
	}
	tone, ok := GetTone(e)
	if !ok {
		return
	}
	c.playTone(tone)
}

func (c *Controller) playTone(t Tone) {
	now := c.graph.CurrentTime()
	osc := c.graph.NewOscillator(t.Wave)
	gain := c.graph.NewGain()

	osc.Frequency().SetValueAtTime(t.StartFreq, now)
	gain.Gain().SetValueAtTime(t.Volume, now)

	osc.Frequency().ExponentialRampToValueAtTime(t.EndFreq, now+t.Duration)
	gain.Gain().ExponentialRampToValueAtTime(c.cfg.ToneFloor, now+t.Duration)

	osc.Connect(gain)
	gain.Connect(c.graph.Destination())
	osc.Start(now)
	osc.Stop(now + t.Duration + c.cfg.ToneTail)
}

// Unlock resumes a suspended graph. Only the first call has any effect; it is
// meant to be wired to the first user gesture.
func (c *Controller) Unlock() {
	if c.graph == nil {
		return
	}
	c.mu.Lock()
	if c.unlocked {
		c.mu.Unlock()
		return
	}
	c.unlocked = true
	c.mu.Unlock()

	go c.resumeLogged(context.Background())
}

// resume resumes the graph if it is suspended.
func (c *Controller) resume(ctx context.Context) error {
	if c.graph.State() != Suspended {
		return nil
	}
	if err := c.graph.Resume(ctx); err != nil {
		return fmt.Errorf("resume audio context: %w", err)
	}
	c.logger.Print("AudioContext resumed")
	return nil
}

func (c *Controller) resumeLogged(ctx context.Context) {
	if err := c.resume(ctx); err != nil {
		c.logger.Printf("unlock failed: %v", err)
	}
}

// DroneRunning reports whether the background drone is active.
func (c *Controller) DroneRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drone != nil
}

// StartDrone starts the background drone. It is a no-op if one is running.
func (c *Controller) StartDrone() {
	if c.graph == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drone != nil {
		return
	}

	if c.cfg.ResumeOnStart && c.graph.State() == Suspended {
		go c.resumeLogged(context.Background())
	}

	c.logger.Print("Starting wobble drone")
	now := c.graph.CurrentTime()
	d := &drone{
		osc:     c.graph.NewOscillator(c.cfg.DroneWave),
		gain:    c.graph.NewGain(),
		lfo:     c.graph.NewOscillator(c.cfg.LFOWave),
		lfoGain: c.graph.NewGain(),
	}
	d.osc.Frequency().SetValueAtTime(c.cfg.DroneFreq, now)
	d.gain.Gain().SetValueAtTime(c.cfg.DroneVolume, now)
	d.lfo.Frequency().SetValueAtTime(c.cfg.LFORate, now)
	d.lfoGain.Gain().SetValueAtTime(c.cfg.LFODepth, now)

	d.lfo.Connect(d.lfoGain)
	d.lfoGain.ConnectParam(d.osc.Frequency())
	d.osc.Connect(d.gain)
	d.gain.Connect(c.graph.Destination())

	d.osc.Start(now)
	d.lfo.Start(now)
	c.drone = d
}

// StopDrone fades the drone and its modulation out and releases the nodes.
// It is a no-op if no drone is running.
func (c *Controller) StopDrone() {
	if c.graph == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.drone
	if d == nil {
		return
	}

	c.logger.Print("Stopping wobble drone")
	now := c.graph.CurrentTime()
	// Anchor the ramps at now, otherwise they start from the start event.
	d.gain.Gain().SetValueAtTime(c.cfg.DroneVolume, now)
	d.lfoGain.Gain().SetValueAtTime(c.cfg.LFODepth, now)
	d.gain.Gain().ExponentialRampToValueAtTime(c.cfg.FadeFloor, now+c.cfg.FadeTime)
	d.lfoGain.Gain().ExponentialRampToValueAtTime(c.cfg.FadeFloor, now+c.cfg.FadeTime)

	d.osc.Stop(now + c.cfg.ReleaseTime)
	d.lfo.Stop(now + c.cfg.ReleaseTime)
	c.drone = nil
}

// MusicPlaying reports whether a music track is held.
func (c *Controller) MusicPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.music != nil
}

// StartMusic opens and plays the looping background track. It blocks while
// the asset is fetched and decoded, so callers on a frame callback should run
// it on its own goroutine. Failures are logged, never returned.
func (c *Controller) StartMusic(ctx context.Context) {
	if c.graph == nil {
		return
	}
	c.mu.Lock()
	c.wantMusic = true
	if c.music != nil || c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.mu.Unlock()

	track, err := c.openMusic(ctx)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Printf("startMusic error: %v", err)
		return
	}
	if !c.wantMusic {
		c.mu.Unlock()
		track.Release()
		c.logger.Print("Music start cancelled")
		return
	}
	c.music = track
	c.mu.Unlock()

	if err := track.Play(ctx); err != nil {
		c.logger.Printf("Music play() failed: %v", err)
		c.mu.Lock()
		if c.music == track {
			c.music = nil
			track.Release()
		}
		c.mu.Unlock()
		return
	}
	c.logger.Print("Music playback started")
}

func (c *Controller) openMusic(ctx context.Context) (Track, error) {
	if c.cfg.ResumeOnStart {
		if err := c.resume(ctx); err != nil {
			return nil, err
		}
	}
	c.logger.Printf("Loading music %s", c.cfg.MusicPath)
	track, err := c.graph.OpenTrack(ctx, c.cfg.MusicPath, TrackOptions{
		Loop:   true,
		Volume: c.cfg.MusicVolume,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.cfg.MusicPath, err)
	}
	return track, nil
}

// StopMusic stops the track, rewinds it and releases the handle. It also
// cancels a start that is still loading.
func (c *Controller) StopMusic() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wantMusic = false
	if c.music == nil {
		return
	}

	c.logger.Print("Stopping music")
	c.music.Pause()
	c.music.Rewind()
	c.music.Release()
	c.music = nil
}

// Close stops everything the controller owns.
func (c *Controller) Close() {
	c.StopMusic()
	c.StopDrone()
}
