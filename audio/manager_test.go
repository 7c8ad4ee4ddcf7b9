package audio

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"
)

// --- Recording graph ---

type paramEvent struct {
	kind  string // "set" or "exp"
	value float64
	at    float64
}

type fakeParam struct {
	events []paramEvent
}

func (p *fakeParam) SetValueAtTime(value, at float64) {
	p.events = append(p.events, paramEvent{"set", value, at})
}

func (p *fakeParam) ExponentialRampToValueAtTime(value, at float64) {
	p.events = append(p.events, paramEvent{"exp", value, at})
}

type fakeNode struct {
	outs   []Node
	params []Param
}

func (n *fakeNode) Connect(dst Node)       { n.outs = append(n.outs, dst) }
func (n *fakeNode) ConnectParam(dst Param) { n.params = append(n.params, dst) }

type fakeOsc struct {
	fakeNode
	wave    Waveform
	freq    fakeParam
	started []float64
	stopped []float64
}

func (o *fakeOsc) Frequency() Param { return &o.freq }
func (o *fakeOsc) Start(at float64) { o.started = append(o.started, at) }
func (o *fakeOsc) Stop(at float64)  { o.stopped = append(o.stopped, at) }

type fakeGain struct {
	fakeNode
	gain fakeParam
}

func (g *fakeGain) Gain() Param { return &g.gain }

type fakeTrack struct {
	mu       sync.Mutex
	playErr  error
	played   int
	paused   int
	rewound  int
	released int
}

func (t *fakeTrack) Play(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.played++
	return t.playErr
}

func (t *fakeTrack) Pause()   { t.mu.Lock(); t.paused++; t.mu.Unlock() }
func (t *fakeTrack) Rewind()  { t.mu.Lock(); t.rewound++; t.mu.Unlock() }
func (t *fakeTrack) Release() { t.mu.Lock(); t.released++; t.mu.Unlock() }

type fakeGraph struct {
	mu      sync.Mutex
	state   State
	now     float64
	dest    fakeNode
	oscs    []*fakeOsc
	gains   []*fakeGain
	tracks  []*fakeTrack
	opened  []string
	resumes chan struct{}

	openErr error
	playErr error
	opening chan struct{} // signalled when OpenTrack is entered
	gate    chan struct{} // OpenTrack waits on it when non-nil
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{state: Running, now: 2.5, resumes: make(chan struct{}, 8)}
}

func (g *fakeGraph) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *fakeGraph) Resume(ctx context.Context) error {
	g.mu.Lock()
	g.state = Running
	g.mu.Unlock()
	g.resumes <- struct{}{}
	return nil
}

func (g *fakeGraph) CurrentTime() float64 { return g.now }
func (g *fakeGraph) Destination() Node    { return &g.dest }

func (g *fakeGraph) NewOscillator(wave Waveform) Oscillator {
	o := &fakeOsc{wave: wave}
	g.oscs = append(g.oscs, o)
	return o
}

func (g *fakeGraph) NewGain() GainNode {
	n := &fakeGain{}
	g.gains = append(g.gains, n)
	return n
}

func (g *fakeGraph) OpenTrack(ctx context.Context, path string, opts TrackOptions) (Track, error) {
	if g.opening != nil {
		g.opening <- struct{}{}
	}
	if g.gate != nil {
		<-g.gate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.opened = append(g.opened, path)
	if g.openErr != nil {
		return nil, g.openErr
	}
	t := &fakeTrack{playErr: g.playErr}
	g.tracks = append(g.tracks, t)
	return t, nil
}

func newTestController(g Graph, cfg Config) (*Controller, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewController(g, cfg, log.New(&buf, "[audio] ", 0)), &buf
}

// --- Sound effects ---

func TestPlaySfx_SchedulesPresetTone(t *testing.T) {
	tests := []struct {
		effect Effect
		wave   Waveform
		start  float64
		end    float64
		dur    float64
		vol    float64
	}{
		{Pew, Square, 900, 150, 0.1, 0.15},
		{Explosion, Sawtooth, 300, 50, 0.4, 0.3},
		{LevelUp, Triangle, 400, 800, 0.25, 0.2},
		{GameOver, Sine, 200, 50, 1.0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			g := newFakeGraph()
			c, _ := newTestController(g, DefaultConfig)

			c.PlaySfx(tt.effect)

			if len(g.oscs) != 1 || len(g.gains) != 1 {
				t.Fatalf("Expected 1 oscillator and 1 gain, got %d and %d", len(g.oscs), len(g.gains))
			}
			osc, gain := g.oscs[0], g.gains[0]
			if osc.wave != tt.wave {
				t.Errorf("Expected wave %v, got %v", tt.wave, osc.wave)
			}
			wantFreq := []paramEvent{{"set", tt.start, g.now}, {"exp", tt.end, g.now + tt.dur}}
			if !equalEvents(osc.freq.events, wantFreq) {
				t.Errorf("Frequency events = %v, want %v", osc.freq.events, wantFreq)
			}
			wantGain := []paramEvent{{"set", tt.vol, g.now}, {"exp", 0.001, g.now + tt.dur}}
			if !equalEvents(gain.gain.events, wantGain) {
				t.Errorf("Gain events = %v, want %v", gain.gain.events, wantGain)
			}
			if len(osc.started) != 1 || osc.started[0] != g.now {
				t.Errorf("Expected start at %f, got %v", g.now, osc.started)
			}
			if len(osc.stopped) != 1 || !approx(osc.stopped[0], g.now+tt.dur+0.05) {
				t.Errorf("Expected stop at %f, got %v", g.now+tt.dur+0.05, osc.stopped)
			}
			if len(osc.outs) != 1 || osc.outs[0] != Node(gain) {
				t.Error("Expected oscillator routed into its gain")
			}
			if len(gain.outs) != 1 || gain.outs[0] != Node(&g.dest) {
				t.Error("Expected gain routed into the destination")
			}
		})
	}
}

func TestPlaySfx_UnknownEffectIgnored(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)

	c.PlaySfx(Effect(99))

	if len(g.oscs) != 0 {
		t.Errorf("Expected no oscillators for unknown effect, got %d", len(g.oscs))
	}
}

func TestController_NilGraphIsSilent(t *testing.T) {
	c, _ := newTestController(nil, DefaultConfig)

	c.PlaySfx(Pew)
	c.StartDrone()
	c.StartMusic(context.Background())
	c.Unlock()
	c.StopDrone()
	c.StopMusic()
	c.Close()

	if c.Available() {
		t.Error("Expected controller without graph to be unavailable")
	}
	if c.DroneRunning() || c.MusicPlaying() {
		t.Error("Expected nothing to be running without a graph")
	}
}

// --- Drone ---

func TestStartDrone_WiresLFOIntoDroneFrequency(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)

	c.StartDrone()

	if !c.DroneRunning() {
		t.Fatal("Expected drone to be running")
	}
	if len(g.oscs) != 2 || len(g.gains) != 2 {
		t.Fatalf("Expected 2 oscillators and 2 gains, got %d and %d", len(g.oscs), len(g.gains))
	}
	osc, lfo := g.oscs[0], g.oscs[1]
	gain, lfoGain := g.gains[0], g.gains[1]

	if osc.wave != Sine || lfo.wave != Triangle {
		t.Errorf("Expected sine drone and triangle LFO, got %v and %v", osc.wave, lfo.wave)
	}
	if osc.freq.events[0].value != 100 || lfo.freq.events[0].value != 1.5 {
		t.Errorf("Unexpected frequencies: drone %v, lfo %v", osc.freq.events, lfo.freq.events)
	}
	if gain.gain.events[0].value != 0.05 || lfoGain.gain.events[0].value != 20 {
		t.Errorf("Unexpected gains: drone %v, lfo %v", gain.gain.events, lfoGain.gain.events)
	}
	if len(lfo.outs) != 1 || lfo.outs[0] != Node(lfoGain) {
		t.Error("Expected LFO routed into its gain")
	}
	if len(lfoGain.params) != 1 || lfoGain.params[0] != Param(&osc.freq) {
		t.Error("Expected LFO gain to modulate the drone frequency")
	}
	if len(gain.outs) != 1 || gain.outs[0] != Node(&g.dest) {
		t.Error("Expected drone gain routed into the destination")
	}
	if len(osc.started) != 1 || len(lfo.started) != 1 {
		t.Error("Expected both oscillators started")
	}
}

func TestStartDrone_Idempotent(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)

	c.StartDrone()
	c.StartDrone()

	if len(g.oscs) != 2 {
		t.Errorf("Expected a single drone (2 oscillators), got %d oscillators", len(g.oscs))
	}
}

func TestStopDrone_FadesThenStops(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)
	c.StartDrone()
	g.now = 10

	c.StopDrone()

	if c.DroneRunning() {
		t.Fatal("Expected drone released after stop")
	}
	for i, gain := range g.gains {
		last := gain.gain.events[len(gain.gain.events)-1]
		if last.kind != "exp" || last.value != 0.0001 || !approx(last.at, 10.5) {
			t.Errorf("Gain %d: expected fade to 0.0001 at 10.5, got %+v", i, last)
		}
	}
	for i, osc := range g.oscs {
		if len(osc.stopped) != 1 || !approx(osc.stopped[0], 10.6) {
			t.Errorf("Oscillator %d: expected stop at 10.6, got %v", i, osc.stopped)
		}
	}

	// Second stop is a no-op
	c.StopDrone()
	for i, osc := range g.oscs {
		if len(osc.stopped) != 1 {
			t.Errorf("Oscillator %d stopped %d times", i, len(osc.stopped))
		}
	}
}

func TestStartDrone_AfterStopCreatesNewNodes(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)

	c.StartDrone()
	c.StopDrone()
	c.StartDrone()

	if len(g.oscs) != 4 {
		t.Errorf("Expected fresh nodes on restart (4 oscillators), got %d", len(g.oscs))
	}
}

// --- Music ---

func TestStartMusic_Idempotent(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)

	c.StartMusic(context.Background())
	c.StartMusic(context.Background())

	if len(g.opened) != 1 {
		t.Fatalf("Expected the track to be opened once, got %d", len(g.opened))
	}
	if g.opened[0] != "assets/battle_theme2.mp3" {
		t.Errorf("Unexpected asset path %q", g.opened[0])
	}
	if !c.MusicPlaying() {
		t.Error("Expected music to be playing")
	}
	if g.tracks[0].played != 1 {
		t.Errorf("Expected one play call, got %d", g.tracks[0].played)
	}
}

func TestStopMusic_RewindsAndReleases(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)
	c.StartMusic(context.Background())

	c.StopMusic()
	c.StopMusic()

	tr := g.tracks[0]
	if tr.paused != 1 || tr.rewound != 1 || tr.released != 1 {
		t.Errorf("Expected pause/rewind/release once, got %d/%d/%d", tr.paused, tr.rewound, tr.released)
	}
	if c.MusicPlaying() {
		t.Error("Expected music handle released")
	}
}

func TestStartMusic_OpenErrorIsLoggedNotFatal(t *testing.T) {
	g := newFakeGraph()
	g.openErr = errors.New("HTTP 404")
	c, logs := newTestController(g, DefaultConfig)

	c.StartMusic(context.Background())

	if c.MusicPlaying() {
		t.Error("Expected no music after open failure")
	}
	if !strings.Contains(logs.String(), "HTTP 404") {
		t.Errorf("Expected failure to be logged, got %q", logs.String())
	}

	// A later start retries
	g.openErr = nil
	c.StartMusic(context.Background())
	if !c.MusicPlaying() {
		t.Error("Expected retry to succeed")
	}
}

func TestStartMusic_PlayRejectedReleasesTrack(t *testing.T) {
	g := newFakeGraph()
	g.playErr = errors.New("NotAllowedError")
	c, logs := newTestController(g, DefaultConfig)

	c.StartMusic(context.Background())

	if c.MusicPlaying() {
		t.Error("Expected no music after play rejection")
	}
	if g.tracks[0].released != 1 {
		t.Errorf("Expected rejected track released once, got %d", g.tracks[0].released)
	}
	if !strings.Contains(logs.String(), "NotAllowedError") {
		t.Errorf("Expected rejection to be logged, got %q", logs.String())
	}
}

func TestStartMusic_ResumesSuspendedGraph(t *testing.T) {
	g := newFakeGraph()
	g.state = Suspended
	c, _ := newTestController(g, DefaultConfig)

	c.StartMusic(context.Background())

	select {
	case <-g.resumes:
	default:
		t.Fatal("Expected StartMusic to resume the graph before loading")
	}
	if g.State() != Running {
		t.Errorf("Expected graph running, got %v", g.State())
	}
}

func TestStartMusic_CancelledContext(t *testing.T) {
	g := newFakeGraph()
	c, logs := newTestController(g, DefaultConfig)
	g.openErr = context.Canceled

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.StartMusic(ctx)

	if c.MusicPlaying() {
		t.Error("Expected no music with a cancelled context")
	}
	if !strings.Contains(logs.String(), context.Canceled.Error()) {
		t.Errorf("Expected cancellation to be logged, got %q", logs.String())
	}
}

func TestStopMusic_CancelsPendingStart(t *testing.T) {
	g := newFakeGraph()
	g.opening = make(chan struct{}, 1)
	g.gate = make(chan struct{})
	c, _ := newTestController(g, DefaultConfig)

	done := make(chan struct{})
	go func() {
		c.StartMusic(context.Background())
		close(done)
	}()

	<-g.opening
	// A concurrent start while loading shares the pending load
	c.StartMusic(context.Background())
	c.StopMusic()
	close(g.gate)
	<-done

	if c.MusicPlaying() {
		t.Error("Expected cancelled start to leave no music")
	}
	if len(g.tracks) != 1 {
		t.Fatalf("Expected exactly one open, got %d", len(g.tracks))
	}
	if g.tracks[0].played != 0 || g.tracks[0].released != 1 {
		t.Errorf("Expected cancelled track released without playing, got played=%d released=%d",
			g.tracks[0].played, g.tracks[0].released)
	}
}

func TestStartMusic_RestartWhileLoading(t *testing.T) {
	g := newFakeGraph()
	g.opening = make(chan struct{}, 1)
	g.gate = make(chan struct{})
	c, logs := newTestController(g, DefaultConfig)

	done := make(chan struct{})
	go func() {
		c.StartMusic(context.Background())
		close(done)
	}()

	<-g.opening
	// Game over then restart before the first load finishes
	c.StopMusic()
	c.StartMusic(context.Background())
	close(g.gate)
	<-done

	if !c.MusicPlaying() {
		t.Fatalf("Expected music after restart, logs: %s", logs.String())
	}
	if len(g.tracks) != 1 {
		t.Fatalf("Expected the pending load to be reused, got %d opens", len(g.tracks))
	}
	if g.tracks[0].played != 1 || g.tracks[0].released != 0 {
		t.Errorf("Expected track played and kept, got played=%d released=%d",
			g.tracks[0].played, g.tracks[0].released)
	}
}

// --- Unlock policy ---

func TestUnlock_ResumesOnlyOnce(t *testing.T) {
	g := newFakeGraph()
	g.state = Suspended
	c, _ := newTestController(g, DefaultConfig)

	c.Unlock()
	select {
	case <-g.resumes:
	case <-time.After(time.Second):
		t.Fatal("Expected Unlock to resume the graph")
	}

	g.mu.Lock()
	g.state = Suspended
	g.mu.Unlock()
	c.Unlock()
	select {
	case <-g.resumes:
		t.Error("Expected second Unlock to be a no-op")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStartDrone_ResumeOnStartDisabled(t *testing.T) {
	g := newFakeGraph()
	g.state = Suspended
	cfg := DefaultConfig
	cfg.ResumeOnStart = false
	c, _ := newTestController(g, cfg)

	c.StartDrone()

	select {
	case <-g.resumes:
		t.Error("Expected no resume when ResumeOnStart is disabled")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStartDrone_ResumesSuspendedGraph(t *testing.T) {
	g := newFakeGraph()
	g.state = Suspended
	c, _ := newTestController(g, DefaultConfig)

	c.StartDrone()

	select {
	case <-g.resumes:
	case <-time.After(time.Second):
		t.Fatal("Expected StartDrone to resume a suspended graph")
	}
}

func TestClose_StopsDroneAndMusic(t *testing.T) {
	g := newFakeGraph()
	c, _ := newTestController(g, DefaultConfig)
	c.StartDrone()
	c.StartMusic(context.Background())

	c.Close()

	if c.DroneRunning() || c.MusicPlaying() {
		t.Error("Expected Close to stop drone and music")
	}
}

func equalEvents(got, want []paramEvent) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].kind != want[i].kind || !approx(got[i].value, want[i].value) || !approx(got[i].at, want[i].at) {
			return false
		}
	}
	return true
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
