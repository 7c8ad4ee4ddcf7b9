package game

import (
	"context"

	"github.com/simukka/galaxy-invaders/audio"
)

// Sound is the slice of the audio controller the game drives.
type Sound interface {
	PlaySfx(e audio.Effect)
	StartMusic(ctx context.Context)
	StopMusic()
	StartDrone()
	StopDrone()
}

var _ Sound = (*audio.Controller)(nil)

type silent struct{}

func (silent) PlaySfx(audio.Effect)       {}
func (silent) StartMusic(context.Context) {}
func (silent) StopMusic()                 {}
func (silent) StartDrone()                {}
func (silent) StopDrone()                 {}

// Phase is the top-level game state. Exactly one is active per frame.
type Phase int

const (
	Playing Phase = iota
	LevelTransition
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case LevelTransition:
		return "levelTransition"
	case GameOver:
		return "gameOver"
	}
	return "unknown"
}

// Game holds the complete game state.
type Game struct {
	// Core state
	Player          Player
	Enemies         []Enemy
	Score           int
	Level           int
	Phase           Phase
	TransitionTimer int
	EnemySpeed      float64
	EnemyDirection  float64

	// Object pools
	Bullets *BulletPool

	// Audio
	Sound Sound

	// Graphics assets, nil until the frontend loads them
	PlayerSprite Sprite
	EnemySprite  Sprite

	// Stats overlay (F10)
	Stats *StatsOverlay

	// Input
	held        [numKeys]bool
	firePending bool

	// Animation
	AnimationFrameID int
	LastFrameTime    float64

	ctx context.Context
}

// NewGame creates a new game instance. A nil sound plays nothing.
func NewGame(sound Sound) *Game {
	if sound == nil {
		sound = silent{}
	}
	g := &Game{
		Bullets: NewBulletPool(32),
		Sound:   sound,
		Stats:   NewStatsOverlay(),
		ctx:     context.Background(),
	}
	g.reset()
	return g
}

// reset puts every piece of play state back to its initial value.
func (g *Game) reset() {
	g.Player = newPlayer()
	g.Enemies = newFormation()
	g.Bullets.Clear()
	g.Score = 0
	g.Level = 1
	g.Phase = Playing
	g.TransitionTimer = 0
	g.EnemySpeed = EnemyBaseSpeed
	g.EnemyDirection = EnemyStartFacing
	g.firePending = false
}

// Start begins the session: fresh grid, music and drone. ctx bounds the music
// load for this and later restarts.
func (g *Game) Start(ctx context.Context) {
	Debug("Start!")
	g.ctx = ctx
	g.Enemies = newFormation()
	g.startBackground()
}

func (g *Game) startBackground() {
	go g.Sound.StartMusic(g.ctx)
	g.Sound.StartDrone()
}

// Restart resets a finished session. It does nothing unless the game is over.
func (g *Game) Restart() bool {
	if g.Phase != GameOver {
		return false
	}
	Debug("Restart")
	g.reset()
	g.startBackground()
	return true
}

// AliveEnemies counts enemies that have not been destroyed.
func (g *Game) AliveEnemies() int {
	n := 0
	for i := range g.Enemies {
		if g.Enemies[i].Alive {
			n++
		}
	}
	return n
}
