package game

// Constants for game configuration
const (
	WIDTH         = 800
	HEIGHT        = 600
	FrameDuration = 1000.0 / 60 // ms, caps the RAF loop at ~60 FPS
)

// Player constants
const (
	PlayerWidth  = 80
	PlayerHeight = 40
	PlayerSpeed  = 5
	PlayerStartX = 380
	PlayerStartY = 540
)

// Bullet constants
const (
	BulletWidth  = 4
	BulletHeight = 10
	BulletSpeed  = 7
)

// Enemy grid constants
const (
	EnemyRows        = 3
	EnemyCols        = 8
	EnemyWidth       = 60
	EnemyHeight      = 20
	EnemyPadding     = 20
	EnemyOffsetTop   = 50
	EnemyOffsetLeft  = 50
	EnemyDropStep    = 10
	EnemyBaseSpeed   = 1.0
	EnemySpeedStep   = 0.5
	EnemyMinSpeed    = 0.5
	EnemyStartFacing = 1
)

// Progression constants
const (
	TransitionDelay = 120 // frames between clearing a wave and the next level
	ScorePerKill    = 10
)

// LevelMessages rotate through level-clear banners.
var LevelMessages = []string{
	"ALL INVADERS ELIMINATED!",
	"GALACTIC VICTORY ACHIEVED!",
	"YOU SAVED THE GALAXY!",
	"MISSION ACCOMPLISHED, HERO!",
	"PREPARE FOR THE NEXT WAVE!",
}

// Asset paths, relative to the page or the desktop assets directory.
const (
	PlayerSpritePath = "assets/player2.png"
	EnemySpritePath  = "assets/enemy_drone.png"
)
