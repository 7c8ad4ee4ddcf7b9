package game

// Key is a logical control, independent of the keyboard layout.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeySpeedUp
	KeySpeedDown
	KeyRestart
	KeyStats
	numKeys
)

// KeyMap maps DOM KeyboardEvent.code values to logical keys.
var KeyMap = map[string]Key{
	"ArrowLeft":  KeyLeft,
	"KeyA":       KeyLeft,
	"ArrowRight": KeyRight,
	"KeyD":       KeyRight,
	"Space":      KeyFire,
	"ArrowUp":    KeySpeedUp,
	"ArrowDown":  KeySpeedDown,
	"KeyR":       KeyRestart,
	"F10":        KeyStats,
}

// KeyFromCode translates a KeyboardEvent.code into a logical key.
func KeyFromCode(code string) (Key, bool) {
	k, ok := KeyMap[code]
	return k, ok
}

// KeyDown handles a key press. Fire is edge-triggered: holding the key (or
// OS key repeat) queues a single shot.
func (g *Game) KeyDown(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	wasHeld := g.held[k]
	g.held[k] = true

	switch k {
	case KeyFire:
		if !wasHeld {
			g.firePending = true
		}
	case KeySpeedUp:
		g.EnemySpeed += EnemySpeedStep
	case KeySpeedDown:
		g.EnemySpeed -= EnemySpeedStep
		if g.EnemySpeed < EnemyMinSpeed {
			g.EnemySpeed = EnemyMinSpeed
		}
	case KeyRestart:
		g.Restart()
	case KeyStats:
		if !wasHeld {
			g.Stats.Toggle()
		}
	}
}

// KeyUp handles a key release.
func (g *Game) KeyUp(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	g.held[k] = false
}

// Held reports whether k is currently pressed.
func (g *Game) Held(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return g.held[k]
}
