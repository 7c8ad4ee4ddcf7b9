package game

import (
	"math"

	"github.com/simukka/galaxy-invaders/audio"
)

// Update advances the simulation by one frame.
func (g *Game) Update() {
	if g.Phase == GameOver {
		return
	}

	g.movePlayer()

	if g.firePending {
		g.firePending = false
		g.fire()
	}

	if g.Phase == LevelTransition {
		g.advanceTransition()
		return
	}

	if g.AliveEnemies() == 0 {
		Debug("Level cleared:", g.Level)
		g.Phase = LevelTransition
		g.TransitionTimer = 0
		return
	}

	if g.invaded() {
		g.endGame()
		return
	}

	g.advanceFormation()
	g.advanceBullets()
	g.resolveCollisions()
}

// movePlayer applies held direction keys, keeping the ship on screen.
func (g *Game) movePlayer() {
	p := &g.Player
	if g.held[KeyLeft] {
		p.X = math.Max(0, p.X-p.Speed)
	}
	if g.held[KeyRight] {
		p.X = math.Min(WIDTH-p.W, p.X+p.Speed)
	}
}

func (g *Game) fire() {
	b := g.Bullets.Acquire()
	b.Rect = Rect{
		X: g.Player.X + g.Player.W/2 - BulletWidth/2,
		Y: g.Player.Y,
		W: BulletWidth,
		H: BulletHeight,
	}
	g.Sound.PlaySfx(audio.Pew)
}

func (g *Game) advanceTransition() {
	g.TransitionTimer++
	if g.TransitionTimer < TransitionDelay {
		return
	}
	g.Level++
	g.Sound.PlaySfx(audio.LevelUp)
	g.EnemySpeed += EnemySpeedStep
	g.Enemies = newFormation()
	g.Bullets.Clear()
	g.TransitionTimer = 0
	g.Phase = Playing
	Debugf("Level %d, enemy speed %.1f", g.Level, g.EnemySpeed)
}

// invaded reports whether any living enemy has reached the player's row.
func (g *Game) invaded() bool {
	for i := range g.Enemies {
		e := &g.Enemies[i]
		if e.Alive && e.Bottom() >= g.Player.Y {
			return true
		}
	}
	return false
}

func (g *Game) endGame() {
	Debug("Game over, score:", g.Score)
	g.Phase = GameOver
	g.Sound.StopMusic()
	g.Sound.StopDrone()
	g.Sound.PlaySfx(audio.GameOver)
}

// advanceFormation moves the grid as one body. If the next step would carry
// the living enemies past either edge, the grid turns around and drops
// instead of moving sideways.
func (g *Game) advanceFormation() {
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := range g.Enemies {
		e := &g.Enemies[i]
		if !e.Alive {
			continue
		}
		minX = math.Min(minX, e.X)
		maxX = math.Max(maxX, e.X+e.W)
	}

	step := g.EnemySpeed * g.EnemyDirection
	if minX+step < 0 || maxX+step > WIDTH {
		g.EnemyDirection = -g.EnemyDirection
		for i := range g.Enemies {
			if g.Enemies[i].Alive {
				g.Enemies[i].Y += EnemyDropStep
			}
		}
		return
	}
	for i := range g.Enemies {
		if g.Enemies[i].Alive {
			g.Enemies[i].X += step
		}
	}
}

func (g *Game) advanceBullets() {
	g.Bullets.ForEachReverse(func(b *Bullet, idx int) {
		b.Y -= BulletSpeed
		if b.Bottom() < 0 {
			g.Bullets.Release(idx)
		}
	})
}

// resolveCollisions lets each bullet destroy at most one enemy: the first
// living overlap found scanning from the end of the grid.
func (g *Game) resolveCollisions() {
	g.Bullets.ForEachReverse(func(b *Bullet, idx int) {
		for j := len(g.Enemies) - 1; j >= 0; j-- {
			e := &g.Enemies[j]
			if !e.Alive || !b.Overlaps(e.Rect) {
				continue
			}
			e.Alive = false
			g.Bullets.Release(idx)
			g.Score += ScorePerKill
			g.Sound.PlaySfx(audio.Explosion)
			return
		}
	})
}
