package game

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o intersect. Boxes that only share an edge
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Player is the ship at the bottom of the screen.
type Player struct {
	Rect
	Speed float64
}

func newPlayer() Player {
	return Player{
		Rect:  Rect{X: PlayerStartX, Y: PlayerStartY, W: PlayerWidth, H: PlayerHeight},
		Speed: PlayerSpeed,
	}
}

// Enemy is one slot of the invader grid. Dead enemies stay in the slice with
// Alive cleared so indices remain stable.
type Enemy struct {
	Rect
	Alive bool
}

// newFormation lays out a full grid of living enemies.
func newFormation() []Enemy {
	enemies := make([]Enemy, 0, EnemyRows*EnemyCols)
	for r := 0; r < EnemyRows; r++ {
		for c := 0; c < EnemyCols; c++ {
			enemies = append(enemies, Enemy{
				Rect: Rect{
					X: EnemyOffsetLeft + float64(c*(EnemyWidth+EnemyPadding)),
					Y: EnemyOffsetTop + float64(r*(EnemyHeight+EnemyPadding)),
					W: EnemyWidth,
					H: EnemyHeight,
				},
				Alive: true,
			})
		}
	}
	return enemies
}
