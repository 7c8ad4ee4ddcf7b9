package game

import "strconv"

// Sprite is an image owned by a frontend. Unloaded sprites fall back to flat
// rectangles.
type Sprite interface {
	Loaded() bool
}

// Surface is the 2-D drawing target a frontend provides each frame.
type Surface interface {
	Clear(color string)
	FillRect(r Rect, color string)
	DrawImage(img Sprite, r Rect)
	FillText(text string, x, y float64, font Font, color string)
}

// Render draws the current state without modifying it.
func (g *Game) Render(s Surface) {
	s.Clear(Theme.BackgroundColor)

	if g.Phase == GameOver {
		s.FillText(Theme.GameOverText, WIDTH/2, HEIGHT/2, Theme.GameOverFont, Theme.GameOverColor)
		s.FillText(Theme.RestartText, WIDTH/2, HEIGHT/2+50, Theme.RestartFont, Theme.GameOverColor)
		return
	}

	// HUD
	s.FillText("Score: "+strconv.Itoa(g.Score), 10, 25, Theme.HUDFont, Theme.HUDColor)
	s.FillText("Level: "+strconv.Itoa(g.Level), WIDTH-120, 25, Theme.HUDFont, Theme.HUDColor)

	drawSprite(s, g.PlayerSprite, g.Player.Rect, Theme.PlayerColor)

	for _, b := range g.Bullets.Active() {
		s.FillRect(b.Rect, Theme.BulletColor)
	}

	for i := range g.Enemies {
		if e := &g.Enemies[i]; e.Alive {
			drawSprite(s, g.EnemySprite, e.Rect, Theme.EnemyColor)
		}
	}

	if g.Phase == LevelTransition {
		s.FillText(g.LevelMessage(), WIDTH/2, HEIGHT/2, Theme.BannerFont, Theme.BannerColor)
	}

	g.Stats.Render(s, g)
}

// LevelMessage returns the banner shown while the current level is cleared.
func (g *Game) LevelMessage() string {
	return LevelMessages[(g.Level-1)%len(LevelMessages)]
}

func drawSprite(s Surface, img Sprite, r Rect, fallback string) {
	if img != nil && img.Loaded() {
		s.DrawImage(img, r)
		return
	}
	s.FillRect(r, fallback)
}
