package game

import (
	"strconv"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  float64
	PanelWidth  float64
	PanelHeight float64
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:      WIDTH - 200,
		PanelY:      40,
		LineHeight:  16,
		PanelWidth:  184,
		PanelHeight: 150,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter. currentTime is in milliseconds.
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(surf Surface, g *Game) {
	if !s.Visible {
		return
	}

	surf.FillRect(Rect{X: s.PanelX, Y: s.PanelY, W: s.PanelWidth, H: s.PanelHeight}, Theme.StatsPanelColor)
	surf.FillText("GAME STATS [F10]", s.PanelX+10, s.PanelY+20, Theme.StatsFont, Theme.StatsTitleColor)

	y := s.PanelY + 44
	for _, line := range s.lines(g) {
		surf.FillText(line[0], s.PanelX+10, y, Theme.StatsFont, Theme.StatsLabelColor)
		surf.FillText(line[1], s.PanelX+100, y, Theme.StatsFont, Theme.StatsValueColor)
		y += s.LineHeight
	}
}

func (s *StatsOverlay) lines(g *Game) [][2]string {
	return [][2]string{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64)},
		{"Phase", g.Phase.String()},
		{"Level", strconv.Itoa(g.Level)},
		{"Score", strconv.Itoa(g.Score)},
		{"Speed", strconv.FormatFloat(g.EnemySpeed, 'f', 1, 64)},
		{"Enemies", strconv.Itoa(g.AliveEnemies()) + "/" + strconv.Itoa(len(g.Enemies))},
		{"Bullets", strconv.Itoa(g.Bullets.ActiveCount) + "/" + strconv.Itoa(len(g.Bullets.Pool))},
	}
}
