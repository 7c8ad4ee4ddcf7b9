package game

// Align is the horizontal anchor of a text draw.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Font describes a text style. Family is a CSS font-family list.
type Font struct {
	Family string
	Size   int
	Align  Align
}

// Theme holds all visual styling constants for easy customization. Colors are
// CSS color names so both the canvas and the desktop surface can resolve them.
var Theme = struct {
	// Background
	BackgroundColor string

	// Entity fallback colors
	PlayerColor string
	BulletColor string
	EnemyColor  string

	// UI/HUD colors
	HUDColor      string
	GameOverColor string
	BannerColor   string

	// Stats overlay colors
	StatsPanelColor string
	StatsTitleColor string
	StatsLabelColor string
	StatsValueColor string

	// Fonts
	HUDFont      Font
	GameOverFont Font
	RestartFont  Font
	BannerFont   Font
	StatsFont    Font

	// Text
	GameOverText string
	RestartText  string
}{
	BackgroundColor: "black",

	PlayerColor: "lime",
	BulletColor: "red",
	EnemyColor:  "white",

	HUDColor:      "white",
	GameOverColor: "red",
	BannerColor:   "yellow",

	StatsPanelColor: "midnightblue",
	StatsTitleColor: "deepskyblue",
	StatsLabelColor: "silver",
	StatsValueColor: "lime",

	HUDFont:      Font{Family: "Arial", Size: 20},
	GameOverFont: Font{Family: "Arial", Size: 64, Align: AlignCenter},
	RestartFont:  Font{Family: "Arial", Size: 24, Align: AlignCenter},
	BannerFont:   Font{Family: "Arial", Size: 48, Align: AlignCenter},
	StatsFont:    Font{Family: "monospace", Size: 12},

	GameOverText: "¡GAME OVER!",
	RestartText:  "Press R to restart",
}
