package audio

// Effect identifies a fixed sound effect preset.
type Effect int

const (
	Pew Effect = iota
	Explosion
	LevelUp
	GameOver
)

func (e Effect) String() string {
	switch e {
	case Pew:
		return "pew"
	case Explosion:
		return "explosion"
	case LevelUp:
		return "levelUp"
	case GameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Tone describes a single synthesized sweep.
type Tone struct {
	Wave      Waveform
	StartFreq float64 // Hz at trigger time
	EndFreq   float64 // Hz reached after Duration
	Duration  float64 // Seconds
	Volume    float64 // Initial gain
}

// Tones holds the preset for every Effect.
var Tones = map[Effect]Tone{
	Pew:       {Wave: Square, StartFreq: 900, EndFreq: 150, Duration: 0.1, Volume: 0.15},
	Explosion: {Wave: Sawtooth, StartFreq: 300, EndFreq: 50, Duration: 0.4, Volume: 0.3},
	LevelUp:   {Wave: Triangle, StartFreq: 400, EndFreq: 800, Duration: 0.25, Volume: 0.2},
	GameOver:  {Wave: Sine, StartFreq: 200, EndFreq: 50, Duration: 1.0, Volume: 0.25},
}

// GetTone returns the preset for an effect.
func GetTone(e Effect) (Tone, bool) {
	t, ok := Tones[e]
	return t, ok
}
