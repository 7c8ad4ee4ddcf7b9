package audio

var DefaultConfig = Config{
	// Drone: low sine wobbling around 100 Hz
	DroneWave:   Sine,
	DroneFreq:   100,
	DroneVolume: 0.05,

	// LFO
	LFOWave:  Triangle,
	LFORate:  1.5,
	LFODepth: 20,

	// Fades
	FadeFloor:   0.0001,
	FadeTime:    0.5,
	ReleaseTime: 0.6,

	// Tones
	ToneFloor: 0.001,
	ToneTail:  0.05,

	// Music
	MusicPath:   "assets/battle_theme2.mp3",
	MusicVolume: 0.3,

	// Unlock policy
	UnlockOnGesture: true,
	ResumeOnStart:   true,
}
