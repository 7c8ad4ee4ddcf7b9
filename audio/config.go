package audio

// Config tunes the drone, music and unlock behavior of a Controller.
type Config struct {
	// Drone settings
	DroneWave   Waveform // Drone oscillator waveform
	DroneFreq   float64  // Drone base frequency (Hz)
	DroneVolume float64  // Drone gain

	// LFO settings
	LFOWave  Waveform // LFO waveform
	LFORate  float64  // LFO frequency (Hz)
	LFODepth float64  // LFO depth applied to drone frequency (Hz)

	// Fades
	FadeFloor   float64 // Target gain of exponential fade outs
	FadeTime    float64 // Drone fade out time in seconds
	ReleaseTime float64 // Time after stop request when drone nodes stop

	// Tone settings
	ToneFloor float64 // Target gain of sound effect decays
	ToneTail  float64 // Extra seconds before a tone oscillator stops

	// Music settings
	MusicPath   string  // Looping background track asset
	MusicVolume float64 // Music element volume (0.0 - 1.0)

	// Unlock policy
	UnlockOnGesture bool // Resume the graph on the first key or mouse press
	ResumeOnStart   bool // Resume the graph inside StartDrone/StartMusic
}
