package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundHit
	SoundKill
	SoundHurt
	SoundRespawn
	// World sounds
	SoundSpawn
	// UI sounds
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Noise    float64 // 0 = pure tone, 1 = pure noise
	Volume   float64
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundSwing:      {StartHz: 900, EndHz: 300, Duration: 0.12, Noise: 0.6, Volume: 0.5},
			SoundHit:        {StartHz: 220, EndHz: 110, Duration: 0.10, Noise: 0.3, Volume: 0.8},
			SoundKill:       {StartHz: 440, EndHz: 55, Duration: 0.35, Noise: 0.2, Volume: 0.8},
			SoundHurt:       {StartHz: 160, EndHz: 80, Duration: 0.20, Noise: 0.5, Volume: 0.9},
			SoundRespawn:    {StartHz: 330, EndHz: 660, Duration: 0.30, Noise: 0, Volume: 0.6},
			SoundSpawn:      {StartHz: 120, EndHz: 240, Duration: 0.25, Noise: 0.1, Volume: 0.3},
			SoundMenuSelect: {StartHz: 660, EndHz: 880, Duration: 0.06, Noise: 0, Volume: 0.5},
		},
	}
}
