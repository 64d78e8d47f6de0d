package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/dungeon-crawler/config"
)

// AudioLoader synthesizes sound effects and caches the PCM bytes. Output is
// 16-bit little-endian stereo at the loader's sample rate, the format Ebiten's
// audio players consume.
type AudioLoader struct {
	sfxCache   map[cfg.SoundID][]byte
	sampleRate int
}

func NewAudioLoader(sampleRate int) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[cfg.SoundID][]byte),
		sampleRate: sampleRate,
	}
}

// PreloadSFX synthesizes a sound effect and caches it.
// Call this at startup to avoid lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.LoadSFX(id)
	return err
}

// LoadSFX returns the PCM bytes of a sound effect.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	pcm, err := Synthesize(tone, l.sampleRate, int64(id))
	if err != nil {
		return nil, fmt.Errorf("synthesize sound %d: %w", id, err)
	}
	l.sfxCache[id] = pcm
	return pcm, nil
}

// Synthesize renders a frequency sweep from tone.StartHz to tone.EndHz mixed
// with noise, with a short attack and linear release. seed fixes the noise.
func Synthesize(tone cfg.ToneConfig, sampleRate int, seed int64) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if tone.Duration <= 0 {
		return nil, fmt.Errorf("invalid duration %v", tone.Duration)
	}

	n := int(tone.Duration * float64(sampleRate))
	attack := max(1, n/20)
	noise := rand.New(rand.NewSource(seed))
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := math.Sin(phase)*(1-tone.Noise) + (noise.Float64()*2-1)*tone.Noise

		env := 1 - t
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		v := int16(math.Max(-1, math.Min(1, s*env*tone.Volume)) * math.MaxInt16)

		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out, nil
}
