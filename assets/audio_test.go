package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLengthAndEnvelope(t *testing.T) {
	tone := cfg.ToneConfig{StartHz: 440, EndHz: 220, Duration: 0.1, Volume: 1}
	pcm, err := Synthesize(tone, 8000, 1)
	require.NoError(t, err)
	require.Len(t, pcm, 800*4)

	// silent at the start of the attack, channels identical
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm[0:])))
	for i := 0; i < 800; i += 97 {
		l := binary.LittleEndian.Uint16(pcm[i*4:])
		r := binary.LittleEndian.Uint16(pcm[i*4+2:])
		assert.Equal(t, l, r)
	}
}

func TestSynthesizeRejectsBadInput(t *testing.T) {
	_, err := Synthesize(cfg.ToneConfig{Duration: 0.1}, 0, 1)
	assert.Error(t, err)
	_, err = Synthesize(cfg.ToneConfig{}, 44100, 1)
	assert.Error(t, err)
}

func TestLoadSFXCaches(t *testing.T) {
	l := NewAudioLoader(8000)
	first, err := l.LoadSFX(cfg.SoundHit)
	require.NoError(t, err)
	second, err := l.LoadSFX(cfg.SoundHit)
	require.NoError(t, err)
	assert.Same(t, &first[0], &second[0])

	_, err = l.LoadSFX(cfg.SoundNone)
	assert.Error(t, err)
}
