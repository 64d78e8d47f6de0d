package knight

import (
	"testing"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(s *Swing, steps int) {
	for i := 0; i < steps*cfg.Knight.FramesPerStep; i++ {
		s.Tick()
	}
}

func TestSpacePlaysFullSwing(t *testing.T) {
	var s Swing
	s.PressSpace()
	require.Equal(t, Swinging, s.State)
	assert.Equal(t, HighlightSpace, s.Highlight)

	var frames []int
	for i := 0; i < cfg.Knight.FrameCount; i++ {
		tick(&s, 1)
		frames = append(frames, s.Frame)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, frames)
	assert.Equal(t, Swinging, s.State)

	tick(&s, 1)
	assert.Equal(t, Idle, s.State)
	assert.Equal(t, 0, s.Frame)
	assert.Equal(t, HighlightNone, s.Highlight)
}

func TestFrameHoldsForStepLength(t *testing.T) {
	var s Swing
	s.PressSpace()
	tick(&s, 1)
	for i := 0; i < cfg.Knight.FramesPerStep-1; i++ {
		s.Tick()
		require.Equal(t, 0, s.Frame)
	}
	s.Tick()
	assert.Equal(t, 1, s.Frame)
}

func TestSpaceIgnoredWhileSwinging(t *testing.T) {
	var s Swing
	s.PressSpace()
	tick(&s, 2)
	s.PressSpace()
	tick(&s, 1)
	assert.Equal(t, 2, s.Frame)
}

func TestHeldPrimaryChargesThenResumes(t *testing.T) {
	var s Swing
	s.PressPrimary()
	assert.Equal(t, HighlightCharge, s.Highlight)

	tick(&s, 2)
	require.Equal(t, Charging, s.State)
	assert.Equal(t, cfg.Knight.ChargeFrame, s.Frame)

	tick(&s, 5)
	assert.Equal(t, Charging, s.State)
	assert.Equal(t, cfg.Knight.ChargeFrame, s.Frame)

	s.ReleasePrimary()
	assert.Equal(t, Swinging, s.State)
	assert.Equal(t, HighlightLeftClick, s.Highlight)

	tick(&s, 1)
	assert.Equal(t, cfg.Knight.ResumeFrame, s.Frame)
	tick(&s, 1)
	assert.Equal(t, 3, s.Frame)
	tick(&s, 1)
	assert.Equal(t, Idle, s.State)
}

func TestQuickClickPlaysThrough(t *testing.T) {
	var s Swing
	s.PressPrimary()
	s.ReleasePrimary()
	assert.Equal(t, HighlightLeftClick, s.Highlight)

	tick(&s, 4)
	assert.Equal(t, 3, s.Frame)
	assert.Equal(t, Swinging, s.State)
	tick(&s, 1)
	assert.Equal(t, Idle, s.State)
}

func TestDodgeCancelsSwing(t *testing.T) {
	var s Swing
	s.PressSpace()
	tick(&s, 2)

	s.PressSecondary()
	assert.Equal(t, Dodging, s.State)
	assert.Equal(t, cfg.Knight.FrameCount-1, s.Frame)
	assert.Equal(t, HighlightDodge, s.Highlight)

	tick(&s, 3)
	s.PressSpace()
	s.PressPrimary()
	assert.Equal(t, Dodging, s.State)

	s.ReleaseSecondary()
	assert.Equal(t, Swing{}, s)
}

func TestSecondaryReleaseAlwaysResets(t *testing.T) {
	var s Swing
	s.PressSpace()
	tick(&s, 1)
	require.Equal(t, Swinging, s.State)

	s.ReleaseSecondary()
	assert.Equal(t, Swing{}, s)
}

func TestSpaceRestartsFromCharge(t *testing.T) {
	var s Swing
	s.PressPrimary()
	tick(&s, 2)
	require.Equal(t, Charging, s.State)

	s.PressSpace()
	assert.Equal(t, Swinging, s.State)
	tick(&s, 1)
	assert.Equal(t, 0, s.Frame)
	tick(&s, 1)
	assert.Equal(t, 1, s.Frame, "space swings do not charge")
}
