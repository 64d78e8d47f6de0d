package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0.25)

	a.Update(0.125)
	assert.Equal(t, 0, a.Frame())
	a.Update(0.125)
	assert.Equal(t, 1, a.Frame())

	a.Update(0.75)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimationFreezesOnLastFrame(t *testing.T) {
	a := NewAnimation(2, 4, 1, 0.5)
	a.FreezeOnComplete = true

	a.Update(5)
	assert.Equal(t, 4, a.Frame())
	assert.True(t, a.Looped)
}
