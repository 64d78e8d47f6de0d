package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionColumns(t *testing.T) {
	tests := []struct {
		dir    Direction
		move   Column
		attack Column
		vec    Vector
	}{
		{DirUp, ColumnMoveUp, ColumnAttackRight, Vector{X: 0, Y: -1}},
		{DirLeft, ColumnMoveLeft, ColumnAttackLeft, Vector{X: -1, Y: 0}},
		{DirDown, ColumnMoveDown, ColumnAttackRight, Vector{X: 0, Y: 1}},
		{DirRight, ColumnMoveRight, ColumnAttackRight, Vector{X: 1, Y: 0}},
		{DirNone, ColumnStatic, ColumnAttackRight, Vector{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.move, MoveColumn(tt.dir))
			assert.Equal(t, tt.attack, AttackColumn(tt.dir))
			assert.Equal(t, tt.vec, tt.dir.Vector())
			if tt.dir != DirNone {
				assert.Equal(t, tt.dir, CardinalFromFacing(tt.vec))
			}
		})
	}
}

func TestHealthDamageFloorsAtZero(t *testing.T) {
	h := HealthData{Current: 2, Max: 3}
	assert.False(t, h.Damage(1))
	assert.True(t, h.Damage(5))
	assert.Equal(t, 0, h.Current)

	h.Refill()
	assert.Equal(t, 3, h.Current)
}

func TestLifecycleCollidableOnlyWhenActive(t *testing.T) {
	l := LifecycleData{Phase: PhaseSpawning, Duration: 0.6}
	assert.False(t, l.Collidable())
	assert.Equal(t, 0.0, l.Progress())

	l.Phase = PhaseActive
	assert.True(t, l.Collidable())

	l.Kill()
	assert.False(t, l.Collidable())
	assert.Equal(t, PhaseDying, l.Phase)
	assert.Equal(t, 1.0, l.Progress())
}

func TestEventsCount(t *testing.T) {
	var e EventsData
	e.Push(GameEvent{Kind: EventEnemyHit})
	e.Push(GameEvent{Kind: EventEnemyHit})
	e.Push(GameEvent{Kind: EventEnemyKilled})
	assert.Equal(t, 2, e.Count(EventEnemyHit))
	assert.Equal(t, 0, e.Count(EventPlayerHurt))
}
