package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogEventsWritesDebugEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logging.Log
	logging.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logging.Log = prev })

	tw := newTestWorld(t)
	tw.activeEnemy(40, 0, 1)
	StartSwing(tw.player, components.DirRight)
	tw.step(ticksToHit)

	LogEvents(tw.w)

	entries := logs.FilterMessage(components.EventEnemyKilled.String()).All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, cfg.Score.Kill, entries[0].ContextMap()["value"])
	assert.Equal(t, 1, logs.FilterMessage(components.EventEnemyHit.String()).Len())
}
