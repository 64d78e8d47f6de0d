package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/yohamta/donburi"
)

const (
	testWidth  = 1600.0
	testHeight = 1216.0

	// tick is exactly representable so timers land on their durations.
	tick = 1.0 / 32
)

// useTestConfig swaps in timings that divide evenly by tick and disables the
// periodic spawner. The previous values are restored when the test ends.
func useTestConfig(t *testing.T) {
	t.Helper()
	world, player, enemy, spawner, score, anim := cfg.World, cfg.Player, cfg.Enemy, cfg.Spawner, cfg.Score, cfg.Animation
	t.Cleanup(func() {
		cfg.World, cfg.Player, cfg.Enemy, cfg.Spawner, cfg.Score, cfg.Animation = world, player, enemy, spawner, score, anim
	})

	cfg.Enemy.SpawnDuration = 0.5
	cfg.Enemy.InvulnTime = 1.0
	cfg.Player.InvulnTime = 1.0
	cfg.Animation.FrameDuration = 0.125
	cfg.Spawner.Interval = 1e9
}

type testWorld struct {
	w       donburi.World
	session *donburi.Entry
	player  *donburi.Entry
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	useTestConfig(t)

	w := donburi.NewWorld()
	factory.CreateSpace(w, int(testWidth), int(testHeight), spaceCellSize, spaceCellSize)
	session := factory.CreateSession(w, testWidth, testHeight, rand.New(rand.NewSource(1)))
	player := factory.CreatePlayer(w, testWidth/2, testHeight/2)
	return &testWorld{w: w, session: session, player: player}
}

func (tw *testWorld) step(n int) {
	for i := 0; i < n; i++ {
		Step(tw.w, tick)
	}
}

// hold replaces the held actions for the next step.
func (tw *testWorld) hold(actions ...cfg.ActionID) {
	input := components.Input.Get(tw.session)
	input.Advance()
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func (tw *testWorld) playerPos() (float64, float64) {
	return components.Object.Get(tw.player).Center()
}

// activeEnemy places an enemy offset from the player that has finished
// spawning in.
func (tw *testWorld) activeEnemy(dx, dy float64, health int) *donburi.Entry {
	px, py := tw.playerPos()
	e := factory.CreateEnemy(tw.w, px+dx, py+dy)
	life := components.Lifecycle.Get(e)
	life.Phase = components.PhaseActive
	life.Timer = life.Duration
	h := components.Health.Get(e)
	h.Current = health
	h.Max = health
	return e
}

func (tw *testWorld) events() *components.EventsData {
	return components.Events.Get(tw.session)
}
