package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Speed       float64
	Radius      float64
	InvulnTimer float64 // seconds until the enemy can be struck again
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Phase is the spawn/death lifecycle stage of an enemy.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseActive
	PhaseDying
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseDying:
		return "dying"
	}
	return "unknown"
}

// LifecycleData drives the spawn-in and death fades. While spawning Timer counts
// up to Duration; while dying it counts down from Duration to zero.
type LifecycleData struct {
	Phase    Phase
	Timer    float64
	Duration float64
}

// Collidable reports whether the enemy can be hit or deal contact damage.
func (l *LifecycleData) Collidable() bool {
	return l.Phase == PhaseActive
}

// Progress returns the linear fade fraction in [0, 1]: spawn-in progress while
// spawning, remaining life while dying and 1 otherwise.
func (l *LifecycleData) Progress() float64 {
	if l.Phase == PhaseActive || l.Duration <= 0 {
		return 1
	}
	p := l.Timer / l.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Kill starts the death countdown.
func (l *LifecycleData) Kill() {
	l.Phase = PhaseDying
	l.Timer = l.Duration
}

var Lifecycle = donburi.NewComponentType[LifecycleData]()
