package components

import "github.com/yohamta/donburi"

// EventKind identifies a gameplay event raised by the simulation.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventEnemyHit
	EventEnemyKilled
	EventEnemyRemoved
	EventPlayerHurt
	EventPlayerRespawned
	EventSwingStarted
	EventMinimapToggled
)

func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemyRemoved:
		return "enemy_removed"
	case EventPlayerHurt:
		return "player_hurt"
	case EventPlayerRespawned:
		return "player_respawned"
	case EventSwingStarted:
		return "swing_started"
	case EventMinimapToggled:
		return "minimap_toggled"
	}
	return "unknown"
}

// GameEvent is a single event. X and Y locate it in the world; Value carries the
// score awarded or the health left depending on the kind. A minimap toggle
// carries 1 when the minimap is now shown.
type GameEvent struct {
	Kind  EventKind
	X, Y  float64
	Value int
}

// EventsData collects the events raised during the current step. It is cleared
// at the start of every step.
type EventsData struct {
	Events []GameEvent
}

func (e *EventsData) Push(ev GameEvent) {
	e.Events = append(e.Events, ev)
}

// Count returns how many events of kind were raised this step.
func (e *EventsData) Count(kind EventKind) int {
	n := 0
	for _, ev := range e.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

var Events = donburi.NewComponentType[EventsData]()
