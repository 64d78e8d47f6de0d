package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy, components.Lifecycle))

func getSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func getEvents(w donburi.World) *components.EventsData {
	entry, ok := components.Events.First(w)
	if !ok {
		return nil
	}
	return components.Events.Get(entry)
}

func getSpace(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

func pushEvent(w donburi.World, ev components.GameEvent) {
	if events := getEvents(w); events != nil {
		events.Push(ev)
	}
}

// EnemyCount returns how many enemies exist, dying ones included.
func EnemyCount(w donburi.World) int {
	return enemyQuery.Count(w)
}

// candidateEnemies returns the enemies whose bodies may overlap the rectangle
// (x, y, width, height). With a collision space it runs a broadphase through a
// temporary sensor; without one every enemy is a candidate.
func candidateEnemies(w donburi.World, x, y, width, height float64) []*donburi.Entry {
	space := getSpace(w)
	if space == nil {
		var all []*donburi.Entry
		enemyQuery.Each(w, func(e *donburi.Entry) {
			all = append(all, e)
		})
		return all
	}

	// resolv treats X+W-1 as the far cell edge, so sub-pixel contacts on a
	// cell line need a 1px margin to be found.
	sensor := resolv.NewObject(x-1, y-1, width+2, height+2, tags.ResolvSensor)
	space.Add(sensor)
	defer space.Remove(sensor)

	collision := sensor.Check(0, 0, tags.ResolvEnemy)
	if collision == nil {
		return nil
	}
	var found []*donburi.Entry
	for _, obj := range collision.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		found = append(found, e)
	}
	return found
}
