package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage removes amount from Current, never going below zero, and reports whether
// the entity is now out of health.
func (h *HealthData) Damage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

// Refill restores Current to Max.
func (h *HealthData) Refill() {
	h.Current = h.Max
}

var Health = donburi.NewComponentType[HealthData]()
