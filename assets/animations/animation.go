package animations

// Animation cycles frame indices First..Last on a fixed period in seconds.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameDuration    float64 // seconds each frame is shown
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FrameDuration <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, frameDuration float64) *Animation {
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		FrameDuration: frameDuration,
		frame:         first,
	}
}
