// Package knight implements the sword-swing demo: a four-frame swing that can
// be played in full, held on a charge frame, or interrupted by a dodge.
package knight

import cfg "github.com/automoto/dungeon-crawler/config"

// State is what the knight is doing.
type State int

const (
	Idle State = iota
	Swinging
	Charging // swing held on the charge frame until the button is released
	Dodging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Swinging:
		return "swinging"
	case Charging:
		return "charging"
	case Dodging:
		return "dodging"
	}
	return "unknown"
}

// Highlight names the control label lit up in the demo's legend.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightSpace
	HighlightLeftClick
	HighlightCharge
	HighlightDodge
)

type trigger int

const (
	triggerNone trigger = iota
	triggerSpace
	triggerPrimary
	triggerSecondary
)

// Swing is the demo's animation state. The zero value is an idle knight on
// frame 0.
type Swing struct {
	State     State
	Frame     int // sprite frame currently shown
	Highlight Highlight

	next        int // frame shown on the next step
	ticks       int // render frames since the last step
	primaryHeld bool
	last        trigger
}

// PressSpace plays a full swing unless one is running or the knight is dodging.
func (s *Swing) PressSpace() {
	if s.State == Swinging || s.State == Dodging {
		return
	}
	s.primaryHeld = false
	s.last = triggerSpace
	s.Highlight = HighlightSpace
	s.restart(0)
}

// PressPrimary starts a charged swing. While the button stays down the swing
// holds on the charge frame.
func (s *Swing) PressPrimary() {
	if s.State == Dodging {
		return
	}
	s.primaryHeld = true
	s.last = triggerPrimary
	s.Highlight = HighlightCharge
	if s.State == Swinging {
		return
	}
	s.restart(0)
}

// ReleasePrimary lets a held charge finish from the resume frame.
func (s *Swing) ReleasePrimary() {
	s.primaryHeld = false
	if s.State == Charging {
		s.last = triggerPrimary
		s.Highlight = HighlightLeftClick
		s.restart(min(cfg.Knight.ResumeFrame, cfg.Knight.FrameCount-1))
		return
	}
	if s.State == Swinging && s.last == triggerPrimary {
		s.Highlight = HighlightLeftClick
	}
}

// PressSecondary cancels any swing and shows the dodge frame.
func (s *Swing) PressSecondary() {
	s.State = Dodging
	s.Frame = cfg.Knight.FrameCount - 1
	s.Highlight = HighlightDodge
	s.primaryHeld = false
	s.last = triggerSecondary
}

// ReleaseSecondary always returns to the resting frame with no highlight.
func (s *Swing) ReleaseSecondary() {
	s.reset()
}

// Tick advances the swing by one render frame. The shown frame changes every
// cfg.Knight.FramesPerStep ticks.
func (s *Swing) Tick() {
	if s.State != Swinging {
		return
	}
	s.ticks++
	if s.ticks < cfg.Knight.FramesPerStep {
		return
	}
	s.ticks = 0

	if s.next >= cfg.Knight.FrameCount {
		s.reset()
		return
	}
	s.Frame = s.next

	if s.primaryHeld && s.Frame == cfg.Knight.ChargeFrame {
		s.State = Charging
		s.last = triggerPrimary
		s.Highlight = HighlightCharge
		return
	}

	switch s.last {
	case triggerSpace:
		s.Highlight = HighlightSpace
	case triggerPrimary:
		if !s.primaryHeld {
			s.Highlight = HighlightLeftClick
		}
	}
	s.next++
}

func (s *Swing) restart(from int) {
	s.State = Swinging
	s.next = from
	s.ticks = 0
}

func (s *Swing) reset() {
	*s = Swing{}
}
