package components

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// Vector returns the unit vector for the direction. DirNone maps to right, the
// default facing.
func (d Direction) Vector() Vector {
	switch d {
	case DirUp:
		return Vector{X: 0, Y: -1}
	case DirLeft:
		return Vector{X: -1, Y: 0}
	case DirDown:
		return Vector{X: 0, Y: 1}
	case DirRight, DirNone:
		return Vector{X: 1, Y: 0}
	}
	return Vector{X: 1, Y: 0}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	}
	return "none"
}

// CardinalFromFacing projects a facing vector onto its dominant axis. Ties favour
// the horizontal axis and zero components favour right/down.
func CardinalFromFacing(v Vector) Direction {
	ax, ay := v.X, v.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax >= ay {
		if v.X >= 0 {
			return DirRight
		}
		return DirLeft
	}
	if v.Y >= 0 {
		return DirDown
	}
	return DirUp
}
