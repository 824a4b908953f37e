package types

import "fmt"

// Direction is a cardinal direction. The zero value None stands for "no
// input this tick".
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Offset converts a Direction into a one-cell displacement. Up decreases Y.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction. None and invalid values map to
// themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case None:
		return "NONE"
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
