package types

import (
	"errors"
	"fmt"
)

// Default grid dimensions
const (
	DefaultWidth  = 40
	DefaultHeight = 40
)

// ErrInvalidDirection is returned when a direction outside the four cardinal
// ones reaches the game core.
var ErrInvalidDirection = errors.New("invalid direction")

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// DefaultBody returns the starting body, head first. A new slice is built on
// every call.
func DefaultBody() []Point {
	return []Point{{X: 1, Y: 1}, {X: 0, Y: 0}}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "NONE"
	case WallCollision:
		return "WALL_HIT"
	case SelfCollision:
		return "SNAKE_HIT"
	default:
		return fmt.Sprintf("CollisionType(%d)", int(c))
	}
}
