package entity

import (
	"fmt"

	"grid-snake/game/types"
)

// MoveOutcome is the result of a move attempt: either Moved or Blocked.
type MoveOutcome interface {
	isMoveOutcome()
}

// Moved reports a successful move and the new head.
type Moved struct {
	Direction types.Direction
	Head      types.Point
}

// Blocked reports a move that would have collided. The body is unchanged.
type Blocked struct {
	Reason types.CollisionType
}

func (Moved) isMoveOutcome()   {}
func (Blocked) isMoveOutcome() {}

func (m Moved) String() string {
	return fmt.Sprintf("Moved(direction=%v, head=%v)", m.Direction, m.Head)
}

func (b Blocked) String() string {
	return fmt.Sprintf("Blocked(%v)", b.Reason)
}
