package entity

import (
	"errors"
	"fmt"

	"grid-snake/game/types"

	"github.com/rs/zerolog/log"
)

// ErrEmptyBody is returned when a snake is built without any cell.
var ErrEmptyBody = errors.New("snake body is empty")

// Collider decides whether a candidate head position is free.
type Collider interface {
	Check(candidate types.Point, body []types.Point) types.CollisionType
}

type Snake struct {
	body         []types.Point // head first
	targetLength int
	facing       types.Direction
	collider     Collider
}

// NewSnake creates a snake facing right. The given body is copied.
func NewSnake(body []types.Point, collider Collider) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	owned := make([]types.Point, len(body))
	copy(owned, body)

	return &Snake{
		body:         owned,
		targetLength: len(owned),
		facing:       types.Right,
		collider:     collider,
	}, nil
}

// Move turns the snake towards dir and advances one cell. A turn straight
// back is ignored and the snake keeps its current facing.
func (s *Snake) Move(dir types.Direction) (MoveOutcome, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("move %v: %w", dir, types.ErrInvalidDirection)
	}
	if dir == s.facing.Opposite() {
		return s.ContinueMoving()
	}

	s.facing = dir
	return s.advance(), nil
}

// ContinueMoving advances one cell without changing direction.
func (s *Snake) ContinueMoving() (MoveOutcome, error) {
	if !s.facing.Valid() {
		return nil, fmt.Errorf("continue %v: %w", s.facing, types.ErrInvalidDirection)
	}
	return s.advance(), nil
}

func (s *Snake) advance() MoveOutcome {
	newHead := s.Head().Add(s.facing.Offset())

	if collision := s.collider.Check(newHead, s.body); collision != types.NoCollision {
		log.Warn().
			Stringer("head", newHead).
			Stringer("reason", collision).
			Msg("Snake collided")
		return Blocked{Reason: collision}
	}

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if len(s.body) > s.targetLength {
		s.body = s.body[:len(s.body)-1]
	}

	log.Debug().
		Stringer("head", newHead).
		Stringer("direction", s.facing).
		Msg("Snake head moved")
	return Moved{Direction: s.facing, Head: newHead}
}

// Grow raises the target length by one. The extra cell appears on the next
// successful move, when the tail is kept instead of dropped.
func (s *Snake) Grow() {
	s.targetLength++
	log.Debug().Int("length", s.targetLength).Msg("Snake grew")
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Facing() types.Direction {
	return s.facing
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

func (s *Snake) Len() int {
	return len(s.body)
}
