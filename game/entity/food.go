package entity

import "grid-snake/game/types"

// Food is a single immutable cell. Eating it means replacing it.
type Food struct {
	position types.Point
}

func NewFood(position types.Point) Food {
	return Food{position: position}
}

func (f Food) Position() types.Point {
	return f.position
}
