package manager

import "grid-snake/game/types"

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check reports what a head moving to candidate would hit. Walls take
// precedence. The current head (body[0]) is skipped, but the tail is not,
// even when the tail is about to move away this tick.
func (cm *CollisionManager) Check(candidate types.Point, body []types.Point) types.CollisionType {
	if cm.isWallCollision(candidate) {
		return types.WallCollision
	}
	if isSelfCollision(candidate, body) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func isSelfCollision(pos types.Point, body []types.Point) bool {
	for i := 1; i < len(body); i++ {
		if pos == body[i] {
			return true
		}
	}
	return false
}
