package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// CollisionManager answers what a candidate head runs into. The grid has no
// walls, so only the snake itself can be hit.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision reports whether pos lies on the snake's current body.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return cm.grid.At(pos) == types.Snake && snake.Contains(pos)
}

// IsFoodCollision reports whether pos holds food.
func (cm *CollisionManager) IsFoodCollision(pos types.Point) bool {
	return cm.grid.At(pos) == types.Food
}
