package manager

import (
	"snake-wrap/game/entity"
	"snake-wrap/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Wrap folds pos back into the field on both axes. The field is a torus, so
// leaving one edge re-enters from the opposite one.
func (cm *CollisionManager) Wrap(pos types.Point) types.Point {
	return types.Point{
		X: mod(pos.X, cm.grid.Width),
		Y: mod(pos.Y, cm.grid.Height),
	}
}

// Next returns the wrapped cell one step from head in direction dir.
func (cm *CollisionManager) Next(head types.Point, dir types.Direction) types.Point {
	return cm.Wrap(head.Add(dir.Vector().Scale(cm.grid.CellSize)))
}

// IsSelfCollision checks pos against every body cell, the tail included.
// The tail has not been vacated yet when the new head is tested, so moving
// into the cell the tail is about to leave counts as a collision.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	if snake == nil {
		return false
	}
	return snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
