package manager

import (
	"snake-wrap/game/entity"
	"snake-wrap/game/types"

	"golang.org/x/exp/rand"
)

// maxSpawnAttempts bounds the search for a free cell when AvoidSnake is set.
const maxSpawnAttempts = 1000

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand

	// AvoidSnake rejects cells under the snake body. Off by default, so food
	// may spawn beneath the snake and stay unreachable until it moves away.
	AvoidSnake bool
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood draws each coordinate uniformly from the grid-aligned positions
// along its axis.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	food := fm.randomCell()
	if !fm.AvoidSnake || snake == nil {
		return food
	}

	for attempts := 0; attempts < maxSpawnAttempts; attempts++ {
		if !snake.Occupies(food) {
			return food
		}
		food = fm.randomCell()
	}

	// Field is (nearly) full; fall back to a linear scan for any free cell.
	for y := 0; y < fm.grid.Rows(); y++ {
		for x := 0; x < fm.grid.Columns(); x++ {
			p := types.Point{X: x * fm.grid.CellSize, Y: y * fm.grid.CellSize}
			if !snake.Occupies(p) {
				return p
			}
		}
	}
	return food
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Columns()) * fm.grid.CellSize,
		Y: fm.rng.Intn(fm.grid.Rows()) * fm.grid.CellSize,
	}
}
