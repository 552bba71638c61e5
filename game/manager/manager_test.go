package manager

import (
	"testing"
	"time"

	"snake-wrap/game/entity"
	"snake-wrap/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionManager_Wrap(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())

	t.Run("right edge", func(t *testing.T) {
		// Given: head at (380,200) moving right
		next := cm.Next(types.Point{X: 380, Y: 200}, types.Right)

		// Then: (400,200) wraps to (0,200)
		require.Equal(t, types.Point{X: 0, Y: 200}, next)
	})

	t.Run("left edge", func(t *testing.T) {
		next := cm.Next(types.Point{X: 0, Y: 200}, types.Left)
		require.Equal(t, types.Point{X: 380, Y: 200}, next)
	})

	t.Run("top edge", func(t *testing.T) {
		next := cm.Next(types.Point{X: 100, Y: 0}, types.Up)
		require.Equal(t, types.Point{X: 100, Y: 380}, next)
	})

	t.Run("bottom edge", func(t *testing.T) {
		next := cm.Next(types.Point{X: 100, Y: 380}, types.Down)
		require.Equal(t, types.Point{X: 100, Y: 0}, next)
	})

	t.Run("true modulo", func(t *testing.T) {
		// Far out-of-range values are folded, not clamped
		assert.Equal(t, types.Point{X: 20, Y: 360}, cm.Wrap(types.Point{X: 820, Y: -440}))
	})

	t.Run("always inside the field", func(t *testing.T) {
		for x := -1000; x <= 1000; x += 20 {
			for y := -1000; y <= 1000; y += 20 {
				p := cm.Wrap(types.Point{X: x, Y: y})
				require.True(t, types.DefaultGrid().Contains(p), "wrapped %v out of field", p)
			}
		}
	})
}

func TestCollisionManager_IsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	snake := entity.NewSnake(types.Point{X: 200, Y: 200}, 4, 20, entity.Color{})

	assert.True(t, cm.IsSelfCollision(types.Point{X: 180, Y: 200}, snake))
	assert.False(t, cm.IsSelfCollision(types.Point{X: 220, Y: 200}, snake))
	assert.False(t, cm.IsSelfCollision(types.Point{X: 220, Y: 200}, nil))

	// The tail cell still counts even though it would be vacated this tick
	assert.True(t, cm.IsSelfCollision(snake.GetTail(), snake))
}

func TestCollisionManager_IsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())

	assert.True(t, cm.IsFoodCollision(types.Point{X: 20, Y: 40}, types.Point{X: 20, Y: 40}))
	assert.False(t, cm.IsFoodCollision(types.Point{X: 20, Y: 40}, types.Point{X: 40, Y: 20}))
}

func TestFoodManager_GenerateFood(t *testing.T) {
	grid := types.DefaultGrid()
	fm := NewFoodManager(grid, 42)

	seen := make(map[types.Point]bool)
	for i := 0; i < 2000; i++ {
		food := fm.GenerateFood(nil)
		require.True(t, grid.Contains(food))
		require.Zero(t, food.X%grid.CellSize)
		require.Zero(t, food.Y%grid.CellSize)
		seen[food] = true
	}

	// Many distinct cells are reachable
	assert.Greater(t, len(seen), 200)
}

func TestFoodManager_Deterministic(t *testing.T) {
	a := NewFoodManager(types.DefaultGrid(), 7)
	b := NewFoodManager(types.DefaultGrid(), 7)

	for i := 0; i < 20; i++ {
		require.Equal(t, a.GenerateFood(nil), b.GenerateFood(nil))
	}
}

func TestFoodManager_AvoidSnake(t *testing.T) {
	// Given: a 3x1 field where the snake covers two of the three cells
	grid := types.Grid{Width: 60, Height: 20, CellSize: 20}
	snake := &entity.Snake{Body: []types.Point{{X: 0, Y: 0}, {X: 20, Y: 0}}}

	fm := NewFoodManager(grid, 1)
	fm.AvoidSnake = true

	// Then: the only free cell is always picked
	for i := 0; i < 50; i++ {
		require.Equal(t, types.Point{X: 40, Y: 0}, fm.GenerateFood(snake))
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	sm.AddToHistory(GameRecord{ID: "a", Score: 3, StartTime: start, EndTime: start.Add(time.Minute)})
	sm.AddToHistory(GameRecord{ID: "b", Score: 1})

	require.Equal(t, 3, sm.GetHighScore())
	require.Equal(t, 2, sm.GamesPlayed())

	history := sm.GetScoreHistory()
	assert.Equal(t, "a", history[0].ID)
	assert.Equal(t, time.Minute, history[0].Duration())

	for i := 0; i < maxHistory+5; i++ {
		sm.AddToHistory(GameRecord{Score: 0})
	}
	assert.Equal(t, maxHistory, sm.GamesPlayed())
	assert.Equal(t, 3, sm.GetHighScore())
}
