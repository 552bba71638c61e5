package entity

import (
	"testing"

	"snake-wrap/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	// When: a three cell snake is placed at the field center
	s := NewSnake(types.Point{X: 200, Y: 200}, 3, 20, Color{})

	// Then: the body runs head first to the left
	expected := []types.Point{{X: 200, Y: 200}, {X: 180, Y: 200}, {X: 160, Y: 200}}
	require.Equal(t, expected, s.Body)
	assert.Equal(t, types.Point{X: 200, Y: 200}, s.GetHead())
	assert.Equal(t, types.Point{X: 160, Y: 200}, s.GetTail())
}

func TestSnake_MoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 200, Y: 200}, 3, 20, Color{})

	s.Move(types.Point{X: 220, Y: 200})
	require.Equal(t, 4, s.Len())
	assert.Equal(t, types.Point{X: 220, Y: 200}, s.GetHead())
	assert.Equal(t, types.Point{X: 200, Y: 200}, s.Body[1])

	s.RemoveTail()
	expected := []types.Point{{X: 220, Y: 200}, {X: 200, Y: 200}, {X: 180, Y: 200}}
	assert.Equal(t, expected, s.Body)
}

func TestSnake_Cells(t *testing.T) {
	s := NewSnake(types.Point{X: 40, Y: 0}, 3, 20, Color{})

	cells := s.Cells()
	cells[0] = types.Point{X: -1, Y: -1}

	// The copy does not alias the body
	assert.Equal(t, types.Point{X: 40, Y: 0}, s.GetHead())
	assert.True(t, s.Occupies(types.Point{X: 0, Y: 0}))
	assert.False(t, s.Occupies(types.Point{X: 60, Y: 0}))
}
