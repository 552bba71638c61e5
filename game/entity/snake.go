package entity

import (
	"snake-wrap/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is an ordered body, head first.
type Snake struct {
	Body  []types.Point
	Color Color
}

// NewSnake lays out a horizontal segment of the given length with its head
// at head and the tail trailing to the left.
func NewSnake(head types.Point, length, cellSize int, color Color) *Snake {
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X - i*cellSize, Y: head.Y})
	}
	return &Snake{
		Body:  body,
		Color: color,
	}
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body safe to hand to a renderer.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
