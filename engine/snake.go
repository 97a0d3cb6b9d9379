package engine

import (
	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

// Snake is the player body, tail-first and head-last
type Snake struct {
	Body      []components.Point
	Direction components.Direction // Committed direction
}

// NewSnake places a fresh body of InitialSnakeLength heading right
// The head sits at (W/3, H/2)
func NewSnake(grid Grid) *Snake {
	hx := grid.Width / 3
	hy := grid.Height / 2
	body := make([]components.Point, 0, 32)
	for i := constants.InitialSnakeLength - 1; i >= 0; i-- {
		body = append(body, grid.Wrap(components.Point{X: hx - i, Y: hy}))
	}
	return &Snake{
		Body:      body,
		Direction: components.DirRight,
	}
}

// Head returns the head cell
func (s *Snake) Head() components.Point {
	return s.Body[len(s.Body)-1]
}

// Tail returns the tail cell
func (s *Snake) Tail() components.Point {
	return s.Body[0]
}

// Len returns the number of body cells
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any body cell occupies p
func (s *Snake) Contains(p components.Point) bool {
	for _, c := range s.Body {
		if c == p {
			return true
		}
	}
	return false
}

// Push appends a new head cell
func (s *Snake) Push(head components.Point) {
	s.Body = append(s.Body, head)
}

// DropTail removes the tail cell
func (s *Snake) DropTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[1:]
	}
}

// Grow duplicates the tail cell so the next tail drop keeps the length
func (s *Snake) Grow() {
	tail := s.Body[0]
	s.Body = append([]components.Point{tail}, s.Body...)
}

// Cells returns a copy of the body
func (s *Snake) Cells() []components.Point {
	out := make([]components.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
