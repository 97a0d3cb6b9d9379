package engine

import (
	"math"

	"github.com/lixenwraith/snakefx/components"
)

// Grid is the toroidal board; every edge is identified with the opposite edge
type Grid struct {
	Width  int
	Height int
}

// Wrap maps any integer point into [0,Width)x[0,Height)
func (g Grid) Wrap(p components.Point) components.Point {
	return components.Point{
		X: wrapAxis(p.X, g.Width),
		Y: wrapAxis(p.Y, g.Height),
	}
}

// Contains reports whether p lies on the board without wrapping
func (g Grid) Contains(p components.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Delta returns the shortest signed per-axis offset from a to b across the wrap
func (g Grid) Delta(a, b components.Point) (dx, dy int) {
	return shortestAxis(b.X-a.X, g.Width), shortestAxis(b.Y-a.Y, g.Height)
}

// Distance is the Euclidean length of the shortest toroidal offset
func (g Grid) Distance(a, b components.Point) float64 {
	dx, dy := g.Delta(a, b)
	return math.Hypot(float64(dx), float64(dy))
}

// StepToward returns the per-axis unit step moving from toward to, 0 on aligned axes
func (g Grid) StepToward(from, to components.Point) (sx, sy int) {
	dx, dy := g.Delta(from, to)
	return sign(dx), sign(dy)
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func wrapAxis(v, size int) int {
	if size <= 0 {
		return 0
	}
	return ((v % size) + size) % size
}

func shortestAxis(d, size int) int {
	if size <= 0 {
		return d
	}
	d = wrapAxis(d, size)
	if d > size/2 {
		d -= size
	}
	return d
}
