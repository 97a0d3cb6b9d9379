package engine

import (
	"sync"

	"github.com/lixenwraith/snakefx/components"
)

// InputLatch holds the most recently requested direction
// Writes may come from the input goroutine; the movement system reads it once per step
type InputLatch struct {
	mu  sync.Mutex
	dir components.Direction
}

// NewInputLatch creates a latch holding dir
func NewInputLatch(dir components.Direction) *InputLatch {
	return &InputLatch{dir: dir}
}

// Set overwrites the latched direction, non-unit vectors are ignored
func (l *InputLatch) Set(dir components.Direction) {
	if !dir.IsUnit() {
		return
	}
	l.mu.Lock()
	l.dir = dir
	l.mu.Unlock()
}

// Get returns the latched direction
func (l *InputLatch) Get() components.Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dir
}
