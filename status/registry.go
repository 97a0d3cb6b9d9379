package status

import "sync/atomic"

// Session counter keys
const (
	RunsStarted   = "runs.started"
	RunsEnded     = "runs.ended"
	Frames        = "frames"
	Steps         = "snake.steps"
	GemsEaten     = "items.gems"
	PowerUpsTaken = "items.powerups"
	ItemsSpawned  = "items.spawned"
	ItemsExpired  = "items.expired"
	ShieldSaves   = "shield.saves"
)

// Registry holds session-wide counters
// Written by the game goroutine, readable from any goroutine
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{Ints: NewMetricMap[atomic.Int64]()}
}

// Inc adds one to counter key and returns the new value
func (r *Registry) Inc(key string) int64 {
	return r.Add(key, 1)
}

// Add adds n to counter key and returns the new value
func (r *Registry) Add(key string, n int64) int64 {
	return r.Ints.Get(key).Add(n)
}

// Value returns counter key, zero when never written
func (r *Registry) Value(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Fields returns alternating key/value pairs for structured logging
func (r *Registry) Fields() []any {
	fields := make([]any, 0, 2*r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, key, v.Load())
	})
	return fields
}
