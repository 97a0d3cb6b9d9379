package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/status"
)

// HighScoreSink persists a raised high score
type HighScoreSink interface {
	SaveHighScore(score int) error
}

// FeedbackSink receives the drained feedback batch once per frame
type FeedbackSink interface {
	OnFeedback(batch FeedbackBatch)
}

// Game drives a World from a pausable clock and routes its outputs to sinks
// All methods must be called from the goroutine that owns the World
type Game struct {
	World *World
	State *GameState
	Clock *PausableClock

	HighScores HighScoreSink
	sinks      []FeedbackSink

	log       *zap.SugaredLogger
	lastFrame time.Time
}

// NewGame creates an idle game over world; source nil uses monotonic time
func NewGame(world *World, source TimeProvider, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	clock := NewPausableClock(source)
	return &Game{
		World:     world,
		State:     NewGameState(),
		Clock:     clock,
		log:       log,
		lastFrame: clock.Now(),
	}
}

// AddFeedbackSink registers a presentation or audio consumer
func (g *Game) AddFeedbackSink(sink FeedbackSink) {
	g.sinks = append(g.sinks, sink)
}

// Start begins a fresh run, restarting when a run is already in progress
func (g *Game) Start() {
	if g.State.Phase() != PhaseIdle {
		g.World.Reset()
	}
	g.begin()
	g.log.Infow("run started", "run", g.World.RunID.String())
}

// Reset discards the current run and starts a fresh one
func (g *Game) Reset() {
	g.World.Reset()
	g.begin()
	g.log.Infow("run reset", "run", g.World.RunID.String())
}

func (g *Game) begin() {
	g.Clock.Resume()
	g.State.Start()
	g.lastFrame = g.Clock.Now()
	g.World.Stats.Inc(status.RunsStarted)
}

// Pause freezes the run and its clock
func (g *Game) Pause() bool {
	if !g.State.Pause() {
		return false
	}
	g.Clock.Pause()
	g.log.Debugw("run paused", "run", g.World.RunID.String(), "at", g.World.Now)
	return true
}

// Resume continues a paused run; the next delta is measured from now
func (g *Game) Resume() bool {
	if !g.State.Resume() {
		return false
	}
	g.Clock.Resume()
	g.lastFrame = g.Clock.Now()
	g.log.Debugw("run resumed", "run", g.World.RunID.String())
	return true
}

// TogglePause flips between Running and Paused
func (g *Game) TogglePause() {
	switch g.State.Phase() {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// Frame advances the run by the clock delta since the previous frame
func (g *Game) Frame() {
	now := g.Clock.Now()
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now
	g.World.Stats.Inc(status.Frames)

	if g.State.IsRunning() {
		g.World.Step(clamp(dt, 0, constants.MaxFrameDelta))
		if g.World.Ended() && g.State.End() {
			g.World.Stats.Inc(status.RunsEnded)
			g.log.Infow("run ended",
				"run", g.World.RunID.String(),
				"score", g.World.Score.Score,
				"length", g.World.Snake.Len(),
				"duration", g.World.Now,
			)
		}
	}

	g.flushHighScore()
	g.flushFeedback()
}

// Snapshot returns the world snapshot for presentation
func (g *Game) Snapshot() Snapshot {
	return g.World.Snapshot()
}

func (g *Game) flushHighScore() {
	high, dirty := g.World.TakeHighScore()
	if !dirty || g.HighScores == nil {
		return
	}
	safeDispatch(g.log, "highscore", func() {
		if err := g.HighScores.SaveHighScore(high); err != nil {
			g.log.Warnw("high score not saved", "score", high, "error", err)
		}
	})
}

func (g *Game) flushFeedback() {
	batch := g.World.Feedback.Drain()
	if batch.Empty() {
		return
	}
	for _, sink := range g.sinks {
		safeDispatch(g.log, fmt.Sprintf("%T", sink), func() {
			sink.OnFeedback(batch)
		})
	}
}

// safeDispatch runs fn, logging and swallowing any panic so the simulation continues
func safeDispatch(log *zap.SugaredLogger, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("sink panic recovered", "sink", name, "panic", r)
		}
	}()
	fn()
}
