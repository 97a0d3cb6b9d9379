package systems

import (
	"time"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
	"github.com/lixenwraith/snakefx/status"
)

// MovementSystem commits at most one grid step per tick once the move accumulator reaches the move delay
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	world.SinceMove += dt
	if world.SinceMove < world.Flags.MoveDelay {
		return
	}
	// Remainder is dropped, one step per tick at most
	world.SinceMove = 0
	s.step(world)
}

func (s *MovementSystem) step(world *engine.World) {
	snake := world.Snake
	fb := world.Feedback

	if dir := world.Input.Get(); !dir.IsReverseOf(snake.Direction) {
		snake.Direction = dir
	}

	next := world.Grid.Wrap(snake.Head().Add(snake.Direction))

	if snake.Contains(next) {
		if !world.Flags.ShieldPass || !world.Effects.ConsumeShield() {
			world.EndRun()
			fb.Shake(constants.ShakeGameOver)
			fb.Burst(snake.Head(), components.BurstCrash, constants.BurstCrash)
			fb.Cue(components.SoundCue{Type: components.SoundGameOver})
			return
		}
		world.Stats.Inc(status.ShieldSaves)
		fb.Shake(constants.ShakeShieldHit)
		fb.Burst(next, components.BurstShield, constants.BurstShield)
		fb.Cue(components.SoundCue{Type: components.SoundShieldHit})
	}

	snake.Push(next)
	world.Stats.Inc(status.Steps)

	if item, ok := world.Items.Take(next); ok {
		s.consume(world, item)
		if world.Rand.Float64() < constants.ExtraSpawnChance {
			world.SpawnItem(nil)
		}
	}
	snake.DropTail()

	if world.Score.RaiseHighScore() {
		world.MarkHighScore()
	}
}

func (s *MovementSystem) consume(world *engine.World, item components.Item) {
	fb := world.Feedback

	if item.Kind == components.KindGem {
		multiplier := world.Score.Multiplier
		world.Score.AwardGem(world.ScoreMultiplier)
		world.Snake.Grow()
		world.Stats.Inc(status.GemsEaten)

		fb.Burst(item.Pos, components.BurstGem, constants.BurstGem)
		fb.Shake(constants.ShakeGem)
		fb.Cue(components.SoundCue{Type: components.SoundGem, Multiplier: multiplier})
		return
	}

	world.Effects.Apply(item.Kind, world.Now)
	world.Stats.Inc(status.PowerUpsTaken)
	fb.Burst(item.Pos, components.BurstForKind(item.Kind), constants.BurstPowerUp)
	fb.Cue(components.SoundCue{Type: components.SoundPowerUp})
}
