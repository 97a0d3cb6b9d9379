package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/snakefx/audio"
	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/config"
	"github.com/lixenwraith/snakefx/core"
	"github.com/lixenwraith/snakefx/engine"
	"github.com/lixenwraith/snakefx/input"
	"github.com/lixenwraith/snakefx/render"
	"github.com/lixenwraith/snakefx/store"
	"github.com/lixenwraith/snakefx/systems"
)

// app binds the input handler to the game and its presentation
type app struct {
	game   *engine.Game
	sound  *audio.SoundManager
	screen tcell.Screen
	log    *zap.SugaredLogger
}

func (a *app) SetDirection(dir components.Direction) {
	a.game.World.Input.Set(dir)
}

// Start begins a run from the title or game-over screen and resumes a paused one
func (a *app) Start() {
	switch a.game.State.Phase() {
	case engine.PhaseIdle, engine.PhaseEnded:
		a.game.Start()
	case engine.PhasePaused:
		a.game.Resume()
	}
}

func (a *app) TogglePause() { a.game.TogglePause() }

func (a *app) Reset() { a.game.Reset() }

func (a *app) ToggleMute() {
	muted := a.sound.ToggleMute()
	a.log.Debugw("mute toggled", "muted", muted)
}

func (a *app) Resize() { a.screen.Sync() }

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	log, err := core.InitLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger unavailable: %v (continuing without log file)\n", err)
		log = core.NopLogger()
	}
	defer core.SyncLogger(log)

	if cfg.ColorMode == "256" {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	highScores := store.NewHighScoreStore(cfg.HighScorePath)
	best, err := highScores.Load()
	if err != nil {
		log.Warnw("high score unreadable, starting from zero", "path", highScores.Path(), "error", err)
	}

	world := engine.NewWorld(engine.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}, engine.NewRandom(cfg.Seed))
	world.SetHighScore(best)
	systems.Install(world)

	game := engine.NewGame(world, nil, log)
	game.HighScores = highScores

	renderer := render.NewTerminalRenderer(screen, cfg.Seed)
	game.AddFeedbackSink(renderer)

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.AudioEnabled, cfg.Volume()), log)
	if cfg.AudioEnabled {
		if err := sound.Initialize(); err != nil {
			log.Warnw("audio unavailable, continuing silently", "error", err)
		}
	}
	defer sound.Cleanup()
	game.AddFeedbackSink(sound)

	a := &app{game: game, sound: sound, screen: screen, log: log}
	handler := input.NewHandler(nil)

	log.Infow("snakefx started",
		"grid", fmt.Sprintf("%dx%d", cfg.GridWidth, cfg.GridHeight),
		"seed", cfg.Seed,
		"audio", sound.Enabled(),
	)

	// Event poller owns PollEvent; the main loop owns the world
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if handler.Dispatch(ev, a) {
				log.Infow("snakefx exiting", append([]any{"highScore", game.World.Score.HighScore}, world.Stats.Fields()...)...)
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			game.Frame()
			renderer.Draw(render.View{
				Snapshot: game.Snapshot(),
				Phase:    game.State.Phase(),
				Muted:    sound.Muted(),
				Dt:       dt,
			})
		}
	}
}
