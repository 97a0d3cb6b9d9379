package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/snakefx/constants"
)

var (
	ErrInvalidGrid      = errors.New("invalid grid size")
	ErrInvalidVolume    = errors.New("invalid master volume")
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// Environment variable names
const (
	EnvGridWidth     = "SNAKEFX_WIDTH"
	EnvGridHeight    = "SNAKEFX_HEIGHT"
	EnvSeed          = "SNAKEFX_SEED"
	EnvFrameInterval = "SNAKEFX_FRAME_INTERVAL"
	EnvHighScorePath = "SNAKEFX_HIGHSCORE_PATH"
	EnvLogPath       = "SNAKEFX_LOG_PATH"
	EnvLogLevel      = "SNAKEFX_LOG_LEVEL"
	EnvAudioEnabled  = "SNAKEFX_AUDIO_ENABLED"
	EnvMasterVolume  = "SNAKEFX_MASTER_VOLUME" // 0-100
	EnvColorMode     = "SNAKEFX_COLOR"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Config holds runtime settings
type Config struct {
	GridWidth     int
	GridHeight    int
	Seed          int64 // 0 picks a time-based seed
	FrameInterval time.Duration
	HighScorePath string
	LogPath       string
	LogLevel      string
	AudioEnabled  bool
	MasterVolume  int // 0-100
	ColorMode     string
}

// Default returns the built-in settings
func Default() *Config {
	dir := dataDir()
	return &Config{
		GridWidth:     constants.DefaultGridWidth,
		GridHeight:    constants.DefaultGridHeight,
		FrameInterval: constants.FrameUpdateInterval,
		HighScorePath: filepath.Join(dir, "highscore.json"),
		LogPath:       filepath.Join(dir, "snakefx.log"),
		LogLevel:      "info",
		AudioEnabled:  true,
		MasterVolume:  int(constants.DefaultMasterVolume * 100),
		ColorMode:     "auto",
	}
}

// Volume returns the master volume as a 0-1 fraction
func (c *Config) Volume() float64 {
	return float64(c.MasterVolume) / 100.0
}

// Load layers defaults, the .env file, SNAKEFX_* variables and command-line flags
func Load(args []string) (*Config, error) {
	return load(args, DefaultEnvFile)
}

func load(args []string, envFile string) (*Config, error) {
	cfg := Default()

	// Existing environment wins over the file
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if err := envInt(EnvGridWidth, &c.GridWidth); err != nil {
		return err
	}
	if err := envInt(EnvGridHeight, &c.GridHeight); err != nil {
		return err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvFrameInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFrameInterval, err)
		}
		c.FrameInterval = d
	}
	if v := os.Getenv(EnvHighScorePath); v != "" {
		c.HighScorePath = v
	}
	if v := os.Getenv(EnvLogPath); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.AudioEnabled = b
	}
	if err := envInt(EnvMasterVolume, &c.MasterVolume); err != nil {
		return err
	}
	if v := os.Getenv(EnvColorMode); v != "" {
		c.ColorMode = v
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	flags := flag.NewFlagSet("snakefx", flag.ContinueOnError)
	flags.IntVar(&c.GridWidth, "width", c.GridWidth, "board width in cells")
	flags.IntVar(&c.GridHeight, "height", c.GridHeight, "board height in cells")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "gameplay random seed, 0 for time-based")
	flags.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "frame interval")
	flags.StringVar(&c.HighScorePath, "highscore", c.HighScorePath, "high score file")
	flags.StringVar(&c.LogPath, "log", c.LogPath, "log file")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	flags.BoolVar(&c.AudioEnabled, "audio", c.AudioEnabled, "enable sound")
	flags.IntVar(&c.MasterVolume, "volume", c.MasterVolume, "master volume 0-100")
	flags.StringVar(&c.ColorMode, "color", c.ColorMode, "color mode: auto, truecolor, 256")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	return nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.GridWidth < constants.MinGridWidth || c.GridHeight < constants.MinGridHeight {
		return fmt.Errorf("%dx%d, minimum %dx%d: %w",
			c.GridWidth, c.GridHeight, constants.MinGridWidth, constants.MinGridHeight, ErrInvalidGrid)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 100 {
		return fmt.Errorf("%d not in 0-100: %w", c.MasterVolume, ErrInvalidVolume)
	}
	switch c.ColorMode {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("%q: %w", c.ColorMode, ErrInvalidColorMode)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval %v must be positive", c.FrameInterval)
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func dataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "snakefx")
	}
	return "."
}
