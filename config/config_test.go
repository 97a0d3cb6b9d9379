package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/snakefx/constants"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, "")
	if err != nil {
		t.Fatalf("Expected defaults to load, got %v", err)
	}
	if cfg.GridWidth != constants.DefaultGridWidth || cfg.GridHeight != constants.DefaultGridHeight {
		t.Errorf("Expected %dx%d, got %dx%d", constants.DefaultGridWidth, constants.DefaultGridHeight, cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.FrameInterval != constants.FrameUpdateInterval {
		t.Errorf("Expected frame interval %v, got %v", constants.FrameUpdateInterval, cfg.FrameInterval)
	}
	if !cfg.AudioEnabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "SNAKEFX_WIDTH=40\nSNAKEFX_HEIGHT=24\nSNAKEFX_LOG_LEVEL=debug\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Process environment beats the file, flags beat both
	t.Setenv(EnvGridHeight, "30")
	t.Setenv(EnvMasterVolume, "80")
	t.Setenv(EnvSeed, "99")

	cfg, err := load([]string{"-volume", "20", "-frame", "10ms"}, envFile)
	if err != nil {
		t.Fatalf("Expected config, got %v", err)
	}
	// godotenv sets file values into the process env; clean up what the test did not own
	t.Cleanup(func() {
		os.Unsetenv(EnvGridWidth)
		os.Unsetenv(EnvLogLevel)
	})

	if cfg.GridWidth != 40 {
		t.Errorf("Expected width 40 from .env, got %d", cfg.GridWidth)
	}
	if cfg.GridHeight != 30 {
		t.Errorf("Expected height 30 from environment, got %d", cfg.GridHeight)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.MasterVolume != 20 || cfg.Volume() != 0.2 {
		t.Errorf("Expected volume 20 from flags, got %d", cfg.MasterVolume)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.FrameInterval != 10*time.Millisecond {
		t.Errorf("Expected frame interval 10ms, got %v", cfg.FrameInterval)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	if _, err := load(nil, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"narrow grid", []string{"-width", "3"}, ErrInvalidGrid},
		{"short grid", []string{"-height", "2"}, ErrInvalidGrid},
		{"loud", []string{"-volume", "101"}, ErrInvalidVolume},
		{"negative volume", []string{"-volume", "-1"}, ErrInvalidVolume},
		{"color", []string{"-color", "cga"}, ErrInvalidColorMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.args, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBadEnvValue(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	if _, err := load(nil, ""); err == nil {
		t.Error("Expected error for unparsable boolean")
	}
}
