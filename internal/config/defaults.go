package config

import (
	"os"
	"path/filepath"

	"video-enhancer/internal/queue"
	"video-enhancer/internal/settings"
)

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultFirstTickMS  = 240
	defaultTickBaseMS   = 220
	defaultTickJitterMS = 120
	defaultStepMin      = 6
	defaultStepJitter   = 18
	defaultSettleMS     = 420
	defaultSpeed        = 1
	defaultWindowWidth  = 1280
	defaultWindowHeight = 860
)

// Default returns baseline configuration for first launch.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Simulation: Simulation{
			FirstTickMS:  defaultFirstTickMS,
			TickBaseMS:   defaultTickBaseMS,
			TickJitterMS: defaultTickJitterMS,
			StepMin:      defaultStepMin,
			StepJitter:   defaultStepJitter,
			SettleMS:     defaultSettleMS,
			Speed:        defaultSpeed,
		},
		Queue: Queue{
			Capacity: queue.DefaultCapacity,
		},
		Window: Window{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Defaults: settings.Defaults(),
	}
}

// DefaultPath returns ~/.video-enhancer/config.toml.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".video-enhancer", "config.toml")
}
