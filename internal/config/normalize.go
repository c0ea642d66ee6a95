package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"video-enhancer/internal/queue"
	"video-enhancer/internal/settings"
)

// normalize repairs out-of-range values and expands paths.
func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	dir, err := expandPath(c.Logging.Dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = dir

	sim := &c.Simulation
	sim.FirstTickMS = max(0, sim.FirstTickMS)
	sim.TickBaseMS = max(0, sim.TickBaseMS)
	sim.TickJitterMS = max(0, sim.TickJitterMS)
	sim.SettleMS = max(0, sim.SettleMS)
	if sim.StepMin <= 0 {
		sim.StepMin = defaultStepMin
	}
	sim.StepJitter = max(0, sim.StepJitter)
	if sim.Speed <= 0 {
		sim.Speed = defaultSpeed
	}

	if c.Queue.Capacity <= 0 {
		c.Queue.Capacity = queue.DefaultCapacity
	}
	if c.Window.Width <= 0 {
		c.Window.Width = defaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = defaultWindowHeight
	}

	c.Defaults = settings.Normalize(c.Defaults)
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
