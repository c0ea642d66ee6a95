package config

import (
	"time"

	"video-enhancer/internal/domain"
	"video-enhancer/internal/enhance"
)

// Logging controls the slog handler.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
}

// Simulation shapes the fake enhancement progress.
type Simulation struct {
	FirstTickMS  int     `toml:"first_tick_ms"`
	TickBaseMS   int     `toml:"tick_base_ms"`
	TickJitterMS int     `toml:"tick_jitter_ms"`
	StepMin      float64 `toml:"step_min"`
	StepJitter   float64 `toml:"step_jitter"`
	SettleMS     int     `toml:"settle_ms"`
	Speed        float64 `toml:"speed"`
	Seed         uint64  `toml:"seed"`
}

// Queue bounds the upload queue.
type Queue struct {
	Capacity int `toml:"capacity"`
}

// Window sizes the desktop window.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config is the application configuration file.
type Config struct {
	Logging    Logging                    `toml:"logging"`
	Simulation Simulation                 `toml:"simulation"`
	Queue      Queue                      `toml:"queue"`
	Window     Window                     `toml:"window"`
	Defaults   domain.EnhancementSettings `toml:"defaults"`
}

// Timing converts the simulation section into simulator timing.
func (s Simulation) Timing() enhance.Timing {
	return enhance.Timing{
		FirstTick:  time.Duration(s.FirstTickMS) * time.Millisecond,
		TickBase:   time.Duration(s.TickBaseMS) * time.Millisecond,
		TickJitter: time.Duration(s.TickJitterMS) * time.Millisecond,
		StepMin:    s.StepMin,
		StepJitter: s.StepJitter,
		Settle:     time.Duration(s.SettleMS) * time.Millisecond,
	}.Scale(s.Speed)
}
