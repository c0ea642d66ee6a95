package settings

import (
	"errors"
	"fmt"
	"sync"

	"video-enhancer/internal/domain"
)

// ErrInvalidSetting is returned when a patch carries a value the controls never offer.
var ErrInvalidSetting = errors.New("invalid setting")

// Store holds the session's enhancement settings. Values are replaced
// wholesale on every update and never persisted.
type Store struct {
	mu      sync.RWMutex
	current domain.EnhancementSettings
}

// NewStore creates a store seeded with initial, normalized.
func NewStore(initial domain.EnhancementSettings) *Store {
	return &Store{current: Normalize(initial)}
}

// Current returns the settings value.
func (s *Store) Current() domain.EnhancementSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update shallow-merges patch into a new settings value and stores it.
func (s *Store) Update(patch domain.SettingsPatch) (domain.EnhancementSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Apply(s.current, patch)
	if err != nil {
		return s.current, err
	}
	s.current = next
	return next, nil
}

// Apply merges patch into base without touching any store.
func Apply(base domain.EnhancementSettings, patch domain.SettingsPatch) (domain.EnhancementSettings, error) {
	next := base

	if patch.NoiseReduction != nil {
		next.NoiseReduction = clampPercent(*patch.NoiseReduction)
	}
	if patch.ColorCorrection != nil {
		next.ColorCorrection = clampPercent(*patch.ColorCorrection)
	}
	if patch.DetailEnhancement != nil {
		next.DetailEnhancement = clampPercent(*patch.DetailEnhancement)
	}
	if patch.FrameRate != nil {
		if !patch.FrameRate.Valid() {
			return base, fmt.Errorf("frame rate %q: %w", *patch.FrameRate, ErrInvalidSetting)
		}
		next.FrameRate = *patch.FrameRate
	}
	if patch.HDRToneMap != nil {
		if !patch.HDRToneMap.Valid() {
			return base, fmt.Errorf("hdr tone map %q: %w", *patch.HDRToneMap, ErrInvalidSetting)
		}
		next.HDRToneMap = *patch.HDRToneMap
	}
	if patch.ExportFormat != nil {
		if !patch.ExportFormat.Valid() {
			return base, fmt.Errorf("export format %q: %w", *patch.ExportFormat, ErrInvalidSetting)
		}
		next.ExportFormat = *patch.ExportFormat
	}
	if patch.FacePriority != nil {
		next.FacePriority = *patch.FacePriority
	}
	if patch.BatchMode != nil {
		next.BatchMode = *patch.BatchMode
	}

	return next, nil
}

// Normalize clamps percentages and replaces unknown enum values with defaults.
func Normalize(s domain.EnhancementSettings) domain.EnhancementSettings {
	def := Defaults()
	s.NoiseReduction = clampPercent(s.NoiseReduction)
	s.ColorCorrection = clampPercent(s.ColorCorrection)
	s.DetailEnhancement = clampPercent(s.DetailEnhancement)
	if !s.FrameRate.Valid() {
		s.FrameRate = def.FrameRate
	}
	if !s.HDRToneMap.Valid() {
		s.HDRToneMap = def.HDRToneMap
	}
	if !s.ExportFormat.Valid() {
		s.ExportFormat = def.ExportFormat
	}
	return s
}

func clampPercent(v int) int {
	return min(100, max(0, v))
}
