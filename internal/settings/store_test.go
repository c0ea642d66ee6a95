package settings

import (
	"errors"
	"testing"

	"video-enhancer/internal/domain"
)

// TestDefaults verifies the session defaults.
func TestDefaults(t *testing.T) {
	def := Defaults()
	if def.NoiseReduction != 72 || def.ColorCorrection != 68 || def.DetailEnhancement != 64 {
		t.Fatalf("unexpected percentages: %+v", def)
	}
	if def.FrameRate != domain.FrameRate60 || def.HDRToneMap != domain.HDRCinematic {
		t.Fatalf("unexpected modes: %+v", def)
	}
	if !def.FacePriority || !def.BatchMode || def.ExportFormat != domain.ExportMP4 {
		t.Fatalf("unexpected toggles: %+v", def)
	}
}

// TestUpdateMergesOnlySetFields checks shallow merge semantics.
func TestUpdateMergesOnlySetFields(t *testing.T) {
	store := NewStore(Defaults())
	noise := 40
	format := domain.ExportMKV
	batch := false

	got, err := store.Update(domain.SettingsPatch{
		NoiseReduction: &noise,
		ExportFormat:   &format,
		BatchMode:      &batch,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := Defaults()
	want.NoiseReduction = 40
	want.ExportFormat = domain.ExportMKV
	want.BatchMode = false
	if got != want {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
	if store.Current() != want {
		t.Fatalf("stored = %+v, want %+v", store.Current(), want)
	}
}

// TestUpdateClampsPercentages keeps numeric fields in range.
func TestUpdateClampsPercentages(t *testing.T) {
	store := NewStore(Defaults())
	high, low := 140, -3

	got, err := store.Update(domain.SettingsPatch{ColorCorrection: &high, DetailEnhancement: &low})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.ColorCorrection != 100 || got.DetailEnhancement != 0 {
		t.Fatalf("settings = %+v, want clamped values", got)
	}
}

// TestUpdateRejectsUnknownEnum leaves the store unchanged.
func TestUpdateRejectsUnknownEnum(t *testing.T) {
	store := NewStore(Defaults())
	noise := 10
	rate := domain.FrameRate("120")

	_, err := store.Update(domain.SettingsPatch{NoiseReduction: &noise, FrameRate: &rate})
	if !errors.Is(err, ErrInvalidSetting) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidSetting)
	}
	if store.Current() != Defaults() {
		t.Fatalf("store mutated on error: %+v", store.Current())
	}
}

// TestNormalizeRepairsLoadedValues handles values from a hand-edited config file.
func TestNormalizeRepairsLoadedValues(t *testing.T) {
	got := Normalize(domain.EnhancementSettings{
		NoiseReduction: 300,
		FrameRate:      "15",
		HDRToneMap:     "HDR10",
		ExportFormat:   "avi",
	})
	if got.NoiseReduction != 100 {
		t.Fatalf("noise = %d, want 100", got.NoiseReduction)
	}
	if got.FrameRate != domain.FrameRate60 || got.HDRToneMap != domain.HDRCinematic || got.ExportFormat != domain.ExportMP4 {
		t.Fatalf("enums not repaired: %+v", got)
	}
}
