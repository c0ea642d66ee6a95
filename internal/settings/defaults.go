package settings

import "video-enhancer/internal/domain"

// Defaults returns the settings a new session starts with.
func Defaults() domain.EnhancementSettings {
	return domain.EnhancementSettings{
		NoiseReduction:    72,
		ColorCorrection:   68,
		FrameRate:         domain.FrameRate60,
		DetailEnhancement: 64,
		HDRToneMap:        domain.HDRCinematic,
		FacePriority:      true,
		BatchMode:         true,
		ExportFormat:      domain.ExportMP4,
	}
}
