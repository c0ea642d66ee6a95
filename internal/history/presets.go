package history

import "video-enhancer/internal/domain"

// Presets are the sample jobs shown on a fresh dashboard.
func Presets() []domain.HistoryRecord {
	return []domain.HistoryRecord{
		{
			ID:           "hx-192",
			FileName:     "fashion_campaign_cut.mp4",
			Duration:     "03:12",
			Status:       domain.RecordStatusCompleted,
			FrameRate:    "60 fps",
			ExportFormat: domain.ExportMOV,
			CreatedAt:    "Today · 09:24",
			Features:     []string{"4K Upscale", "Skin Tone Rebalance", "HDR10"},
		},
		{
			ID:           "hx-193",
			FileName:     "travel_sizzle_master.mov",
			Duration:     "01:44",
			Status:       domain.RecordStatusCompleted,
			FrameRate:    "48 fps",
			ExportFormat: domain.ExportMP4,
			CreatedAt:    "Yesterday · 19:08",
			Features:     []string{"HDR Dolby Vision", "Noise Lift", "Face Priority"},
		},
		{
			ID:           "hx-194",
			FileName:     "concert_after_movie.mkv",
			Duration:     "07:28",
			Status:       domain.RecordStatusCompleted,
			FrameRate:    "60 fps",
			ExportFormat: domain.ExportMKV,
			CreatedAt:    "Yesterday · 08:55",
			Features:     []string{"Dynamic Tone Map", "60fps", "Batch Export"},
		},
	}
}
