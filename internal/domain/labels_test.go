package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFeatureSummary verifies the history chips derived from settings.
func TestFeatureSummary(t *testing.T) {
	settings := EnhancementSettings{
		NoiseReduction:  72,
		ColorCorrection: 68,
		FrameRate:       FrameRate60,
		HDRToneMap:      HDRCinematic,
		FacePriority:    true,
		ExportFormat:    ExportMP4,
	}

	assert.Equal(t, []string{
		"AI NR 72%",
		"Color Boost 68%",
		"Face Priority",
		"Cinematic HDR",
		"60fps",
		"Export MP4",
	}, FeatureSummary(settings))

	settings.FacePriority = false
	assert.Contains(t, FeatureSummary(settings), "Universal Detail")
}

// TestDurationLabel checks the size based duration fabrication.
func TestDurationLabel(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{size: 0, want: "01:05"},
		{size: 10 * mebibyte, want: "01:05"},
		{size: 120 * mebibyte, want: "01:20"},
		{size: 700 * mebibyte, want: "02:05"},
		{size: 1000 * mebibyte, want: "03:50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DurationLabel(tc.size), "size=%d", tc.size)
	}
}

// TestQueueTimeEstimate checks the queue header estimate.
func TestQueueTimeEstimate(t *testing.T) {
	assert.Equal(t, "0", QueueTimeEstimate(0))
	assert.Equal(t, "1 min", QueueTimeEstimate(10*mebibyte))
	assert.Equal(t, "3 min", QueueTimeEstimate(900*mebibyte))
}

// TestLabels covers the remaining small label helpers.
func TestLabels(t *testing.T) {
	assert.Equal(t, "60 fps", FrameRate60.Label())
	assert.Equal(t, "48fps HFR", FrameRate48.Description())
	assert.Equal(t, "24fps Filmic", FrameRate24.Description())
	assert.Equal(t, "MKV", ExportMKV.Upper())
	assert.Equal(t, "clip.mp4-42", QueueKey("clip.mp4", 42))
	assert.Equal(t, "0 B", SizeLabel(0))
	assert.Equal(t, "10 MiB", SizeLabel(10*mebibyte))
	assert.Equal(t, "30fps · HLG", ActiveMode(EnhancementSettings{FrameRate: FrameRate30, HDRToneMap: HDRHLG}))

	queue := QueueView{EstimatedTime: "2 min"}
	assert.Equal(t, "Queue time · 2 min", StatusLabel(Run{Status: RunStatusIdle}, queue))
	assert.Equal(t, "Rendering · 43%", StatusLabel(Run{Status: RunStatusRunning, Progress: 42.6}, queue))
}

// TestEnumValidity rejects values the controls never offer.
func TestEnumValidity(t *testing.T) {
	assert.True(t, FrameRate48.Valid())
	assert.False(t, FrameRate("120").Valid())
	assert.True(t, HDRDolbyVision.Valid())
	assert.False(t, HDRToneMap("HDR10").Valid())
	assert.True(t, ExportMOV.Valid())
	assert.False(t, ExportFormat("avi").Valid())
}
