package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	mebibyte = 1024 * 1024

	bytesPerRenderMinute = 350 * mebibyte
	bytesPerRenderSecond = 6 * mebibyte
	bytesPerQueueMinute  = 300 * mebibyte
)

// QueueKey builds the composite (name, size) dedupe key.
func QueueKey(name string, size int64) string {
	return name + "-" + strconv.FormatInt(size, 10)
}

// Label returns the history label for a frame rate, e.g. "60 fps".
func (f FrameRate) Label() string {
	return string(f) + " fps"
}

// Description returns the marketing description shown next to queued files.
func (f FrameRate) Description() string {
	switch f {
	case FrameRate60:
		return "Ultra Smooth 60fps"
	case FrameRate48:
		return "48fps HFR"
	case FrameRate30:
		return "Broadcast 30fps"
	default:
		return "24fps Filmic"
	}
}

// Upper returns the upper-cased format used on pills and feature chips.
func (e ExportFormat) Upper() string {
	// A Caser is stateful, so each call gets its own.
	return cases.Upper(language.Und).String(string(e))
}

// FeatureSummary snapshots settings into the chips shown on a history card.
func FeatureSummary(s EnhancementSettings) []string {
	detail := "Universal Detail"
	if s.FacePriority {
		detail = "Face Priority"
	}

	return []string{
		fmt.Sprintf("AI NR %d%%", s.NoiseReduction),
		fmt.Sprintf("Color Boost %d%%", s.ColorCorrection),
		detail,
		string(s.HDRToneMap),
		string(s.FrameRate) + "fps",
		"Export " + s.ExportFormat.Upper(),
	}
}

// ActiveMode is the badge shown over the preview, e.g. "60fps · Cinematic HDR".
func ActiveMode(s EnhancementSettings) string {
	return fmt.Sprintf("%sfps · %s", s.FrameRate, s.HDRToneMap)
}

// DurationLabel fabricates an "MM:SS" clip duration from the byte size.
func DurationLabel(size int64) string {
	if size < 0 {
		size = 0
	}
	minutes := max(1, roundDiv(size, bytesPerRenderMinute))
	seconds := min(59, max(5, roundDiv(size%bytesPerRenderMinute, bytesPerRenderSecond)))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// QueueTimeEstimate is the rough render time for the whole queue.
func QueueTimeEstimate(totalBytes int64) string {
	if totalBytes <= 0 {
		return "0"
	}
	return fmt.Sprintf("%d min", max(1, roundDiv(totalBytes, bytesPerQueueMinute)))
}

// SizeLabel renders a byte count for the queue panel.
func SizeLabel(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(size))
}

// StatusLabel is the pill in the upload panel header.
func StatusLabel(run Run, queue QueueView) string {
	if run.Status == RunStatusRunning {
		return fmt.Sprintf("Rendering · %d%%", int(math.Round(math.Min(run.Progress, 100))))
	}
	return "Queue time · " + queue.EstimatedTime
}

// TotalSize sums the byte sizes of queued items.
func TotalSize(items []QueuedItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Size
	}
	return total
}

func roundDiv(value, unit int64) int64 {
	return int64(math.Round(float64(value) / float64(unit)))
}
