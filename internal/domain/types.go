package domain

import "time"

// FrameRate is the target frame rate selected in the controls panel.
type FrameRate string

const (
	FrameRate24 FrameRate = "24"
	FrameRate30 FrameRate = "30"
	FrameRate48 FrameRate = "48"
	FrameRate60 FrameRate = "60"
)

// HDRToneMap is the tone mapping mode selected in the controls panel.
type HDRToneMap string

const (
	HDRCinematic   HDRToneMap = "Cinematic HDR"
	HDRHLG         HDRToneMap = "HLG"
	HDRDolbyVision HDRToneMap = "Dolby Vision"
)

// ExportFormat is the container chosen for export.
type ExportFormat string

const (
	ExportMP4 ExportFormat = "mp4"
	ExportMOV ExportFormat = "mov"
	ExportMKV ExportFormat = "mkv"
)

// Valid reports whether the frame rate is one of the offered options.
func (f FrameRate) Valid() bool {
	switch f {
	case FrameRate24, FrameRate30, FrameRate48, FrameRate60:
		return true
	default:
		return false
	}
}

// Valid reports whether the tone map is one of the offered modes.
func (h HDRToneMap) Valid() bool {
	switch h {
	case HDRCinematic, HDRHLG, HDRDolbyVision:
		return true
	default:
		return false
	}
}

// Valid reports whether the export format is supported.
func (e ExportFormat) Valid() bool {
	switch e {
	case ExportMP4, ExportMOV, ExportMKV:
		return true
	default:
		return false
	}
}

// EnhancementSettings holds the cosmetic enhancement configuration.
type EnhancementSettings struct {
	NoiseReduction    int          `json:"noiseReduction" toml:"noise_reduction"`
	ColorCorrection   int          `json:"colorCorrection" toml:"color_correction"`
	FrameRate         FrameRate    `json:"frameRate" toml:"frame_rate"`
	DetailEnhancement int          `json:"detailEnhancement" toml:"detail_enhancement"`
	HDRToneMap        HDRToneMap   `json:"hdrToneMap" toml:"hdr_tone_map"`
	FacePriority      bool         `json:"facePriority" toml:"face_priority"`
	BatchMode         bool         `json:"batchMode" toml:"batch_mode"`
	ExportFormat      ExportFormat `json:"exportFormat" toml:"export_format"`
}

// SettingsPatch carries a partial settings edit. Nil fields are left untouched.
type SettingsPatch struct {
	NoiseReduction    *int          `json:"noiseReduction,omitempty"`
	ColorCorrection   *int          `json:"colorCorrection,omitempty"`
	FrameRate         *FrameRate    `json:"frameRate,omitempty"`
	DetailEnhancement *int          `json:"detailEnhancement,omitempty"`
	HDRToneMap        *HDRToneMap   `json:"hdrToneMap,omitempty"`
	FacePriority      *bool         `json:"facePriority,omitempty"`
	BatchMode         *bool         `json:"batchMode,omitempty"`
	ExportFormat      *ExportFormat `json:"exportFormat,omitempty"`
}

// FileRef is a selected file resolved from the picker or a drop.
type FileRef struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Path string `json:"path"`
}

// Key returns the composite identity used for queue deduplication.
func (f FileRef) Key() string {
	return QueueKey(f.Name, f.Size)
}

// QueuedItem is one pending upload in the queue.
type QueuedItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Path string `json:"path"`
}

// Key returns the composite identity used for queue deduplication.
func (q QueuedItem) Key() string {
	return QueueKey(q.Name, q.Size)
}

// RecordStatus is the status shown on a history card.
type RecordStatus string

// RecordStatusCompleted is the only status a simulated run produces.
const RecordStatusCompleted RecordStatus = "Completed"

// HistoryRecord is an immutable entry in the enhancement history.
type HistoryRecord struct {
	ID           string       `json:"id"`
	FileName     string       `json:"fileName"`
	Duration     string       `json:"duration"`
	Status       RecordStatus `json:"status"`
	FrameRate    string       `json:"frameRate"`
	ExportFormat ExportFormat `json:"exportFormat"`
	CreatedAt    string       `json:"createdAt"`
	Features     []string     `json:"features"`
}

// RunStatus tracks the lifecycle of a simulated enhancement run.
type RunStatus string

const (
	RunStatusIdle        RunStatus = "idle"
	RunStatusRunning     RunStatus = "running"
	RunStatusCompleted   RunStatus = "completed"
	RunStatusInterrupted RunStatus = "interrupted"
)

// Run stores the current run identity, status, and progress.
type Run struct {
	ID         string    `json:"id"`
	Status     RunStatus `json:"status"`
	Progress   float64   `json:"progress"`
	Total      int       `json:"total"`
	Completed  int       `json:"completed"`
	StartedAt  time.Time `json:"startedAt,omitempty"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`
}

// QueueView is the upload panel state rendered by the frontend.
type QueueView struct {
	Items         []QueuedItem `json:"items"`
	PreviewURL    string       `json:"previewUrl"`
	TotalSize     string       `json:"totalSize"`
	EstimatedTime string       `json:"estimatedTime"`
}

// Dashboard is the full state snapshot handed to the view layer.
type Dashboard struct {
	Settings             EnhancementSettings `json:"settings"`
	Queue                QueueView           `json:"queue"`
	Run                  Run                 `json:"run"`
	StatusLabel          string              `json:"statusLabel"`
	ActiveMode           string              `json:"activeMode"`
	FrameRateDescription string              `json:"frameRateDescription"`
	History              []HistoryRecord     `json:"history"`
}
