package domain

// IntakeStatus indicates whether a selected path was accepted into the queue.
type IntakeStatus string

const (
	IntakeStatusAccepted IntakeStatus = "accepted"
	IntakeStatusRejected IntakeStatus = "rejected"
)

// IntakeItem is the outcome for one picked or dropped path.
type IntakeItem struct {
	Path    string       `json:"path"`
	Status  IntakeStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// IntakeReport pairs accepted files with per-path outcomes.
type IntakeReport struct {
	Files []FileRef    `json:"files"`
	Items []IntakeItem `json:"items"`
}

// Rejected returns the items that did not make it into Files.
func (r IntakeReport) Rejected() []IntakeItem {
	var out []IntakeItem
	for _, item := range r.Items {
		if item.Status == IntakeStatusRejected {
			out = append(out, item)
		}
	}
	return out
}
