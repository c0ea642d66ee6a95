package jobs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"video-enhancer/internal/domain"
)

// ErrRunAlreadyActive is returned when starting a second active run.
var ErrRunAlreadyActive = errors.New("run already active")

// Manager tracks the single allowed active run and its transitions.
type Manager struct {
	mu      sync.RWMutex
	current domain.Run
	now     func() time.Time
}

// NewManager creates a manager in idle state.
func NewManager() *Manager {
	return &Manager{
		current: domain.Run{Status: domain.RunStatusIdle},
		now:     time.Now,
	}
}

// Start claims the active slot for a new run over total items.
func (m *Manager) Start(runID string, total int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Status == domain.RunStatusRunning {
		return ErrRunAlreadyActive
	}
	if total <= 0 {
		return fmt.Errorf("run %s: no items", runID)
	}

	m.current = domain.Run{
		ID:        runID,
		Status:    domain.RunStatusRunning,
		Total:     total,
		StartedAt: m.now().UTC(),
	}
	return nil
}

// SetProgress records overall progress. Values are clamped to [0,100] and
// never move backwards within a run. Returns the stored value.
func (m *Manager) SetProgress(progress float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Status != domain.RunStatusRunning {
		return m.current.Progress
	}
	progress = min(100, max(0, progress))
	if progress > m.current.Progress {
		m.current.Progress = progress
	}
	return m.current.Progress
}

// ItemCompleted bumps the completed item counter of the active run.
func (m *Manager) ItemCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Status == domain.RunStatusRunning && m.current.Completed < m.current.Total {
		m.current.Completed++
	}
}

// Transition validates and applies state transitions for the current run.
func (m *Manager) Transition(status domain.RunStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.ID == "" && status != domain.RunStatusIdle {
		return fmt.Errorf("cannot transition without an active run")
	}
	if status == m.current.Status {
		return nil
	}
	if !isValidTransition(m.current.Status, status) {
		return fmt.Errorf("invalid transition: %s -> %s", m.current.Status, status)
	}

	m.current.Status = status
	if status == domain.RunStatusCompleted || status == domain.RunStatusInterrupted {
		m.current.FinishedAt = m.now().UTC()
	}
	return nil
}

// Current returns a snapshot of the current run.
func (m *Manager) Current() domain.Run {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Reset clears run metadata and returns manager to idle.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = domain.Run{Status: domain.RunStatusIdle}
}

// IsRunning reports whether a run holds the active slot.
func (m *Manager) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Status == domain.RunStatusRunning
}

// isValidTransition enforces the allowed run state machine edges.
func isValidTransition(from, to domain.RunStatus) bool {
	switch from {
	case domain.RunStatusIdle:
		return to == domain.RunStatusRunning
	case domain.RunStatusRunning:
		return to == domain.RunStatusCompleted || to == domain.RunStatusInterrupted
	case domain.RunStatusCompleted, domain.RunStatusInterrupted:
		return to == domain.RunStatusRunning || to == domain.RunStatusIdle
	default:
		return false
	}
}
