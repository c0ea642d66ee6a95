package jobs

import (
	"errors"
	"testing"

	"video-enhancer/internal/domain"
)

// TestManagerLifecycle verifies normal progression to completed state.
func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	if m.IsRunning() {
		t.Fatal("new manager should be idle")
	}

	if err := m.Start("run-1", 2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !m.IsRunning() {
		t.Fatal("expected running after start")
	}

	m.SetProgress(40)
	m.ItemCompleted()
	m.SetProgress(100)
	m.ItemCompleted()
	if err := m.Transition(domain.RunStatusCompleted); err != nil {
		t.Fatalf("transition to completed: %v", err)
	}

	current := m.Current()
	if current.Status != domain.RunStatusCompleted {
		t.Fatalf("current status = %s, want completed", current.Status)
	}
	if current.Completed != 2 || current.Progress != 100 {
		t.Fatalf("current = %+v, want 2 items at 100%%", current)
	}
	if current.FinishedAt.IsZero() {
		t.Fatal("expected finish timestamp")
	}
}

// TestManagerRejectsSecondRun checks the single active run guard.
func TestManagerRejectsSecondRun(t *testing.T) {
	m := NewManager()
	if err := m.Start("run-1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := m.Start("run-2", 1); !errors.Is(err, ErrRunAlreadyActive) {
		t.Fatalf("second start error = %v, want %v", err, ErrRunAlreadyActive)
	}

	if err := m.Transition(domain.RunStatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := m.Start("run-2", 1); err != nil {
		t.Fatalf("start after completion: %v", err)
	}
}

// TestManagerRejectsEmptyRun refuses runs without items.
func TestManagerRejectsEmptyRun(t *testing.T) {
	m := NewManager()
	if err := m.Start("run-1", 0); err == nil {
		t.Fatal("expected error for empty run")
	}
	if m.IsRunning() {
		t.Fatal("manager should stay idle")
	}
}

// TestManagerProgressNeverDecreases clamps and keeps the maximum.
func TestManagerProgressNeverDecreases(t *testing.T) {
	m := NewManager()
	if err := m.Start("run-1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}

	if got := m.SetProgress(30); got != 30 {
		t.Fatalf("progress = %v, want 30", got)
	}
	if got := m.SetProgress(12); got != 30 {
		t.Fatalf("progress = %v, want 30", got)
	}
	if got := m.SetProgress(140); got != 100 {
		t.Fatalf("progress = %v, want 100", got)
	}
}

// TestManagerRejectsInvalidTransition checks state machine constraints.
func TestManagerRejectsInvalidTransition(t *testing.T) {
	m := NewManager()
	if err := m.Transition(domain.RunStatusCompleted); err == nil {
		t.Fatal("expected error without active run")
	}

	if err := m.Start("run-1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Transition(domain.RunStatusIdle); err == nil {
		t.Fatal("expected invalid transition error")
	}
	if err := m.Transition(domain.RunStatusInterrupted); err != nil {
		t.Fatalf("interrupt: %v", err)
	}

	m.Reset()
	if m.Current().Status != domain.RunStatusIdle {
		t.Fatalf("status = %s, want idle", m.Current().Status)
	}
}
