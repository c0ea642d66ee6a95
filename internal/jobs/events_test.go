package jobs

import "testing"

// TestEventBusSince verifies incremental event reads by sequence.
func TestEventBusSince(t *testing.T) {
	bus := NewEventBus(3)
	bus.Publish(Event{Type: EventTypeProgress, Progress: 10})
	bus.Publish(Event{Type: EventTypeProgress, Progress: 20})
	bus.Publish(Event{Type: EventTypeRun, Message: "done"})

	events := bus.Since(1)
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Seq != 2 || events[1].Seq != 3 {
		t.Fatalf("unexpected seqs: %+v", events)
	}
	if bus.LastSeq() != 3 {
		t.Fatalf("last seq = %d, want 3", bus.LastSeq())
	}
}

// TestEventBusCapsHistory verifies buffer limit trimming behavior.
func TestEventBusCapsHistory(t *testing.T) {
	bus := NewEventBus(2)
	bus.Publish(Event{Message: "1"})
	bus.Publish(Event{Message: "2"})
	bus.Publish(Event{Message: "3"})

	events := bus.Since(0)
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Message != "2" || events[1].Message != "3" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

// TestEventBusEmpty returns nothing before the first publish.
func TestEventBusEmpty(t *testing.T) {
	bus := NewEventBus(0)
	if events := bus.Since(0); events != nil {
		t.Fatalf("events = %+v, want nil", events)
	}
}
