package physics

import (
	"testing"
)

func stepAndDrain(w *World, q *EventQueue, steps int) []Event {
	var events []Event
	for i := 0; i < steps; i++ {
		w.Step(0)
		q.Drain(func(ev Event) {
			events = append(events, ev)
		})
	}
	return events
}

func TestEventQueueObservesContactBegin(t *testing.T) {
	w := NewWorld(DefaultConfig())
	q := NewEventQueue(w)
	if q == nil {
		t.Fatalf("NewEventQueue returned nil for a live world")
	}

	ground := &fakeObject{name: "ground"}
	faller := &fakeObject{name: "faller"}
	w.Register(ground, groundDef(200))
	w.Register(faller, boxDef(0, 150))

	events := stepAndDrain(w, q, 300)

	var begin *Event
	for i := range events {
		if events[i].Kind == EventBegin {
			begin = &events[i]
			break
		}
	}
	if begin == nil {
		t.Fatalf("expected a begin event after dropping a box onto the ground, got %d events", len(events))
	}

	pair := map[any]bool{begin.A: true, begin.B: true}
	if !pair[ground] || !pair[faller] {
		t.Fatalf("begin event should reference both targets, got A=%v B=%v", begin.A, begin.B)
	}
	if begin.Normal.X == 0 && begin.Normal.Y == 0 {
		t.Fatalf("begin event should carry a contact normal")
	}
}

func TestEventQueueSeparateOnUnregister(t *testing.T) {
	w := NewWorld(DefaultConfig())
	q := NewEventQueue(w)

	ground := &fakeObject{name: "ground"}
	faller := &fakeObject{name: "faller"}
	w.Register(ground, groundDef(200))
	w.Register(faller, boxDef(0, 180))

	// let it land
	stepAndDrain(w, q, 300)

	w.Unregister(faller)
	events := stepAndDrain(w, q, 2)

	var sawSeparate bool
	for _, ev := range events {
		if ev.Kind == EventSeparate {
			sawSeparate = true
		}
	}
	if !sawSeparate {
		t.Fatalf("removing a touching body should produce a separate event")
	}
}

func TestEventQueueDrainClearsBuffer(t *testing.T) {
	w := NewWorld(DefaultConfig())
	q := NewEventQueue(w)

	w.Register(&fakeObject{name: "ground"}, groundDef(200))
	w.Register(&fakeObject{name: "faller"}, boxDef(0, 180))

	for i := 0; i < 300; i++ {
		w.Step(0)
	}
	if q.Pending() == 0 {
		t.Fatalf("expected buffered events before Drain")
	}

	q.Drain(func(Event) {})
	if q.Pending() != 0 {
		t.Fatalf("Drain should clear the buffer, %d left", q.Pending())
	}
}

func TestEventQueueRelease(t *testing.T) {
	w := NewWorld(DefaultConfig())
	q := NewEventQueue(w)

	w.Register(&fakeObject{name: "ground"}, groundDef(200))
	w.Register(&fakeObject{name: "faller"}, boxDef(0, 180))

	q.Release()

	events := stepAndDrain(w, q, 300)
	if len(events) != 0 {
		t.Fatalf("released queue should buffer nothing, got %d events", len(events))
	}
	if q.Pending() != 0 {
		t.Fatalf("released queue should hold no pending events")
	}

	// stepping after release must not panic or accumulate
	w.Step(0)
	q.Drain(func(Event) {
		t.Fatalf("Drain after Release should be a no-op")
	})
}

func TestEventQueueNilSafety(t *testing.T) {
	if q := NewEventQueue(nil); q != nil {
		t.Fatalf("NewEventQueue(nil) should return nil")
	}

	var q *EventQueue
	q.Drain(func(Event) {})
	q.Release()
	if q.Pending() != 0 {
		t.Fatalf("nil queue should report zero pending events")
	}
}
