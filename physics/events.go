package physics

import (
	"github.com/jakecoffman/cp"
)

// EventKind distinguishes contact begin from contact separation.
type EventKind int

const (
	EventBegin EventKind = iota
	EventSeparate
)

// Event is one contact transition between two registered scene objects.
// Normal and Point are only populated for EventBegin.
type Event struct {
	Kind   EventKind
	A      any
	B      any
	Normal cp.Vector
	Point  cp.Vector
}

// EventQueue buffers contact events between steps. Creating one installs a
// collision handler on the world's space; the queue must be released
// manually when no longer wanted because Chipmunk has no API to remove a
// handler once added.
type EventQueue struct {
	world    *World
	events   []Event
	released bool
}

// NewEventQueue attaches an optional event queue to a world. All shapes
// created through Register share one collision type, so a single handler
// over that pair observes every registered-vs-registered contact.
func NewEventQueue(w *World) *EventQueue {
	if w == nil || w.space == nil {
		return nil
	}

	q := &EventQueue{world: w}

	handler := w.space.NewCollisionHandler(collisionTypeBinding, collisionTypeBinding)
	handler.UserData = q
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		queue, ok := userData.(*EventQueue)
		if ok && queue != nil && !queue.released {
			queue.push(EventBegin, arb)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		queue, ok := userData.(*EventQueue)
		if ok && queue != nil && !queue.released {
			queue.push(EventSeparate, arb)
		}
	}

	return q
}

// Drain hands every buffered event to fn in arrival order and clears the
// buffer. Released queues drain nothing.
func (q *EventQueue) Drain(fn func(Event)) {
	if q == nil || q.released || fn == nil {
		return
	}
	for _, ev := range q.events {
		fn(ev)
	}
	q.events = q.events[:0]
}

// Pending returns the number of buffered events.
func (q *EventQueue) Pending() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}

// Release ends the queue's lifecycle: pending events are dropped and the
// installed callbacks become no-ops. Drain is a no-op afterwards.
func (q *EventQueue) Release() {
	if q == nil {
		return
	}
	q.released = true
	q.events = nil
}

func (q *EventQueue) push(kind EventKind, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()

	ev := Event{Kind: kind}
	if a, ok := shapeA.UserData.(*Binding); ok {
		ev.A = a.Target
	}
	if b, ok := shapeB.UserData.(*Binding); ok {
		ev.B = b.Target
	}
	if ev.A == nil && ev.B == nil {
		return
	}

	if kind == EventBegin {
		ev.Normal = arb.Normal()
		set := arb.ContactPointSet()
		if set.Count > 0 {
			ev.Point = set.Points[0].PointA
		}
	}

	q.events = append(q.events, ev)
}
