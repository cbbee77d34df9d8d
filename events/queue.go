package events

import (
	"sync"
)

// EventQueue is the per-frame event mailbox
//
// Producers Push during the frame; every subscriber drains the same events
// through its own Reader, so two systems can each see one Scored event.
// EndFrame discards everything: events never survive into the next frame.
type EventQueue struct {
	mu         sync.Mutex
	events     []GameEvent
	read       []bool // per event: drained by at least one reader
	generation uint64 // bumped by EndFrame, invalidates reader cursors
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, 8),
		read:   make([]bool, 0, 8),
	}
}

// Push appends an event to the current frame
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	eq.events = append(eq.events, event)
	eq.read = append(eq.read, false)
}

// Len returns the number of events pushed this frame
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Peek returns a copy of this frame's events without marking them read
func (eq *EventQueue) Peek() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	return out
}

// EndFrame clears the mailbox and returns how many events no reader drained
func (eq *EventQueue) EndFrame() (dropped int) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	for _, r := range eq.read {
		if !r {
			dropped++
		}
	}
	eq.events = eq.events[:0]
	eq.read = eq.read[:0]
	eq.generation++
	return dropped
}

// readFrom returns events of the wanted types at index >= cursor and the new cursor
func (eq *EventQueue) readFrom(gen uint64, cursor int, wanted map[EventType]struct{}) ([]GameEvent, uint64, int) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if gen != eq.generation {
		cursor = 0
	}

	var out []GameEvent
	for i := cursor; i < len(eq.events); i++ {
		if _, ok := wanted[eq.events[i].Type]; !ok {
			continue
		}
		out = append(out, eq.events[i])
		eq.read[i] = true
	}
	return out, eq.generation, len(eq.events)
}
