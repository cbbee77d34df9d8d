package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/events"
)

// World contains all entities, their components, the systems and the event mailbox
type World struct {
	mu           sync.RWMutex
	nextEntityID Entity

	Resources  *ResourceStore
	Components ComponentStore
	Events     *events.EventQueue

	clock     TimeProvider
	frame     atomic.Int64
	systems   []System
	allStores []AnyStore
}

// NewWorld creates an empty world using the monotonic clock for event timestamps
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Events:       events.NewEventQueue(),
		clock:        NewMonotonicTimeProvider(),
		systems:      make([]System, 0, 16),
	}
	initComponentStores(w)
	return w
}

// SetTimeProvider swaps the clock used for event timestamps
func (w *World) SetTimeProvider(tp TimeProvider) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clock = tp
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Clear removes all entities and components; systems stay registered
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system; equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// FrameNumber returns the frame currently being (or last) simulated
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// Update advances one frame: every system runs once in priority order, then the
// event mailbox is cleared. Returns the number of events no subscriber read.
func (w *World) Update(dt time.Duration) (dropped int) {
	frame := w.frame.Add(1)

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	now := w.clock.Now()
	w.mu.RUnlock()

	if tr, ok := GetResource[*TimeResource](w.Resources); ok {
		tr.Update(now, dt, frame)
	}

	for _, system := range systems {
		system.Update(w, dt)
	}

	return w.Events.EndFrame()
}

// PushEvent emits an event stamped with the current frame
func (w *World) PushEvent(eventType events.EventType, payload any) {
	w.mu.RLock()
	now := w.clock.Now()
	w.mu.RUnlock()

	w.Events.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     w.frame.Load(),
		Timestamp: now,
	})
}
