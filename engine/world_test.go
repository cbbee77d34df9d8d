package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/events"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	update   func(w *World)
}

func (s *recordingSystem) Update(w *World, dt time.Duration) {
	*s.log = append(*s.log, s.name)
	if s.update != nil {
		s.update(w)
	}
}

func (s *recordingSystem) Priority() int { return s.priority }

// TestWorldRunsSystemsInPriorityOrder verifies sort with stable ties
func TestWorldRunsSystemsInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var order []string

	w.AddSystem(&recordingSystem{name: "c", priority: 30, log: &order})
	w.AddSystem(&recordingSystem{name: "a", priority: 10, log: &order})
	w.AddSystem(&recordingSystem{name: "b1", priority: 20, log: &order})
	w.AddSystem(&recordingSystem{name: "b2", priority: 20, log: &order})

	w.Update(time.Millisecond)

	want := []string{"a", "b1", "b2", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, order)
		}
	}
	if w.FrameNumber() != 1 {
		t.Errorf("Expected frame 1, got %d", w.FrameNumber())
	}
}

// TestWorldUpdateClearsMailbox verifies events do not leak across frames
func TestWorldUpdateClearsMailbox(t *testing.T) {
	w := NewWorld()
	var order []string
	reader := events.NewReader(w.Events, events.EventScored)
	var seen int

	w.AddSystem(&recordingSystem{name: "producer", priority: 1, log: &order, update: func(w *World) {
		if w.FrameNumber() == 1 {
			w.PushEvent(events.EventScored, &events.ScoredPayload{Scorer: components.SideAI})
			w.PushEvent(events.EventCollision, nil)
		}
	}})
	w.AddSystem(&recordingSystem{name: "consumer", priority: 2, log: &order, update: func(w *World) {
		seen += len(reader.Read())
	}})

	if dropped := w.Update(time.Millisecond); dropped != 1 {
		t.Errorf("Expected the unread collision event dropped, got %d", dropped)
	}
	if seen != 1 {
		t.Errorf("Expected consumer to see 1 event, got %d", seen)
	}

	w.Update(time.Millisecond)
	if seen != 1 {
		t.Errorf("Event leaked into frame 2: seen=%d", seen)
	}
}

// TestPushEventStampsFrame verifies frame metadata
func TestPushEventStampsFrame(t *testing.T) {
	w := NewWorld()
	tp := NewMockTimeProvider(TestEpoch)
	w.SetTimeProvider(tp)

	var got []events.GameEvent
	var order []string
	w.AddSystem(&recordingSystem{name: "p", priority: 1, log: &order, update: func(w *World) {
		w.PushEvent(events.EventBallReset, nil)
		got = w.Events.Peek()
	}})

	w.Update(time.Millisecond)
	w.Update(time.Millisecond)

	if len(got) != 1 || got[0].Frame != 2 || !got[0].Timestamp.Equal(TestEpoch) {
		t.Errorf("Unexpected event metadata: %+v", got)
	}
}

// TestDestroyEntityRemovesAllComponents verifies lifecycle cleanup
func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Components.Positions.Add(e, components.PositionComponent{})
	w.Components.Balls.Add(e, components.BallComponent{})

	w.DestroyEntity(e)
	if w.Components.Positions.Has(e) || w.Components.Balls.Has(e) {
		t.Error("Expected all components removed")
	}

	w.CreateEntity()
	w.Clear()
	if next := w.CreateEntity(); next != 1 {
		t.Errorf("Expected IDs to restart at 1 after Clear, got %d", next)
	}
}

// TestTimeResourceRefreshed verifies World.Update writes the time resource
func TestTimeResourceRefreshed(t *testing.T) {
	w := NewWorld()
	tr := &TimeResource{}
	AddResource(w.Resources, tr)

	w.Update(16 * time.Millisecond)
	if tr.FrameNumber != 1 || tr.DeltaTime != 16*time.Millisecond {
		t.Errorf("TimeResource not refreshed: %+v", tr)
	}
}
