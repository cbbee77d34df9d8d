package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/status"
)

// TestGameContextInstallsResources verifies core resources are reachable from the world
func TestGameContextInstallsResources(t *testing.T) {
	ctx, _, _ := NewTestGameContext(800, 600)

	if got := MustGetResource[*ScoreResource](ctx.World.Resources); got != ctx.Score {
		t.Error("Score resource is not the injected instance")
	}
	if got := MustGetResource[*status.Registry](ctx.World.Resources); got != ctx.Status {
		t.Error("Status registry mismatch")
	}
	MustGetResource[*TimeResource](ctx.World.Resources)
}

// TestGameContextPause verifies paused frames are skipped
func TestGameContextPause(t *testing.T) {
	ctx, _, _ := NewTestGameContext(800, 600)

	if !ctx.Step(time.Millisecond) {
		t.Fatal("Expected frame to run")
	}
	if !ctx.TogglePause() {
		t.Fatal("Expected paused after toggle")
	}
	if ctx.Step(time.Millisecond) {
		t.Error("Expected paused frame to be skipped")
	}
	if ctx.World.FrameNumber() != 1 {
		t.Errorf("Expected frame 1, got %d", ctx.World.FrameNumber())
	}
	if !ctx.Status.Bools.Get(status.LoopPaused).Load() {
		t.Error("Pause metric not published")
	}
	ctx.TogglePause()
	ctx.Step(time.Millisecond)
	if ctx.World.FrameNumber() != 2 {
		t.Errorf("Expected frame 2 after resume, got %d", ctx.World.FrameNumber())
	}
}

// TestGameContextCountsDroppedEvents verifies unread events reach the metrics
func TestGameContextCountsDroppedEvents(t *testing.T) {
	ctx, _, _ := NewTestGameContext(800, 600)
	var order []string
	ctx.World.AddSystem(&recordingSystem{name: "p", priority: 1, log: &order, update: func(w *World) {
		w.PushEvent(0, nil)
	}})

	ctx.Step(time.Millisecond)
	ctx.Step(time.Millisecond)

	if got := ctx.Status.Ints.Get(status.EventsDropped).Load(); got != 2 {
		t.Errorf("Expected 2 dropped events, got %d", got)
	}
}
