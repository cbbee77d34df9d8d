package systems

import (
	"testing"

	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/status"
)

// TestServeRunsToPlayerPoint drives the initial serve across an empty field
// v=(5,0) reaches x=400 on frame 80 (still in play) and crosses on frame 81
func TestServeRunsToPlayerPoint(t *testing.T) {
	ctx, h := newTestGame(t)
	SpawnBall(ctx)
	SpawnGutters(ctx)
	SpawnScoreboard(ctx)

	step(ctx, 80)

	pos, _ := ballState(t, ctx)
	if pos.X != 400 || pos.Y != 0 {
		t.Fatalf("Expected ball at (400,0) after 80 frames, got %+v", pos)
	}
	if got := ctx.Status.Ints.Get(status.ScoreEvents).Load(); got != 0 {
		t.Fatalf("Expected no score event by frame 80, got %d", got)
	}

	// Watch the mailbox during the scoring frame
	watcher := &recordingSystem{reader: events.NewReader(ctx.World.Events, events.EventScored, events.EventBallReset)}
	ctx.World.AddSystem(watcher)

	step(ctx, 1)

	if p, a := ctx.Score.Values(); p != 1 || a != 0 {
		t.Fatalf("Expected score 1-0, got %d-%d", p, a)
	}
	pos, vel := ballState(t, ctx)
	if !pos.IsZero() {
		t.Errorf("Expected ball reset to origin, got %+v", pos)
	}
	if vel.X >= 0 || vel.Y == 0 {
		t.Errorf("Expected serve toward -x with non-zero vy, got %+v", vel)
	}
	if len(watcher.seen) != 2 || watcher.seen[0].Type != events.EventScored || watcher.seen[0].Frame != 81 {
		t.Errorf("Expected Scored then BallReset on frame 81, got %v", watcher.seen)
	}
	if l, _ := h.Label("PlayerScoreboard"); l.Text() != "1" {
		t.Errorf("Expected Player label 1, got %s", l.Text())
	}
}
