package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// TestDetectScorerBoundaries checks both boundaries with a small epsilon either side
func TestDetectScorerBoundaries(t *testing.T) {
	const eps = 1e-9
	half := float64(testWidth) / 2

	cases := []struct {
		x      float64
		want   components.Side
		scored bool
	}{
		{half + eps, components.SidePlayer, true},
		{-half - eps, components.SideAI, true},
		{half, 0, false},
		{-half, 0, false},
		{half - eps, 0, false},
		{0, 0, false},
	}

	for _, c := range cases {
		got, scored := DetectScorer(c.x, testWidth)
		if scored != c.scored || (scored && got != c.want) {
			t.Errorf("DetectScorer(%v): got (%v, %v), want (%v, %v)", c.x, got, scored, c.want, c.scored)
		}
	}
}

// TestServeDirectionAndRange verifies the serve heads toward the scorer and never stalls
func TestServeDirectionAndRange(t *testing.T) {
	rng := vmath.NewFastRand(7)

	for i := 0; i < 1000; i++ {
		for _, scorer := range []components.Side{components.SidePlayer, components.SideAI} {
			v := Serve(rng, scorer)

			if scorer == components.SidePlayer && v.X >= 0 {
				t.Fatalf("Player scored: expected vx < 0, got %v", v.X)
			}
			if scorer == components.SideAI && v.X <= 0 {
				t.Fatalf("Ai scored: expected vx > 0, got %v", v.X)
			}
			if ax := math.Abs(v.X); ax < constants.ServeXMin || ax >= constants.ServeXMin+constants.ServeXRange {
				t.Fatalf("Expected |vx| in [4,7), got %v", ax)
			}
			ay := math.Abs(v.Y)
			if ay < constants.ServeYPush || ay > constants.ServeYPush+constants.ServeYSpread/2 {
				t.Fatalf("Expected |vy| in [4,5.5], got %v", ay)
			}
		}
	}
}

// TestServeDeterministic verifies equal seeds produce equal serves
func TestServeDeterministic(t *testing.T) {
	a, b := vmath.NewFastRand(99), vmath.NewFastRand(99)
	for i := 0; i < 50; i++ {
		if va, vb := Serve(a, components.SideAI), Serve(b, components.SideAI); va != vb {
			t.Fatalf("Serve %d diverged: %+v vs %+v", i, va, vb)
		}
	}
}

// TestBallWithinBoundsNoScore verifies a ball inside the arena produces no event
func TestBallWithinBoundsNoScore(t *testing.T) {
	ctx, _ := newTestGame(t)
	SpawnBall(ctx)
	setBall(t, ctx, vmath.V2(390, 0), vmath.V2(0, 0))

	step(ctx, 10)

	if got := ctx.Status.Ints.Get(status.ScoreEvents).Load(); got != 0 {
		t.Errorf("Expected no score events, got %d", got)
	}
	if p, a := ctx.Score.Values(); p != 0 || a != 0 {
		t.Errorf("Expected score 0-0, got %d-%d", p, a)
	}
}

// TestScoreAppliesExactlyOnce verifies one crossing increments once and re-serves from center
func TestScoreAppliesExactlyOnce(t *testing.T) {
	ctx, _ := newTestGame(t)
	SpawnBall(ctx)
	setBall(t, ctx, vmath.V2(-398, 30), vmath.V2(-5, 0))

	step(ctx, 1)

	if p, a := ctx.Score.Values(); p != 0 || a != 1 {
		t.Fatalf("Expected score 0-1, got %d-%d", p, a)
	}
	pos, vel := ballState(t, ctx)
	if !pos.IsZero() {
		t.Errorf("Expected ball at origin, got %+v", pos)
	}
	if vel.X <= 0 {
		t.Errorf("Expected serve toward +x after Ai scored, got %+v", vel)
	}

	step(ctx, 5)
	if p, a := ctx.Score.Values(); p != 0 || a != 1 {
		t.Errorf("Expected score to stay 0-1, got %d-%d", p, a)
	}
	if got := ctx.Status.Ints.Get(status.BallResets).Load(); got != 1 {
		t.Errorf("Expected 1 reset, got %d", got)
	}
}

// TestScoreInterleaved drives N Player and M Ai points in alternation
func TestScoreInterleaved(t *testing.T) {
	ctx, _ := newTestGame(t)
	SpawnBall(ctx)

	const n, m = 4, 3
	for i := 0; i < n+m; i++ {
		if i%2 == 0 {
			setBall(t, ctx, vmath.V2(399, 0), vmath.V2(5, 0))
		} else {
			setBall(t, ctx, vmath.V2(-399, 0), vmath.V2(-5, 0))
		}
		step(ctx, 1)
	}

	p, a := ctx.Score.Values()
	if p != n || a != m {
		t.Errorf("Expected %d-%d, got %d-%d", n, m, p, a)
	}
	if got := ctx.Status.Strings.Get(status.ScoreLastScorer).Load(); got != "Player" {
		t.Errorf("Expected last scorer Player, got %q", got)
	}
	if got := ctx.Status.Ints.Get(status.EventsDropped).Load(); got != 0 {
		t.Errorf("Expected no dropped events, got %d", got)
	}
}

// TestServeOnEmptyResetIsNoop verifies a Scored event with no ball is ignored by the reset
func TestServeOnEmptyResetIsNoop(t *testing.T) {
	ctx, _ := newTestGame(t)
	reset := NewBallResetSystem(ctx.World, ctx.Rand)

	ctx.World.PushEvent(events.EventScored, &events.ScoredPayload{Scorer: components.SidePlayer})
	reset.Update(ctx.World, constants.FrameUpdateInterval)

	for _, ev := range ctx.World.Events.Peek() {
		if ev.Type == events.EventBallReset {
			t.Error("Expected no reset event without a ball")
		}
	}
}
