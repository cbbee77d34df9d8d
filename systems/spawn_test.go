package systems

import (
	"testing"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

// TestSpawnArenaLayout verifies entity placement and shared visual handles
func TestSpawnArenaLayout(t *testing.T) {
	ctx, h, _ := engine.NewTestGameContext(testWidth, testHeight)
	SpawnArena(ctx, DefaultKeyBindings())
	c := ctx.World.Components

	if c.Balls.Count() != 1 || c.Paddles.Count() != 2 || c.Gutters.Count() != 2 || c.Scoreboards.Count() != 2 {
		t.Fatalf("Unexpected counts: balls=%d paddles=%d gutters=%d boards=%d",
			c.Balls.Count(), c.Paddles.Count(), c.Gutters.Count(), c.Scoreboards.Count())
	}

	// ball, paddle and gutter: three assets for five drawn entities
	if got := h.Count(); got != 3 {
		t.Errorf("Expected 3 registered shapes, got %d", got)
	}

	player := paddleBySide(t, ctx, components.SidePlayer)
	ai := paddleBySide(t, ctx, components.SideAI)
	pp, _ := c.Positions.Get(player)
	ap, _ := c.Positions.Get(ai)
	wantX := testWidth/2 - constants.PaddlePadding
	if pp.Vec2 != vmath.V2(-wantX, 0) || ap.Vec2 != vmath.V2(wantX, 0) {
		t.Errorf("Expected paddles at ∓%v, got %+v / %+v", wantX, pp.Vec2, ap.Vec2)
	}

	pv, _ := c.Visuals.Get(player)
	av, _ := c.Visuals.Get(ai)
	if pv.Handle != av.Handle || pv.Handle == 0 {
		t.Errorf("Expected paddles to share a non-zero handle, got %d/%d", pv.Handle, av.Handle)
	}

	pc, _ := c.Controls.Get(player)
	if pc.Up != "y" || pc.Down != "n" {
		t.Errorf("Expected Player keys y/n, got %s/%s", pc.Up, pc.Down)
	}

	for _, e := range c.Gutters.All() {
		g, _ := c.Gutters.Get(e)
		pos, _ := c.Positions.Get(e)
		want := testHeight/2 - constants.GutterHeight/2
		if !g.Top {
			want = -want
		}
		if pos.Y != want {
			t.Errorf("Expected gutter (top=%v) at y=%v, got %v", g.Top, want, pos.Y)
		}
	}

	if l, ok := h.Label("PlayerScoreboard"); !ok || l.Text() != "0" {
		t.Error("Expected PlayerScoreboard label showing 0")
	}
}

// TestSpawnArenaWithoutSurface verifies only the ball and labels spawn
func TestSpawnArenaWithoutSurface(t *testing.T) {
	ctx, h, _ := engine.NewTestGameContext(testWidth, testHeight)
	h.SetPresent(false)

	SpawnArena(ctx, DefaultKeyBindings())
	c := ctx.World.Components

	if c.Balls.Count() != 1 {
		t.Errorf("Expected ball, got %d", c.Balls.Count())
	}
	if c.Paddles.Count() != 0 || c.Gutters.Count() != 0 {
		t.Errorf("Expected no paddles or gutters, got %d/%d", c.Paddles.Count(), c.Gutters.Count())
	}
	if c.Scoreboards.Count() != 2 {
		t.Errorf("Expected 2 scoreboards, got %d", c.Scoreboards.Count())
	}
}

// TestRegisterOrder verifies the pipeline runs in priority order
func TestRegisterOrder(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext(testWidth, testHeight)
	Register(ctx)

	systems := ctx.World.Systems()
	if len(systems) != 10 {
		t.Fatalf("Expected 10 systems, got %d", len(systems))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() >= systems[i].Priority() {
			t.Errorf("System %d (priority %d) not before system %d (priority %d)",
				i-1, systems[i-1].Priority(), i, systems[i].Priority())
		}
	}
	if _, ok := systems[0].(*InputSystem); !ok {
		t.Errorf("Expected InputSystem first, got %T", systems[0])
	}
}
