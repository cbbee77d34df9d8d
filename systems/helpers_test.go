package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/vmath"
)

const (
	testWidth  = 800
	testHeight = 480
)

// newTestGame returns a context with the full pipeline registered and nothing spawned
func newTestGame(t *testing.T) (*engine.GameContext, *host.Headless) {
	t.Helper()
	ctx, h, _ := engine.NewTestGameContext(testWidth, testHeight)
	Register(ctx)
	return ctx, h
}

// step runs n frames at the fixed interval
func step(ctx *engine.GameContext, n int) {
	for i := 0; i < n; i++ {
		ctx.Step(constants.FrameUpdateInterval)
	}
}

func ballState(t *testing.T, ctx *engine.GameContext) (vmath.Vec2, vmath.Vec2) {
	t.Helper()
	c := ctx.World.Components
	ball, ok := engine.Single(c.Balls)
	if !ok {
		t.Fatal("Expected a ball entity")
	}
	pos, _ := c.Positions.Get(ball)
	vel, _ := c.Velocities.Get(ball)
	return pos.Vec2, vel.Vec2
}

func setBall(t *testing.T, ctx *engine.GameContext, pos, vel vmath.Vec2) {
	t.Helper()
	c := ctx.World.Components
	ball, ok := engine.Single(c.Balls)
	if !ok {
		t.Fatal("Expected a ball entity")
	}
	c.Positions.Add(ball, components.PositionComponent{Vec2: pos})
	c.Velocities.Add(ball, components.VelocityComponent{Vec2: vel})
}

// addBox places a static obstacle of full size (w, h) centered at pos
func addBox(ctx *engine.GameContext, pos vmath.Vec2, w, h float64) engine.Entity {
	c := ctx.World.Components
	e := ctx.World.CreateEntity()
	c.Positions.Add(e, components.PositionComponent{Vec2: pos})
	c.Shapes.Add(e, components.ShapeComponent{Vec2: vmath.V2(w, h)})
	return e
}

func paddleBySide(t *testing.T, ctx *engine.GameContext, side components.Side) engine.Entity {
	t.Helper()
	c := ctx.World.Components
	for _, e := range c.Paddles.All() {
		p, _ := c.Paddles.Get(e)
		if p.Side == side {
			return e
		}
	}
	t.Fatalf("Expected a %s paddle", side)
	return 0
}

// recordingSystem runs after every game system and keeps what its reader saw
type recordingSystem struct {
	reader *events.Reader
	seen   []events.GameEvent
}

func (r *recordingSystem) Priority() int { return 1000 }

func (r *recordingSystem) Update(world *engine.World, dt time.Duration) {
	r.seen = append(r.seen, r.reader.Read()...)
}
