package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// CollisionSystem reflects the ball off paddles and gutters
//
// The ball is a circle (radius = Shape.X); every other positioned, shaped entity is a
// box with half extents Shape/2. Each overlapping obstacle flips one axis on its own:
// a frame touching two obstacles may flip both axes, or the same axis twice.
type CollisionSystem struct {
	engine.SystemBase
	collisions *atomic.Int64
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &CollisionSystem{
		SystemBase: engine.NewSystemBase(world),
		collisions: reg.Ints.Get(status.BallCollisions),
	}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	c := s.Component
	ball, ok := engine.Single(c.Balls)
	if !ok {
		return
	}
	pos, okPos := c.Positions.Get(ball)
	vel, okVel := c.Velocities.Get(ball)
	shape, okShape := c.Shapes.Get(ball)
	if !okPos || !okVel || !okShape {
		return
	}

	circle := vmath.NewBoundingCircle(pos.Vec2, shape.X)
	obstacles := world.Query().
		With(c.Positions).
		With(c.Shapes).
		Without(c.Balls).
		Execute()

	hit := false
	for _, e := range obstacles {
		opos, _ := c.Positions.Get(e)
		oshape, _ := c.Shapes.Get(e)
		box := vmath.NewAabb2d(opos.Vec2, oshape.Scale(0.5))

		side, ok := physics.CollideWithSide(circle, box)
		if !ok {
			continue
		}
		vel.Vec2 = physics.Reflect(vel.Vec2, side)
		hit = true
		s.collisions.Add(1)
		world.PushEvent(events.EventCollision, &events.CollisionPayload{
			Side:    side.String(),
			Flipped: vel.Vec2,
		})
	}

	if hit {
		c.Velocities.Add(ball, vel)
	}
}
