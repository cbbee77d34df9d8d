package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallMotionSystem integrates the ball: Position += Velocity, no dt scaling
type BallMotionSystem struct {
	engine.SystemBase
}

func NewBallMotionSystem(world *engine.World) *BallMotionSystem {
	return &BallMotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BallMotionSystem) Priority() int {
	return constants.PriorityBallMotion
}

func (s *BallMotionSystem) Update(world *engine.World, dt time.Duration) {
	c := s.Component
	ball, ok := engine.Single(c.Balls)
	if !ok {
		return
	}
	pos, okPos := c.Positions.Get(ball)
	vel, okVel := c.Velocities.Get(ball)
	if !okPos || !okVel {
		return
	}
	pos.Vec2 = pos.Add(vel.Vec2)
	c.Positions.Add(ball, pos)
}

// PaddleMotionSystem moves paddles vertically and clamps them inside the arena
// Bounds come from the surface every frame since it may be resized
type PaddleMotionSystem struct {
	engine.SystemBase
	surface host.Surface
}

func NewPaddleMotionSystem(world *engine.World, surface host.Surface) *PaddleMotionSystem {
	return &PaddleMotionSystem{
		SystemBase: engine.NewSystemBase(world),
		surface:    surface,
	}
}

func (s *PaddleMotionSystem) Priority() int {
	return constants.PriorityPaddleMotion
}

func (s *PaddleMotionSystem) Update(world *engine.World, dt time.Duration) {
	_, height, ok := s.surface.Size()
	if !ok {
		log.Printf("paddle motion: no surface found")
		return
	}

	c := s.Component
	for _, e := range world.Query().With(c.Paddles).With(c.Positions).With(c.Velocities).Execute() {
		pos, _ := c.Positions.Get(e)
		vel, _ := c.Velocities.Get(e)

		paddleHeight := constants.PaddleHeight
		if shape, ok := c.Shapes.Get(e); ok {
			paddleHeight = shape.Y
		}

		pos.Y = ClampPaddleY(pos.Y+vel.Y, height, paddleHeight)
		c.Positions.Add(e, pos)
	}
}

// ClampPaddleY keeps a paddle center within [-H/2+h/2, H/2-h/2]
func ClampPaddleY(y, arenaHeight, paddleHeight float64) float64 {
	limit := arenaHeight/2 - paddleHeight/2
	return vmath.Clamp(y, -limit, limit)
}
