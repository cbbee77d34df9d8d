package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
)

// InputSystem maps held keys to paddle velocity
// Velocity is a direct function of current key state: no momentum
type InputSystem struct {
	engine.SystemBase
	keyboard host.Keyboard
}

func NewInputSystem(world *engine.World, keyboard host.Keyboard) *InputSystem {
	return &InputSystem{
		SystemBase: engine.NewSystemBase(world),
		keyboard:   keyboard,
	}
}

func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

func (s *InputSystem) Update(world *engine.World, dt time.Duration) {
	c := s.Component
	for _, e := range world.Query().With(c.Controls).With(c.Velocities).Execute() {
		controls, _ := c.Controls.Get(e)
		vel, _ := c.Velocities.Get(e)
		vel.Y = PaddleVelocityY(s.keyboard, controls)
		c.Velocities.Add(e, vel)
	}
}

// PaddleVelocityY resolves one paddle's key pair; Up wins when both are held
func PaddleVelocityY(kb host.Keyboard, controls components.ControlsComponent) float64 {
	switch {
	case kb.Pressed(controls.Up):
		return constants.PaddleSpeed
	case kb.Pressed(controls.Down):
		return -constants.PaddleSpeed
	default:
		return 0
	}
}
