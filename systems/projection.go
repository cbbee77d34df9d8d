package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// ProjectionSystem copies simulation positions into render transforms
type ProjectionSystem struct {
	engine.SystemBase
}

func NewProjectionSystem(world *engine.World) *ProjectionSystem {
	return &ProjectionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ProjectionSystem) Priority() int {
	return constants.PriorityProjection
}

func (s *ProjectionSystem) Update(world *engine.World, dt time.Duration) {
	c := s.Component
	for _, e := range world.Query().With(c.Positions).With(c.Transforms).Execute() {
		pos, _ := c.Positions.Get(e)
		c.Transforms.Add(e, components.TransformComponent{Translation: pos.Vec2})
	}
}
