package engine

import (
	"github.com/lixenwraith/vi-pong/components"
)

// ComponentStore holds the typed stores of a World
// Systems cache these pointers at construction; they stay valid for the World's lifetime
type ComponentStore struct {
	// Spatial
	Positions  *Store[components.PositionComponent]
	Velocities *Store[components.VelocityComponent]
	Shapes     *Store[components.ShapeComponent]
	Transforms *Store[components.TransformComponent]

	// Tags
	Balls   *Store[components.BallComponent]
	Paddles *Store[components.PaddleComponent]
	Gutters *Store[components.GutterComponent]

	// Input
	Controls *Store[components.ControlsComponent]

	// Presentation
	Visuals     *Store[components.VisualComponent]
	Scoreboards *Store[components.ScoreboardComponent]
	Labels      *Store[components.LabelComponent]
}

// initComponentStores creates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	c := ComponentStore{
		Positions:  NewStore[components.PositionComponent](),
		Velocities: NewStore[components.VelocityComponent](),
		Shapes:     NewStore[components.ShapeComponent](),
		Transforms: NewStore[components.TransformComponent](),

		Balls:   NewStore[components.BallComponent](),
		Paddles: NewStore[components.PaddleComponent](),
		Gutters: NewStore[components.GutterComponent](),

		Controls: NewStore[components.ControlsComponent](),

		Visuals:     NewStore[components.VisualComponent](),
		Scoreboards: NewStore[components.ScoreboardComponent](),
		Labels:      NewStore[components.LabelComponent](),
	}

	w.Components = c
	w.allStores = []AnyStore{
		c.Positions, c.Velocities, c.Shapes, c.Transforms,
		c.Balls, c.Paddles, c.Gutters,
		c.Controls,
		c.Visuals, c.Scoreboards, c.Labels,
	}
}
