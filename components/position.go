package components

import "github.com/lixenwraith/vi-pong/vmath"

// PositionComponent is the simulation position in arena units, origin at the arena center
type PositionComponent struct {
	vmath.Vec2
}

// VelocityComponent is the per-tick displacement; zero means stationary
// Only the ball and paddles carry one
type VelocityComponent struct {
	vmath.Vec2
}

// ShapeComponent holds collision extents, immutable after spawn
// Width/height for boxes; the ball stores its radius in X
type ShapeComponent struct {
	vmath.Vec2
}

// TransformComponent is the render-side copy of Position
// Written by ProjectionSystem, read by renderers only
type TransformComponent struct {
	Translation vmath.Vec2
}
