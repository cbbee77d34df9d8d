package events

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ScoredPayload names the side that gets the point
type ScoredPayload struct {
	Scorer components.Side
}

// BallResetPayload carries the new serve
type BallResetPayload struct {
	Velocity vmath.Vec2
}

// CollisionPayload records one reflection
type CollisionPayload struct {
	Side    string
	Flipped vmath.Vec2 // velocity after the flip
}
