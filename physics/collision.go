package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// Collision identifies the side of an obstacle the ball struck
type Collision uint8

const (
	CollisionTop Collision = iota
	CollisionBottom
	CollisionLeft
	CollisionRight
)

func (c Collision) String() string {
	switch c {
	case CollisionTop:
		return "Top"
	case CollisionBottom:
		return "Bottom"
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether the hit flips the X axis
func (c Collision) Horizontal() bool {
	return c == CollisionLeft || c == CollisionRight
}

// CollideWithSide classifies a circle/box hit by the offset from the box's closest point
// to the circle center. The dominant axis wins; |x| == |y| falls to Top/Bottom.
func CollideWithSide(ball vmath.BoundingCircle, wall vmath.Aabb2d) (Collision, bool) {
	if !ball.IntersectsAabb(wall) {
		return 0, false
	}

	closest := wall.ClosestPoint(ball.Center)
	offset := ball.Center.Sub(closest)

	if math.Abs(offset.X) > math.Abs(offset.Y) {
		if offset.X > 0 {
			return CollisionLeft, true
		}
		return CollisionRight, true
	}
	if offset.Y > 0 {
		return CollisionBottom, true
	}
	return CollisionTop, true
}

// Reflect inverts the velocity component on the struck axis
// Magnitude is preserved: no energy loss, no spin
func Reflect(velocity vmath.Vec2, c Collision) vmath.Vec2 {
	if c.Horizontal() {
		velocity.X = -velocity.X
	} else {
		velocity.Y = -velocity.Y
	}
	return velocity
}
