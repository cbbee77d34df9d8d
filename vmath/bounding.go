package vmath

// Aabb2d is an axis-aligned box stored as min/max corners
type Aabb2d struct {
	Min, Max Vec2
}

// NewAabb2d builds a box from its center and half extents
func NewAabb2d(center, halfSize Vec2) Aabb2d {
	return Aabb2d{
		Min: center.Sub(halfSize),
		Max: center.Add(halfSize),
	}
}

func (a Aabb2d) Center() Vec2 {
	return a.Min.Add(a.Max).Scale(0.5)
}

func (a Aabb2d) HalfSize() Vec2 {
	return a.Max.Sub(a.Min).Scale(0.5)
}

// ClosestPoint returns the point of the box nearest to p
// Points inside the box map to themselves
func (a Aabb2d) ClosestPoint(p Vec2) Vec2 {
	return p.Clamp(a.Min, a.Max)
}

// BoundingCircle is a circle collider
type BoundingCircle struct {
	Center Vec2
	Radius float64
}

func NewBoundingCircle(center Vec2, radius float64) BoundingCircle {
	return BoundingCircle{Center: center, Radius: radius}
}

// IntersectsAabb reports overlap when the box's closest point lies strictly inside the circle
// Touching (distance == radius) is not an overlap
func (c BoundingCircle) IntersectsAabb(a Aabb2d) bool {
	closest := a.ClosestPoint(c.Center)
	return closest.DistanceSq(c.Center) < c.Radius*c.Radius
}
