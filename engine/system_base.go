package engine

import "time"

// System is implemented by every per-frame simulation step
type System interface {
	// Update runs once per frame in priority order
	Update(world *World, dt time.Duration)
	// Priority orders systems; lower values run first
	Priority() int
}

// SystemBase provides common dependencies for systems
// Embed in system struct to skip repeated store lookups
type SystemBase struct {
	World     *World
	Component ComponentStore
}

// NewSystemBase captures the world's store pointers
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Component: w.Components,
	}
}
