package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// GameContext holds all game state including the ECS world and the host it runs on
type GameContext struct {
	World *World
	Host  host.Host

	// Score is injected into the systems that own it, never looked up ambiently
	Score *ScoreResource

	// Status is the metrics registry, also installed as a World resource
	Status *status.Registry

	// Rand drives the serve; seeded for reproducible runs
	Rand *vmath.FastRand

	TimeProvider TimeProvider

	IsPaused atomic.Bool

	droppedEvents *atomic.Int64
	frameMillis   *status.AtomicFloat
	paused        *atomic.Bool
}

// NewGameContext creates a world bound to h with core resources installed
// seed 0 seeds from the clock
func NewGameContext(h host.Host, seed uint64, tp TimeProvider) *GameContext {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if seed == 0 {
		seed = uint64(tp.Now().UnixNano())
	}

	reg := status.NewRegistry()
	ctx := &GameContext{
		World:        NewWorld(),
		Host:         h,
		Score:        NewScoreResource(),
		Status:       reg,
		Rand:         vmath.NewFastRand(seed),
		TimeProvider: tp,

		droppedEvents: reg.Ints.Get(status.EventsDropped),
		frameMillis:   reg.Floats.Get(status.LoopFrameMillis),
		paused:        reg.Bools.Get(status.LoopPaused),
	}

	ctx.World.SetTimeProvider(tp)
	AddResource(ctx.World.Resources, &TimeResource{})
	AddResource(ctx.World.Resources, ctx.Score)
	AddResource(ctx.World.Resources, reg)

	log.Printf("game context created, seed=%d", seed)
	return ctx
}

// Step runs one simulation frame unless paused
// Returns false when the frame was skipped
func (g *GameContext) Step(dt time.Duration) bool {
	if g.IsPaused.Load() {
		return false
	}

	start := g.TimeProvider.Now()
	if dropped := g.World.Update(dt); dropped > 0 {
		g.droppedEvents.Add(int64(dropped))
	}
	g.frameMillis.Set(float64(g.TimeProvider.Now().Sub(start).Microseconds()) / 1000)
	return true
}

// TogglePause flips the pause state and returns the new value
func (g *GameContext) TogglePause() bool {
	for {
		old := g.IsPaused.Load()
		if g.IsPaused.CompareAndSwap(old, !old) {
			g.paused.Store(!old)
			return !old
		}
	}
}
