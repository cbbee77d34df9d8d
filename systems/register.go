package systems

import (
	"github.com/lixenwraith/vi-pong/engine"
)

// Register adds the full per-frame pipeline to the context's world
// Order is fixed by priority, not by registration order
func Register(ctx *engine.GameContext) {
	w := ctx.World

	w.AddSystem(NewInputSystem(w, ctx.Host))
	w.AddSystem(NewPaddleMotionSystem(w, ctx.Host))
	w.AddSystem(NewBallMotionSystem(w))
	w.AddSystem(NewProjectionSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewScoreDetectSystem(w, ctx.Host))
	w.AddSystem(NewScoreUpdateSystem(w, ctx.Score))
	w.AddSystem(NewBallResetSystem(w, ctx.Rand))
	w.AddSystem(NewScoreboardSystem(w, ctx.Score))
	w.AddSystem(NewDiagnosticsSystem(w))
}

// NewGame builds a ready-to-step context: systems registered and the arena spawned
func NewGame(ctx *engine.GameContext, keys KeyBindings) *engine.GameContext {
	Register(ctx)
	SpawnArena(ctx, keys)
	return ctx
}
