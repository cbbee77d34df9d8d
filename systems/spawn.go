package systems

import (
	"log"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/vmath"
)

// KeyBindings names the four paddle keys
type KeyBindings struct {
	PlayerUp   host.Key
	PlayerDown host.Key
	AIUp       host.Key
	AIDown     host.Key
}

// DefaultKeyBindings: y/n for the left paddle, w/x for the right
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		PlayerUp:   "y",
		PlayerDown: "n",
		AIUp:       "w",
		AIDown:     "x",
	}
}

// SpawnArena creates the ball, paddles, gutters and scoreboard labels
// Paddles and gutters need the surface size; without a surface only the ball and labels spawn
func SpawnArena(ctx *engine.GameContext, keys KeyBindings) {
	SpawnBall(ctx)
	SpawnPaddles(ctx, keys)
	SpawnGutters(ctx)
	SpawnScoreboard(ctx)
}

// SpawnBall creates the ball at the center with the initial serve
func SpawnBall(ctx *engine.GameContext) engine.Entity {
	log.Printf("Spawning ball")

	w := ctx.World
	c := w.Components
	handle := ctx.Host.Register(host.ShapeSpec{
		Name:  "ball",
		Kind:  host.ShapeCircle,
		Size:  vmath.V2(constants.BallRadius, constants.BallRadius),
		Color: constants.BallColor,
	})

	e := w.CreateEntity()
	c.Balls.Add(e, components.BallComponent{})
	c.Positions.Add(e, components.PositionComponent{})
	c.Velocities.Add(e, components.VelocityComponent{Vec2: vmath.V2(constants.BallInitialVX, constants.BallInitialVY)})
	c.Shapes.Add(e, components.ShapeComponent{Vec2: vmath.V2(constants.BallRadius, constants.BallRadius)})
	c.Transforms.Add(e, components.TransformComponent{})
	c.Visuals.Add(e, components.VisualComponent{Handle: handle})
	return e
}

// SpawnPaddles creates the Player paddle on the left and the Ai paddle on the right
// Both share one visual handle
func SpawnPaddles(ctx *engine.GameContext, keys KeyBindings) []engine.Entity {
	log.Printf("Spawning paddles")

	width, _, ok := ctx.Host.Size()
	if !ok {
		log.Printf("spawn paddles: no surface found")
		return nil
	}

	handle := ctx.Host.Register(host.ShapeSpec{
		Name:  "paddle",
		Kind:  host.ShapeRect,
		Size:  vmath.V2(constants.PaddleWidth, constants.PaddleHeight),
		Color: constants.PaddleColor,
	})

	x := width/2 - constants.PaddlePadding
	return []engine.Entity{
		spawnPaddle(ctx, components.SidePlayer, -x, handle,
			components.ControlsComponent{Up: keys.PlayerUp, Down: keys.PlayerDown}),
		spawnPaddle(ctx, components.SideAI, x, handle,
			components.ControlsComponent{Up: keys.AIUp, Down: keys.AIDown}),
	}
}

func spawnPaddle(ctx *engine.GameContext, side components.Side, x float64, handle host.ShapeHandle, controls components.ControlsComponent) engine.Entity {
	w := ctx.World
	c := w.Components

	e := w.CreateEntity()
	c.Paddles.Add(e, components.PaddleComponent{Side: side})
	c.Controls.Add(e, controls)
	c.Positions.Add(e, components.PositionComponent{Vec2: vmath.V2(x, 0)})
	c.Velocities.Add(e, components.VelocityComponent{})
	c.Shapes.Add(e, components.ShapeComponent{Vec2: vmath.V2(constants.PaddleWidth, constants.PaddleHeight)})
	c.Transforms.Add(e, components.TransformComponent{Translation: vmath.V2(x, 0)})
	c.Visuals.Add(e, components.VisualComponent{Handle: handle})
	return e
}

// SpawnGutters creates the top and bottom walls spanning the full width
// Gutters are fixed at spawn and never move, even if the surface is resized later
func SpawnGutters(ctx *engine.GameContext) []engine.Entity {
	log.Printf("Spawning gutters")

	width, height, ok := ctx.Host.Size()
	if !ok {
		log.Printf("spawn gutters: no surface found")
		return nil
	}

	handle := ctx.Host.Register(host.ShapeSpec{
		Name:  "gutter",
		Kind:  host.ShapeRect,
		Size:  vmath.V2(width, constants.GutterHeight),
		Color: constants.GutterColor,
	})

	y := height/2 - constants.GutterHeight/2
	return []engine.Entity{
		spawnGutter(ctx, true, y, width, handle),
		spawnGutter(ctx, false, -y, width, handle),
	}
}

func spawnGutter(ctx *engine.GameContext, top bool, y, width float64, handle host.ShapeHandle) engine.Entity {
	w := ctx.World
	c := w.Components

	e := w.CreateEntity()
	c.Gutters.Add(e, components.GutterComponent{Top: top})
	c.Positions.Add(e, components.PositionComponent{Vec2: vmath.V2(0, y)})
	c.Shapes.Add(e, components.ShapeComponent{Vec2: vmath.V2(width, constants.GutterHeight)})
	c.Transforms.Add(e, components.TransformComponent{Translation: vmath.V2(0, y)})
	c.Visuals.Add(e, components.VisualComponent{Handle: handle})
	return e
}

// SpawnScoreboard creates one "0" label per side
func SpawnScoreboard(ctx *engine.GameContext) []engine.Entity {
	log.Printf("Spawning scoreboard")

	boards := []struct {
		side components.Side
		left int
	}{
		{components.SidePlayer, constants.ScoreboardPlayerLeft},
		{components.SideAI, constants.ScoreboardAILeft},
	}

	w := ctx.World
	c := w.Components
	out := make([]engine.Entity, 0, len(boards))
	for i, b := range boards {
		label := ctx.Host.NewLabel(host.LabelSpec{
			Name:     b.side.String() + "Scoreboard",
			Top:      constants.ScoreboardTop,
			Left:     b.left,
			Priority: i,
			Text:     "0",
		})

		e := w.CreateEntity()
		c.Scoreboards.Add(e, components.ScoreboardComponent{Side: b.side})
		c.Labels.Add(e, components.LabelComponent{Label: label})
		out = append(out, e)
	}
	return out
}
