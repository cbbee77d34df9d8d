package renderers

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/render"
)

// ShapeLookup resolves a visual handle to the asset registered for it
type ShapeLookup interface {
	Spec(h host.ShapeHandle) (host.ShapeSpec, bool)
}

const (
	glyphRect   = '█'
	glyphCircle = '●'
)

// ShapeRenderer draws every entity with a transform and a visual handle
type ShapeRenderer struct {
	gameCtx *engine.GameContext
	shapes  ShapeLookup
}

func NewShapeRenderer(gameCtx *engine.GameContext, shapes ShapeLookup) *ShapeRenderer {
	return &ShapeRenderer{
		gameCtx: gameCtx,
		shapes:  shapes,
	}
}

// Render implements SystemRenderer
func (r *ShapeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	world := r.gameCtx.World
	c := world.Components

	for _, e := range world.Query().With(c.Transforms).With(c.Visuals).Execute() {
		tr, _ := c.Transforms.Get(e)
		vis, _ := c.Visuals.Get(e)
		spec, ok := r.shapes.Spec(vis.Handle)
		if !ok {
			continue
		}
		style := render.FgStyle(spec.Color)

		switch spec.Kind {
		case host.ShapeCircle:
			// Ball is smaller than a cell: one glyph at its center
			x, y := ctx.ArenaToScreen(tr.Translation)
			buf.Set(x, y, glyphCircle, style)
		default:
			x0, y0, x1, y1 := ctx.ArenaRect(tr.Translation, spec.Size)
			buf.Fill(x0, y0, x1, y1, glyphRect, style)
		}
	}
}
