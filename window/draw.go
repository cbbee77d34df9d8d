package window

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/host"
)

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(constants.BackgroundColor)

	g.drawShapes(screen)
	g.drawLabels(screen)

	_, height, _ := g.Window.Size()
	if g.Ctx.IsPaused.Load() {
		ebitenutil.DebugPrintAt(screen, "PAUSED  [space] resume  [q] quit", 8, int(height/2))
	}
	if g.Debug {
		ebitenutil.DebugPrintAt(screen, g.Ctx.Status.Line(), 4, int(height)-16)
	}
}

func (g *Game) drawShapes(screen *ebiten.Image) {
	world := g.Ctx.World
	c := world.Components

	for _, e := range world.Query().With(c.Transforms).With(c.Visuals).Execute() {
		tr, _ := c.Transforms.Get(e)
		vis, _ := c.Visuals.Get(e)
		spec, ok := g.Window.Spec(vis.Handle)
		if !ok {
			continue
		}

		x, y := g.Window.ArenaToPixel(tr.Translation)
		switch spec.Kind {
		case host.ShapeCircle:
			vector.FillCircle(screen, x, y, float32(spec.Size.X), spec.Color, true)
		default:
			w, h := float32(spec.Size.X), float32(spec.Size.Y)
			vector.FillRect(screen, x-w/2, y-h/2, w, h, spec.Color, false)
		}
	}
}

func (g *Game) drawLabels(screen *ebiten.Image) {
	labels := g.Window.All()
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Spec().Priority < labels[j].Spec().Priority
	})

	for _, l := range labels {
		spec := l.Spec()
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(spec.Left), float64(spec.Top))
		op.ColorScale.ScaleWithColor(constants.TextColor)
		text.Draw(screen, l.Text(), g.face, op)
	}
}
