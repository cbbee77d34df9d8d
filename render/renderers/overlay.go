package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

const pauseText = "PAUSED  [space] resume  [q] quit"

// PauseRenderer draws a centered banner while the simulation is paused
type PauseRenderer struct {
	gameCtx *engine.GameContext
}

func NewPauseRenderer(gameCtx *engine.GameContext) *PauseRenderer {
	return &PauseRenderer{gameCtx: gameCtx}
}

// IsVisible returns true while paused
func (r *PauseRenderer) IsVisible() bool {
	return r.gameCtx.IsPaused.Load()
}

// Render implements SystemRenderer
func (r *PauseRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	text := runewidth.Truncate(pauseText, ctx.ScreenWidth, "")
	x := (ctx.ScreenWidth - runewidth.StringWidth(text)) / 2
	y := ctx.ScreenHeight / 2
	buf.SetString(x, y, text, render.FgStyle(constants.TextColor).Reverse(true))
}
