package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

// StatusBarRenderer draws the metrics line on the bottom row in debug mode
type StatusBarRenderer struct {
	gameCtx *engine.GameContext
	debug   bool
}

func NewStatusBarRenderer(gameCtx *engine.GameContext, debug bool) *StatusBarRenderer {
	return &StatusBarRenderer{
		gameCtx: gameCtx,
		debug:   debug,
	}
}

// IsVisible returns true in debug mode
func (s *StatusBarRenderer) IsVisible() bool {
	return s.debug
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.ScreenHeight == 0 {
		return
	}
	y := ctx.ScreenHeight - 1
	style := render.FgStyle(constants.TextColor)

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, y, ' ', render.DefaultStyle)
	}
	line := runewidth.Truncate(s.gameCtx.Status.Line(), ctx.ScreenWidth, "…")
	buf.SetString(0, y, line, style)
}
