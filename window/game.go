package window

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
)

// Game adapts the simulation to ebiten.Game
// ebiten calls Update at TPS; each call is exactly one simulation frame
type Game struct {
	Window   *Window
	Ctx      *engine.GameContext
	Interval time.Duration
	Debug    bool

	// Copy receives the score text on C; nil disables it
	Copy func(text string) error

	isPressed   func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
	face        text.Face
}

func NewGame(w *Window, ctx *engine.GameContext, interval time.Duration, debug bool) *Game {
	return &Game{
		Window:      w,
		Ctx:         ctx,
		Interval:    interval,
		Debug:       debug,
		Copy:        host.CopyText,
		isPressed:   ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		face:        text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	g.Window.SetPressed(PollKeys(g.isPressed))

	switch {
	case g.justPressed(ebiten.KeyEscape), g.justPressed(ebiten.KeyQ):
		return ebiten.Termination
	case g.justPressed(ebiten.KeySpace):
		log.Printf("paused=%v", g.Ctx.TogglePause())
	case g.justPressed(ebiten.KeyC):
		if g.Copy != nil {
			if err := g.Copy(g.Ctx.Score.String()); err != nil {
				log.Printf("copy score: %v", err)
			}
		}
	}

	g.Ctx.Step(g.Interval)
	return nil
}

// Layout implements ebiten.Game; the arena follows the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Window.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
