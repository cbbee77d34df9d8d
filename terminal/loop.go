package terminal

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/render/renderers"
)

// Loop drives one terminal session: input events, fixed-rate frames, rendering
type Loop struct {
	Term         *Terminal
	Ctx          *engine.GameContext
	Orchestrator *render.RenderOrchestrator
	Interval     time.Duration
	Debug        bool

	// Copy receives the score text on the copy key; nil disables it
	Copy func(text string) error
}

// NewLoop wires the standard renderers onto the terminal
func NewLoop(term *Terminal, ctx *engine.GameContext, interval time.Duration, debug bool) *Loop {
	cols, rows := term.Cells()
	orchestrator := render.NewRenderOrchestrator(term.Screen(), cols, rows)

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewShapeRenderer(ctx, term), render.PriorityEntities},
		{renderers.NewLabelRenderer(term), render.PriorityUI},
		{renderers.NewPauseRenderer(ctx), render.PriorityOverlay},
		{renderers.NewStatusBarRenderer(ctx, debug), render.PriorityDebug},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	return &Loop{
		Term:         term,
		Ctx:          ctx,
		Orchestrator: orchestrator,
		Interval:     interval,
		Debug:        debug,
		Copy:         host.CopyText,
	}
}

// Handle applies one input event; returns false when the session should end
func (l *Loop) Handle(ev tcell.Event) bool {
	return l.Apply(l.Term.HandleEvent(ev))
}

// Apply performs an action; returns false for quit
func (l *Loop) Apply(action Action) bool {
	switch action {
	case ActionQuit:
		return false
	case ActionPause:
		paused := l.Ctx.TogglePause()
		log.Printf("paused=%v", paused)
		l.Render()
	case ActionCopy:
		if l.Copy != nil {
			if err := l.Copy(l.Ctx.Score.String()); err != nil {
				log.Printf("copy score: %v", err)
			}
		}
	case ActionResize:
		cols, rows := l.Term.Cells()
		l.Orchestrator.Resize(cols, rows)
		l.Render()
	}
	return true
}

// Frame steps the simulation once and renders
func (l *Loop) Frame() {
	l.Ctx.Step(l.Interval)
	l.Render()
}

// Render draws the current world state
func (l *Loop) Render() {
	rc := l.Term.RenderContext(l.Ctx.World.FrameNumber(), l.Ctx.IsPaused.Load(), l.Debug)
	l.Orchestrator.RenderFrame(rc)
}

// Run consumes events and ticks until quit or the event channel closes
func (l *Loop) Run(events <-chan tcell.Event, ticks <-chan time.Time) {
	l.Render()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !l.Handle(ev) {
				return
			}
		case <-ticks:
			l.Frame()
		}
	}
}

// PollEvents forwards screen events until the screen is finalized
func PollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}
