package terminal

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/render"
)

// Terminal is the tcell-backed host
type Terminal struct {
	*host.ShapeRegistry
	host.LabelSet

	screen     tcell.Screen
	clock      engine.TimeProvider
	cellWidth  float64
	cellHeight float64
	holdWindow time.Duration

	mu     sync.RWMutex
	cols   int
	rows   int
	closed bool
	held   map[host.Key]time.Time
}

// New wraps a screen; cell sizes are arena units per terminal cell
func New(screen tcell.Screen, clock engine.TimeProvider, cellWidth, cellHeight float64) *Terminal {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Terminal{
		ShapeRegistry: host.NewShapeRegistry(),
		screen:        screen,
		clock:         clock,
		cellWidth:     cellWidth,
		cellHeight:    cellHeight,
		holdWindow:    constants.KeyHoldWindow,
		held:          make(map[host.Key]time.Time),
	}
}

// Init initializes the screen and reads its size
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	t.screen.HideCursor()
	t.screen.SetStyle(render.DefaultStyle)
	t.Resize()
	return nil
}

// Fini restores the terminal; the surface reports missing afterwards
func (t *Terminal) Fini() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.screen.Fini()
}

func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Resize re-reads the screen size in cells
func (t *Terminal) Resize() (cols, rows int) {
	cols, rows = t.screen.Size()
	t.mu.Lock()
	t.cols, t.rows = cols, rows
	t.mu.Unlock()
	log.Printf("terminal: %dx%d cells", cols, rows)
	return cols, rows
}

// Cells returns the last known screen size in cells
func (t *Terminal) Cells() (int, int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cols, t.rows
}

// Size implements host.Surface in arena units
func (t *Terminal) Size() (float64, float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed || t.cols <= 0 || t.rows <= 0 {
		return 0, 0, false
	}
	return float64(t.cols) * t.cellWidth, float64(t.rows) * t.cellHeight, true
}

// Pressed implements host.Keyboard: true within the hold window of the key's last event
func (t *Terminal) Pressed(k host.Key) bool {
	t.mu.RLock()
	last, ok := t.held[k]
	t.mu.RUnlock()
	return ok && t.clock.Now().Sub(last) < t.holdWindow
}

// HandleEvent records key state and maps the event to an action
func (t *Terminal) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.HandleKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		t.Resize()
		return ActionResize
	}
	return ActionNone
}

// HandleKey is HandleEvent for an already decoded key
func (t *Terminal) HandleKey(key tcell.Key, r rune, mod tcell.ModMask) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	name := KeyName(key, r)
	if name == "" {
		return ActionNone
	}

	switch name {
	case KeyQuit:
		return ActionQuit
	case KeyPause:
		return ActionPause
	case KeyCopy:
		return ActionCopy
	}

	t.mu.Lock()
	t.held[name] = t.clock.Now()
	t.mu.Unlock()
	return ActionNone
}

// RenderContext snapshots the screen geometry for one frame
func (t *Terminal) RenderContext(frame int64, paused, debug bool) render.RenderContext {
	cols, rows := t.Cells()
	return render.RenderContext{
		FrameNumber:  frame,
		IsPaused:     paused,
		Debug:        debug,
		ScreenWidth:  cols,
		ScreenHeight: rows,
		CellWidth:    t.cellWidth,
		CellHeight:   t.cellHeight,
	}
}

var _ host.Host = (*Terminal)(nil)
