// Package window runs the simulation in a desktop window through ebiten.
package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Window is the ebiten-backed host
// Key state is a snapshot taken once per tick before the simulation steps
type Window struct {
	*host.ShapeRegistry
	host.LabelSet

	mu      sync.RWMutex
	width   float64
	height  float64
	pressed map[host.Key]bool
}

// New creates a window host with an initial surface size in pixels
func New(width, height float64) *Window {
	return &Window{
		ShapeRegistry: host.NewShapeRegistry(),
		width:         width,
		height:        height,
		pressed:       make(map[host.Key]bool),
	}
}

func (w *Window) Size() (float64, float64, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height, w.width > 0 && w.height > 0
}

// Resize follows the window's layout size
func (w *Window) Resize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
}

func (w *Window) Pressed(k host.Key) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pressed[k]
}

// SetPressed replaces the key snapshot
func (w *Window) SetPressed(keys map[host.Key]bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pressed = keys
}

// ArenaToPixel maps an arena point (origin at center, y up) to window pixels (origin top-left, y down)
func (w *Window) ArenaToPixel(p vmath.Vec2) (float32, float32) {
	width, height, _ := w.Size()
	return float32(p.X + width/2), float32(height/2 - p.Y)
}

// keyTable maps binding names to ebiten keys
var keyTable = map[host.Key]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown,
	"left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,
	"space": ebiten.KeySpace, "enter": ebiten.KeyEnter, "tab": ebiten.KeyTab,
}

// PollKeys snapshots every named key that is currently down
func PollKeys(isPressed func(ebiten.Key) bool) map[host.Key]bool {
	out := make(map[host.Key]bool, 4)
	for name, k := range keyTable {
		if isPressed(k) {
			out[name] = true
		}
	}
	return out
}

var _ host.Host = (*Window)(nil)
