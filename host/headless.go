package host

import "sync"

// Headless is an in-memory host for tests and the headless report
// Keys are pressed and released explicitly; nothing is drawn
type Headless struct {
	*ShapeRegistry
	LabelSet

	mu      sync.RWMutex
	width   float64
	height  float64
	present bool
	pressed map[Key]bool
}

// NewHeadless creates a host with a surface of the given size
func NewHeadless(width, height float64) *Headless {
	return &Headless{
		ShapeRegistry: NewShapeRegistry(),
		width:         width,
		height:        height,
		present:       true,
		pressed:       make(map[Key]bool),
	}
}

func (h *Headless) Size() (float64, float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.width, h.height, h.present
}

// Resize changes the surface size; the simulation picks it up next frame
func (h *Headless) Resize(width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.width, h.height = width, height
}

// SetPresent simulates the surface disappearing (or coming back)
func (h *Headless) SetPresent(present bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.present = present
}

func (h *Headless) Pressed(k Key) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pressed[k]
}

func (h *Headless) Press(k Key) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed[k] = true
}

func (h *Headless) Release(k Key) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.pressed, k)
}

// Toggle flips a key and returns its new state
func (h *Headless) Toggle(k Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pressed[k] {
		delete(h.pressed, k)
		return false
	}
	h.pressed[k] = true
	return true
}

// Label finds a label by name
func (h *Headless) Label(name string) (*TextLabel, bool) {
	for _, l := range h.All() {
		if l.Spec().Name == name {
			return l, true
		}
	}
	return nil, false
}

var _ Host = (*Headless)(nil)
