// Package host defines the capabilities the simulation consumes from whatever
// presents it: a display surface, a keyboard, shape registration and text labels.
// Backends (terminal, window, headless) implement these; the simulation never
// learns how anything is drawn.
package host

import (
	"image/color"

	"github.com/lixenwraith/vi-pong/vmath"
)

// Key is a lower-case key name ("y", "n", "w", "x", "up", ...)
type Key string

// Surface reports the current arena size in position units
// ok is false when no surface exists yet (or it was closed)
type Surface interface {
	Size() (width, height float64, ok bool)
}

// Keyboard reports whether a named key is held down this frame
type Keyboard interface {
	Pressed(k Key) bool
}

// ShapeKind selects the primitive drawn for a handle
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// ShapeSpec describes a visual asset
// Size is width/height for rects and (radius, radius) for circles
type ShapeSpec struct {
	Name  string
	Kind  ShapeKind
	Size  vmath.Vec2
	Color color.RGBA
}

// ShapeHandle is an opaque reference to a registered asset
// Zero is never handed out
type ShapeHandle uint32

// Shapes registers visual assets; registering the same spec twice returns the same handle
type Shapes interface {
	Register(spec ShapeSpec) ShapeHandle
}

// LabelSpec places a text label in screen space, measured from the top-left
type LabelSpec struct {
	Name     string
	Top      int
	Left     int
	Priority int
	Text     string
}

// Label is a mutable text value owned by the backend
type Label interface {
	SetText(s string)
	Text() string
}

// Labels creates text labels
type Labels interface {
	NewLabel(spec LabelSpec) Label
}

// Host bundles every capability a backend provides
type Host interface {
	Surface
	Keyboard
	Shapes
	Labels
}
