package host

import "sync"

// ShapeRegistry is the handle bookkeeping shared by backends
// Handles are assigned in registration order starting from 1
type ShapeRegistry struct {
	mu     sync.RWMutex
	bySpec map[ShapeSpec]ShapeHandle
	specs  []ShapeSpec
}

func NewShapeRegistry() *ShapeRegistry {
	return &ShapeRegistry{
		bySpec: make(map[ShapeSpec]ShapeHandle),
	}
}

// Register returns the existing handle for an identical spec or allocates a new one
func (r *ShapeRegistry) Register(spec ShapeSpec) ShapeHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.bySpec[spec]; ok {
		return h
	}
	r.specs = append(r.specs, spec)
	h := ShapeHandle(len(r.specs))
	r.bySpec[spec] = h
	return h
}

// Spec resolves a handle back to its spec
func (r *ShapeRegistry) Spec(h ShapeHandle) (ShapeSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h == 0 || int(h) > len(r.specs) {
		return ShapeSpec{}, false
	}
	return r.specs[h-1], true
}

// Count returns the number of distinct assets
func (r *ShapeRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}

// TextLabel is a plain label that counts its writes
type TextLabel struct {
	mu     sync.RWMutex
	spec   LabelSpec
	text   string
	writes int
}

func NewTextLabel(spec LabelSpec) *TextLabel {
	return &TextLabel{spec: spec, text: spec.Text}
}

func (l *TextLabel) SetText(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = s
	l.writes++
}

func (l *TextLabel) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// Writes returns how many times SetText was called
func (l *TextLabel) Writes() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.writes
}

func (l *TextLabel) Spec() LabelSpec {
	return l.spec
}

// LabelSet keeps labels in creation order for backends to draw
type LabelSet struct {
	mu     sync.RWMutex
	labels []*TextLabel
}

func (s *LabelSet) NewLabel(spec LabelSpec) Label {
	l := NewTextLabel(spec)
	s.mu.Lock()
	s.labels = append(s.labels, l)
	s.mu.Unlock()
	return l
}

// All returns the labels sorted by creation order
func (s *LabelSet) All() []*TextLabel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*TextLabel, len(s.labels))
	copy(out, s.labels)
	return out
}
