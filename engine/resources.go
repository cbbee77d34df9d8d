package engine

import (
	"reflect"
	"sync"
	"time"
)

// ResourceStore is a thread-safe container for global resources
// It lets systems reach shared data (time, metrics) without coupling to GameContext
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its static type
// Use pointer types so systems mutate the shared instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Reserved for resources GameContext always installs
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// --- Core Resources ---

// TimeResource is refreshed by World.Update at the start of every frame
type TimeResource struct {
	GameTime    time.Time
	DeltaTime   time.Duration
	FrameNumber int64
}

// Update modifies fields in place (zero allocation)
func (tr *TimeResource) Update(gameTime time.Time, dt time.Duration, frame int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = dt
	tr.FrameNumber = frame
}
