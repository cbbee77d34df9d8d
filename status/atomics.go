package status

import (
	"math"
	"strconv"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its bit pattern; zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MaxStringLen caps stored strings so the status line stays one row
const MaxStringLen = 24

// AtomicString holds a short string; zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// formatters used by Registry.Snapshot

func formatInt(v *atomic.Int64) string { return strconv.FormatInt(v.Load(), 10) }
func formatBool(v *atomic.Bool) string { return strconv.FormatBool(v.Load()) }
func formatFloat(v *AtomicFloat) string { return strconv.FormatFloat(v.Get(), 'f', 2, 64) }
func formatString(v *AtomicString) string { return v.Load() }
