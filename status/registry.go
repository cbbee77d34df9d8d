package status

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Metric names published by the simulation
const (
	FrameCount       = "frame.count"
	FrameMissingBall = "frame.missing_ball"
	BallCollisions   = "ball.collisions"
	BallLastHit      = "ball.last_hit"
	BallResets       = "ball.resets"
	ScoreEvents      = "score.events"
	ScorePlayer      = "score.player"
	ScoreAI          = "score.ai"
	ScoreLastScorer  = "score.last"
	EventsDropped    = "events.dropped"
	LoopPaused       = "loop.paused"
	LoopFrameMillis  = "loop.frame_ms"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot returns every metric formatted as a string, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = formatInt(v) })
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = formatBool(v) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = formatFloat(v) })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = formatString(v) })
	return out
}

// Line renders the snapshot as "k=v k=v" in key order, for the debug status row
func (r *Registry) Line() string {
	snap := r.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(snap[k])
	}
	return b.String()
}
