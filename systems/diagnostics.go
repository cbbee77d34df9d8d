package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/status"
)

// DiagnosticsSystem publishes per-frame telemetry; runs after all game logic
// It is the subscriber for collision and reset events
type DiagnosticsSystem struct {
	reader  *events.Reader
	frames  *atomic.Int64
	resets  *atomic.Int64
	lastHit *status.AtomicString
}

func NewDiagnosticsSystem(world *engine.World) *DiagnosticsSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &DiagnosticsSystem{
		reader:  events.NewReader(world.Events, events.EventCollision, events.EventBallReset),
		frames:  reg.Ints.Get(status.FrameCount),
		resets:  reg.Ints.Get(status.BallResets),
		lastHit: reg.Strings.Get(status.BallLastHit),
	}
}

func (s *DiagnosticsSystem) Priority() int {
	return constants.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update(world *engine.World, dt time.Duration) {
	for _, ev := range s.reader.Read() {
		switch p := ev.Payload.(type) {
		case *events.CollisionPayload:
			s.lastHit.Store(p.Side)
		case *events.BallResetPayload:
			s.resets.Add(1)
		}
	}
	s.frames.Store(world.FrameNumber())
}
