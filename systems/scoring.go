package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ScoreDetectSystem emits one Scored event when the ball passes a side boundary
// Past +W/2 the Player scores; past -W/2 the Ai side scores
type ScoreDetectSystem struct {
	engine.SystemBase
	surface     host.Surface
	missingBall *atomic.Int64
	scoreEvents *atomic.Int64
}

func NewScoreDetectSystem(world *engine.World, surface host.Surface) *ScoreDetectSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &ScoreDetectSystem{
		SystemBase:  engine.NewSystemBase(world),
		surface:     surface,
		missingBall: reg.Ints.Get(status.FrameMissingBall),
		scoreEvents: reg.Ints.Get(status.ScoreEvents),
	}
}

func (s *ScoreDetectSystem) Priority() int {
	return constants.PriorityScoreDetect
}

func (s *ScoreDetectSystem) Update(world *engine.World, dt time.Duration) {
	width, _, ok := s.surface.Size()
	if !ok {
		log.Printf("score detect: no surface found")
		return
	}

	c := s.Component
	ball, ok := engine.Single(c.Balls)
	if !ok {
		s.missingBall.Add(1)
		log.Printf("score detect: no ball found")
		return
	}
	pos, ok := c.Positions.Get(ball)
	if !ok {
		return
	}

	scorer, scored := DetectScorer(pos.X, width)
	if !scored {
		return
	}
	s.scoreEvents.Add(1)
	world.PushEvent(events.EventScored, &events.ScoredPayload{Scorer: scorer})
}

// DetectScorer classifies the ball's x against the half-width boundaries
// Exactly on a boundary is still in play
func DetectScorer(x, arenaWidth float64) (components.Side, bool) {
	half := arenaWidth / 2
	switch {
	case x > half:
		return components.SidePlayer, true
	case x < -half:
		return components.SideAI, true
	default:
		return 0, false
	}
}

// ScoreUpdateSystem applies Scored events to the injected score
type ScoreUpdateSystem struct {
	score  *engine.ScoreResource
	reader *events.Reader

	player *atomic.Int64
	ai     *atomic.Int64
	last   *status.AtomicString
}

func NewScoreUpdateSystem(world *engine.World, score *engine.ScoreResource) *ScoreUpdateSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &ScoreUpdateSystem{
		score:  score,
		reader: events.NewReader(world.Events, events.EventScored),
		player: reg.Ints.Get(status.ScorePlayer),
		ai:     reg.Ints.Get(status.ScoreAI),
		last:   reg.Strings.Get(status.ScoreLastScorer),
	}
}

func (s *ScoreUpdateSystem) Priority() int {
	return constants.PriorityScoreUpdate
}

func (s *ScoreUpdateSystem) Update(world *engine.World, dt time.Duration) {
	for _, ev := range s.reader.Read() {
		payload, ok := ev.Payload.(*events.ScoredPayload)
		if !ok {
			continue
		}
		s.score.Increment(payload.Scorer)
		s.last.Store(payload.Scorer.String())
		log.Printf("scored: %s (frame %d) %s", payload.Scorer, ev.Frame, s.score)
	}

	p, a := s.score.Values()
	s.player.Store(int64(p))
	s.ai.Store(int64(a))
}

// BallResetSystem re-serves the ball from the center after every Scored event
// The serve heads toward the side that just scored
type BallResetSystem struct {
	engine.SystemBase
	reader *events.Reader
	rng    *vmath.FastRand
}

func NewBallResetSystem(world *engine.World, rng *vmath.FastRand) *BallResetSystem {
	return &BallResetSystem{
		SystemBase: engine.NewSystemBase(world),
		reader:     events.NewReader(world.Events, events.EventScored),
		rng:        rng,
	}
}

func (s *BallResetSystem) Priority() int {
	return constants.PriorityBallReset
}

func (s *BallResetSystem) Update(world *engine.World, dt time.Duration) {
	c := s.Component
	for _, ev := range s.reader.Read() {
		payload, ok := ev.Payload.(*events.ScoredPayload)
		if !ok {
			continue
		}
		ball, ok := engine.Single(c.Balls)
		if !ok {
			continue
		}

		serve := Serve(s.rng, payload.Scorer)
		c.Positions.Add(ball, components.PositionComponent{})
		c.Velocities.Add(ball, components.VelocityComponent{Vec2: serve})
		world.PushEvent(events.EventBallReset, &events.BallResetPayload{Velocity: serve})
	}
}

// Serve draws a new ball velocity
//
// vy starts uniform in [-ServeYSpread/2, ServeYSpread/2) and is pushed ServeYPush further
// from zero along its own sign. |vx| is uniform in [ServeXMin, ServeXMin+ServeXRange);
// negative when the Player scored, positive when the Ai side scored.
func Serve(rng *vmath.FastRand, scorer components.Side) vmath.Vec2 {
	vy := (rng.Float64() - 0.5) * constants.ServeYSpread
	vy += vmath.Signum(vy) * constants.ServeYPush

	vxMag := constants.ServeXMin + rng.Float64()*constants.ServeXRange

	dir := 1.0
	if scorer == components.SidePlayer {
		dir = -1.0
	}
	return vmath.V2(dir*vxMag, vy)
}
