package systems

import (
	"strconv"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// ScoreboardSystem rewrites the score labels when the score changed since its last check
// The first run always syncs, matching a freshly inserted resource
type ScoreboardSystem struct {
	engine.SystemBase
	score       *engine.ScoreResource
	lastVersion uint64
	synced      bool
}

func NewScoreboardSystem(world *engine.World, score *engine.ScoreResource) *ScoreboardSystem {
	return &ScoreboardSystem{
		SystemBase: engine.NewSystemBase(world),
		score:      score,
	}
}

func (s *ScoreboardSystem) Priority() int {
	return constants.PriorityScoreboard
}

func (s *ScoreboardSystem) Update(world *engine.World, dt time.Duration) {
	version := s.score.Version()
	if s.synced && version == s.lastVersion {
		return
	}

	c := s.Component
	for _, e := range world.Query().With(c.Scoreboards).With(c.Labels).Execute() {
		board, _ := c.Scoreboards.Get(e)
		label, _ := c.Labels.Get(e)
		if label.Label == nil {
			continue
		}
		label.Label.SetText(strconv.FormatUint(uint64(s.score.Get(board.Side)), 10))
	}

	s.lastVersion = version
	s.synced = true
}
