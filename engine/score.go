package engine

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/vi-pong/components"
)

// ScoreResource is the process-wide score pair
// Mutated only by ScoreUpdateSystem; counters never decrease
type ScoreResource struct {
	mu      sync.RWMutex
	player  uint32
	ai      uint32
	version uint64
}

func NewScoreResource() *ScoreResource {
	return &ScoreResource{}
}

// Increment adds one point for side and bumps the change version
func (s *ScoreResource) Increment(side components.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch side {
	case components.SidePlayer:
		s.player++
	case components.SideAI:
		s.ai++
	default:
		return
	}
	s.version++
}

// Get returns the counter for side
func (s *ScoreResource) Get(side components.Side) uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if side == components.SidePlayer {
		return s.player
	}
	return s.ai
}

// Values returns both counters atomically
func (s *ScoreResource) Values() (player, ai uint32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player, s.ai
}

// Version changes on every increment; readers compare it to detect change
func (s *ScoreResource) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *ScoreResource) String() string {
	p, a := s.Values()
	return fmt.Sprintf("Player: %d  Ai: %d", p, a)
}
