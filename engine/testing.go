package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/host"
)

// TestEpoch is the fixed start time of test contexts
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGameContext creates a context on a headless host with a mock clock and fixed seed
// No entities or systems are added
func NewTestGameContext(width, height float64) (*GameContext, *host.Headless, *MockTimeProvider) {
	h := host.NewHeadless(width, height)
	tp := NewMockTimeProvider(TestEpoch)
	ctx := NewGameContext(h, 12345, tp)
	return ctx, h, tp
}
