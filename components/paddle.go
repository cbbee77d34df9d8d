package components

import "github.com/lixenwraith/vi-pong/host"

// Side distinguishes the two paddles and the two score counters
type Side uint8

const (
	SidePlayer Side = iota // left paddle
	SideAI                 // right paddle, still human-controlled
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "Ai"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

// PaddleComponent tags a paddle and records which side owns it
type PaddleComponent struct {
	Side Side
}

// ControlsComponent binds a paddle to its up/down keys
type ControlsComponent struct {
	Up   host.Key
	Down host.Key
}
