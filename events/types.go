package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventScored signals the ball left the arena past a side boundary
	// Trigger: ScoreDetectSystem, at most once per frame
	// Consumer: ScoreUpdateSystem, BallResetSystem | Payload: *ScoredPayload
	EventScored EventType = iota

	// EventBallReset signals the ball was re-served from the center
	// Trigger: BallResetSystem | Payload: *BallResetPayload
	// Consumer: none in the core (logging, headless report)
	EventBallReset

	// EventCollision signals the ball was reflected by an obstacle
	// Trigger: CollisionSystem, once per obstacle hit | Payload: *CollisionPayload
	// Consumer: DiagnosticsSystem
	EventCollision
)

func (e EventType) String() string {
	switch e {
	case EventScored:
		return "Scored"
	case EventBallReset:
		return "BallReset"
	case EventCollision:
		return "Collision"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
