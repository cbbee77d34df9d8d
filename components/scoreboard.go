package components

import "github.com/lixenwraith/vi-pong/host"

// ScoreboardComponent tags a score label with the side it displays
type ScoreboardComponent struct {
	Side Side
}

// LabelComponent owns the backend label handle
type LabelComponent struct {
	Label host.Label
}
