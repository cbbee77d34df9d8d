package constants

import "time"

const (
	// DefaultFPS is one simulation tick per rendered frame
	DefaultFPS = 60

	// FrameUpdateInterval is the frame period at DefaultFPS
	FrameUpdateInterval = time.Second / DefaultFPS

	// KeyHoldWindow is how long a terminal key press counts as held
	// Terminals report presses and auto-repeats, never releases
	KeyHoldWindow = 150 * time.Millisecond

	// DefaultCellWidth and DefaultCellHeight convert terminal cells to arena units
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 20.0

	// EventChannelSize buffers terminal input between the poller and the loop
	EventChannelSize = 256
)
