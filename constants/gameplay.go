package constants

import "image/color"

// Arena geometry, in arena units
const (
	// BallRadius is stored in ShapeComponent.X for the ball
	BallRadius = 5.0

	PaddleWidth  = 10.0
	PaddleHeight = 50.0

	// PaddlePadding is the gap between a paddle's center and its side boundary
	PaddlePadding = 50.0

	GutterHeight = 20.0
)

// Motion
const (
	// PaddleSpeed is the per-frame paddle displacement while a key is held
	PaddleSpeed = 5.0

	// BallInitialVX/VY is the first serve, before any point is scored
	BallInitialVX = 5.0
	BallInitialVY = 0.0
)

// Serve after a point
const (
	// ServeYSpread is the width of the uniform base range for the vertical component,
	// centered on zero
	ServeYSpread = 3.0

	// ServeYPush moves the base value away from zero along its own sign,
	// so the serve is never flat: |vy| lies in [ServeYPush, ServeYPush+ServeYSpread/2]
	ServeYPush = 4.0

	// ServeXMin and ServeXRange bound the horizontal speed: [ServeXMin, ServeXMin+ServeXRange)
	ServeXMin   = 4.0
	ServeXRange = 3.0
)

// Scoreboard placement, screen space from the top-left
const (
	ScoreboardTop        = 20
	ScoreboardPlayerLeft = 10
	ScoreboardAILeft     = 40
)

// Asset colors
var (
	BallColor   = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	PaddleColor = color.RGBA{R: 200, G: 100, B: 50, A: 255}
	GutterColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	TextColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// BackgroundColor is the arena fill (Tokyo Night)
	BackgroundColor = color.RGBA{R: 26, G: 27, B: 38, A: 255}
)
