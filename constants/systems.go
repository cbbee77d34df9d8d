package constants

// System priorities, lower runs first
// Order: input, paddles, ball, projection, collision, scoring, score+reset, scoreboard
const (
	PriorityInput        = 10
	PriorityPaddleMotion = 20
	PriorityBallMotion   = 30
	PriorityProjection   = 40
	PriorityCollision    = 50
	PriorityScoreDetect  = 60
	PriorityScoreUpdate  = 70 // After ScoreDetect
	PriorityBallReset    = 71 // After ScoreDetect, independent of ScoreUpdate
	PriorityScoreboard   = 80 // After ScoreUpdate
	PriorityDiagnostics  = 900
)
