package components

// BallComponent tags the ball (singleton)
type BallComponent struct{}
