package game

import "github.com/NegarMirgati/Ping/shared"

const (
	FPS           = 60
	MaxScore      = 11
	PaddleSpeed   = 10
	PaddleWidth   = 10
	PaddleHeight  = 50
	PaddleTop     = 180
	PaddleOffset  = 100 // distance from each side edge to the paddle
	BallRadius    = 4
	BallStartX    = 50
	BallStartY    = 50
	BallVelocityX = 4
	BallVelocityY = 1
	ScoreFontSize = 50
	WindowTitle   = "Pong"
)

var (
	LeftPaddleColor  = shared.Red
	RightPaddleColor = shared.Yellow
	BallColor        = shared.Foreground
)
