package game

import (
	"strconv"

	"github.com/NegarMirgati/Ping/shared"
)

// Draw renders f onto s and presents it. The left player's score sits in
// the top-left corner and the right player's in the top-right.
func Draw(s Surface, f shared.Frame) {
	s.Clear(shared.Background)
	drawScores(s, f.Scores)
	s.FillCircle(f.BallCenter, f.BallRadius, f.BallColor)
	s.FillRect(f.RightPaddle, f.RightColor)
	s.FillRect(f.LeftPaddle, f.LeftColor)
	s.Present()
}

func drawScores(s Surface, scores [2]int) {
	w, _ := s.Size()

	left := strconv.Itoa(scores[shared.SideLeft])
	s.DrawText(left, shared.Point{X: 0, Y: 0}, shared.Foreground, shared.Background)

	right := strconv.Itoa(scores[shared.SideRight])
	tw, _ := s.TextSize(right)
	s.DrawText(right, shared.Point{X: w - tw, Y: 0}, shared.Foreground, shared.Background)
}
