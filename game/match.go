package game

import (
	"log/slog"

	"github.com/NegarMirgati/Ping/shared"
)

// Match holds the score of both players and whether play continues.
type Match struct {
	Scores   [2]int // indexed by shared.Side
	MaxScore int
	Continue bool
}

// NewMatch starts a match played to maxScore points.
func NewMatch(maxScore int) *Match {
	return &Match{MaxScore: maxScore, Continue: true}
}

// RecordEdge credits the point for a ball that reached edge. The player on
// the opposite side scores.
func (m *Match) RecordEdge(edge Edge) {
	var side shared.Side
	switch edge {
	case EdgeLeft:
		side = shared.SideRight
	case EdgeRight:
		side = shared.SideLeft
	default:
		return
	}
	m.Scores[side]++
	Logger().Debug("point scored",
		slog.String("side", side.String()),
		slog.Int("left", m.Scores[shared.SideLeft]),
		slog.Int("right", m.Scores[shared.SideRight]))
	m.decideContinue()
}

// decideContinue stops the match once a score hits MaxScore. It never
// restarts a finished match.
func (m *Match) decideContinue() {
	for _, s := range m.Scores {
		if s == m.MaxScore {
			m.Continue = false
		}
	}
}

// Winner returns the side that reached MaxScore. ok is false while the
// match is still being played.
func (m *Match) Winner() (side shared.Side, ok bool) {
	if m.Continue {
		return 0, false
	}
	if m.Scores[shared.SideLeft] == m.MaxScore {
		return shared.SideLeft, true
	}
	return shared.SideRight, true
}
