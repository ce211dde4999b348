package game

import (
	"testing"

	"github.com/NegarMirgati/Ping/shared"
)

func TestMatchScoresOppositeSide(t *testing.T) {
	m := NewMatch(MaxScore)

	m.RecordEdge(EdgeLeft)
	if m.Scores != [2]int{0, 1} {
		t.Fatalf("after left edge scores = %v, want [0 1]", m.Scores)
	}
	m.RecordEdge(EdgeRight)
	if m.Scores != [2]int{1, 1} {
		t.Fatalf("after right edge scores = %v, want [1 1]", m.Scores)
	}
	m.RecordEdge(EdgeNone)
	if m.Scores != [2]int{1, 1} {
		t.Fatalf("after no edge scores = %v, want [1 1]", m.Scores)
	}
}

func TestMatchScoreSumGrowsByOnePerEdge(t *testing.T) {
	m := NewMatch(1000)
	edges := []Edge{EdgeLeft, EdgeNone, EdgeRight, EdgeRight, EdgeNone, EdgeLeft, EdgeLeft}
	sum := 0
	for i, e := range edges {
		m.RecordEdge(e)
		if e != EdgeNone {
			sum++
		}
		if got := m.Scores[0] + m.Scores[1]; got != sum {
			t.Fatalf("after %d edges score sum = %d, want %d", i+1, got, sum)
		}
	}
}

func TestMatchStopsAtMaxScore(t *testing.T) {
	m := NewMatch(11)
	for i := 0; i < 10; i++ {
		m.RecordEdge(EdgeRight)
	}
	if !m.Continue {
		t.Fatalf("continue = false at %v, want true", m.Scores)
	}
	if _, ok := m.Winner(); ok {
		t.Fatal("winner reported before max score")
	}

	m.RecordEdge(EdgeRight)
	if m.Continue {
		t.Fatalf("continue = true at %v, want false", m.Scores)
	}
	side, ok := m.Winner()
	if !ok || side != shared.SideLeft {
		t.Fatalf("winner = %v, %v, want left, true", side, ok)
	}

	m.RecordEdge(EdgeLeft)
	m.RecordEdge(EdgeRight)
	if m.Continue {
		t.Fatal("continue became true again after the match ended")
	}
}

func TestMatchRightPlayerWins(t *testing.T) {
	m := NewMatch(3)
	for i := 0; i < 3; i++ {
		m.RecordEdge(EdgeLeft)
	}
	side, ok := m.Winner()
	if !ok || side != shared.SideRight {
		t.Fatalf("winner = %v, %v, want right, true", side, ok)
	}
}
