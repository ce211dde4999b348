package shared

// Field dimensions in logical units.
const (
	FieldWidth  = 500
	FieldHeight = 400
)

// Point is a position on the field.
type Point struct {
	X, Y int
}

// Add returns p translated by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Side names a player by the edge they defend.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Phase is the lifecycle state of the game loop.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseFrozen
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFrozen:
		return "frozen"
	case PhaseClosed:
		return "closed"
	}
	return "unknown"
}

// Frame contains everything a renderer needs to draw one tick.
type Frame struct {
	BallCenter  Point
	BallRadius  int
	BallColor   Color
	LeftPaddle  Rect
	LeftColor   Color
	RightPaddle Rect
	RightColor  Color
	Scores      [2]int // indexed by Side
	Phase       Phase
}
