package game

import (
	"log/slog"

	"github.com/NegarMirgati/Ping/shared"
)

// Game represents the game instance. It owns the ball, both paddles and
// the match, and drives them from a single loop.
type Game struct {
	App   *Application
	Ball  *Ball
	Left  *Paddle
	Right *Paddle
	Match *Match

	phase  shared.Phase
	frames int
}

// NewGame lays out a fresh match on the application's surface.
func NewGame(app *Application) *Game {
	w, h := app.Surface.Size()
	return &Game{
		App:   app,
		Ball:  NewBall(shared.Point{X: BallStartX, Y: BallStartY}, shared.Point{X: BallVelocityX, Y: BallVelocityY}, BallRadius, w, h, BallColor),
		Left:  NewPaddle(PaddleOffset, PaddleTop, PaddleWidth, PaddleHeight, h, LeftPaddleColor),
		Right: NewPaddle(w-PaddleOffset-PaddleWidth, PaddleTop, PaddleWidth, PaddleHeight, h, RightPaddleColor),
		Match: NewMatch(MaxScore),
		phase: shared.PhaseRunning,
	}
}

// Run loops until a close request arrives. Each iteration runs one Step
// and then waits for the frame clock.
func (g *Game) Run() {
	Logger().Info("game started", slog.Int("fps", FPS), slog.Int("max_score", g.Match.MaxScore))
	for {
		g.Step()
		if g.phase == shared.PhaseClosed {
			return
		}
		g.App.Clock.Tick()
	}
}

// Step runs one tick without waiting: drain input, draw, and advance the
// world if the match is still on.
func (g *Game) Step() {
	if g.phase == shared.PhaseClosed {
		return
	}
	g.handleEvents()
	if g.phase == shared.PhaseClosed {
		return
	}
	g.Render()
	if g.phase == shared.PhaseRunning {
		g.Update()
		if !g.Match.Continue {
			g.setPhase(shared.PhaseFrozen)
		}
	}
}

func (g *Game) handleEvents() {
	for {
		ev, ok := g.App.Input.PollEvent()
		if !ok {
			return
		}
		switch ev.Type {
		case shared.EventQuit:
			g.setPhase(shared.PhaseClosed)
		case shared.EventKeyDown:
			g.handleKeyDown(ev.Key)
		case shared.EventKeyUp:
			g.handleKeyUp(ev.Key)
		}
	}
}

// Update advances the world one frame. Paddles move before the ball so the
// ball collides against their current positions.
func (g *Game) Update() {
	g.Left.Move()
	g.Right.Move()
	edge := g.Ball.Move(g.Right, g.Left)
	g.Match.RecordEdge(edge)
	g.frames++
}

// Render draws the current state and presents it.
func (g *Game) Render() {
	Draw(g.App.Surface, g.Frame())
}

func (g *Game) setPhase(p shared.Phase) {
	if g.phase == p {
		return
	}
	attrs := []any{slog.String("from", g.phase.String()), slog.String("to", p.String()), slog.Int("frame", g.frames)}
	if side, ok := g.Match.Winner(); ok && p == shared.PhaseFrozen {
		attrs = append(attrs, slog.String("winner", side.String()))
	}
	Logger().Info("phase changed", attrs...)
	g.phase = p
}

// Phase returns the loop state.
func (g *Game) Phase() shared.Phase { return g.phase }

// Frames returns how many world updates have run.
func (g *Game) Frames() int { return g.frames }

// Scores returns both scores indexed by shared.Side.
func (g *Game) Scores() [2]int { return g.Match.Scores }

// Winner returns the side that won. ok is false until the match is over.
func (g *Game) Winner() (shared.Side, bool) { return g.Match.Winner() }

// Frame returns a snapshot of everything that is drawn.
func (g *Game) Frame() shared.Frame {
	return shared.Frame{
		BallCenter:  g.Ball.Center,
		BallRadius:  g.Ball.Radius,
		BallColor:   g.Ball.Color,
		LeftPaddle:  g.Left.Rect,
		LeftColor:   g.Left.Color,
		RightPaddle: g.Right.Rect,
		RightColor:  g.Right.Color,
		Scores:      g.Match.Scores,
		Phase:       g.phase,
	}
}
