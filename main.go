package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/NegarMirgati/Ping/config"
	"github.com/NegarMirgati/Ping/engine"
	"github.com/NegarMirgati/Ping/game"
	"github.com/NegarMirgati/Ping/offscreen"
	"github.com/NegarMirgati/Ping/shared"
)

func init() {
	// SDL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Config initialization failed: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	game.SetLogger(logger)

	var g *game.Game
	switch cfg.Backend {
	case config.BackendOffscreen:
		g = runOffscreen(cfg)
	default:
		g = runSDL(cfg)
	}

	scores := g.Scores()
	attrs := []any{slog.Int("left", scores[shared.SideLeft]), slog.Int("right", scores[shared.SideRight]), slog.Int("frames", g.Frames())}
	if side, ok := g.Winner(); ok {
		attrs = append(attrs, slog.String("winner", side.String()))
	}
	slog.Info("game closed", attrs...)
}

func runSDL(cfg config.Config) *game.Game {
	eng, err := engine.NewEngine(game.WindowTitle, shared.FieldWidth, shared.FieldHeight)
	if err != nil {
		log.Fatalf("Engine initialization failed: %v", err)
	}
	defer eng.Shutdown()

	if err := eng.OpenFont(cfg.Font, game.ScoreFontSize); err != nil {
		log.Fatalf("Failed to open font: %v", err)
	}

	app := &game.Application{
		Input:   eng,
		Clock:   engine.NewClock(game.FPS),
		Surface: eng,
	}
	g := game.NewGame(app)
	g.Run()
	return g
}

func runOffscreen(cfg config.Config) *game.Game {
	canvas, err := offscreen.NewCanvas(shared.FieldWidth, shared.FieldHeight, cfg.Font, game.ScoreFontSize)
	if err != nil {
		log.Fatalf("Canvas initialization failed: %v", err)
	}
	defer canvas.Close()

	script := offscreen.NewScript(cfg.Frames)
	app := &game.Application{
		Input:   script,
		Clock:   script,
		Surface: canvas,
	}
	g := game.NewGame(app)
	g.Run()

	if cfg.Snapshot != "" {
		if err := canvas.SavePNG(cfg.Snapshot); err != nil {
			slog.Error("snapshot failed", slog.Any("err", err))
		} else {
			slog.Info("snapshot written", slog.String("path", cfg.Snapshot), slog.Int("presents", canvas.Presents()))
		}
	}
	return g
}
