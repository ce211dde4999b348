package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendSDL       = "sdl"
	BackendOffscreen = "offscreen"
)

// Config holds platform settings. Game rules and field size are fixed
// constants and are not configurable.
type Config struct {
	Backend  string
	LogLevel slog.Level
	Frames   int
	Snapshot string
	Font     string
}

// InitConfig loads environment variables from files (".env" by default).
// Missing files are skipped.
func InitConfig(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		slog.Debug("loaded environment file", slog.String("file", f))
	}
	return nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() (Config, error) {
	cfg := Config{
		Backend:  BackendSDL,
		LogLevel: slog.LevelInfo,
		Frames:   600,
	}

	if v, err := GetEnvVariable("PING_BACKEND"); err == nil {
		switch b := strings.ToLower(v); b {
		case BackendSDL, BackendOffscreen:
			cfg.Backend = b
		default:
			return cfg, fmt.Errorf("PING_BACKEND: unknown backend %q", v)
		}
	}
	if v, err := GetEnvVariable("PING_LOG_LEVEL"); err == nil {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("PING_LOG_LEVEL: %w", err)
		}
	}
	if v, err := GetEnvVariable("PING_FRAMES"); err == nil {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("PING_FRAMES: want a positive integer, got %q", v)
		}
		cfg.Frames = n
	}
	cfg.Snapshot, _ = GetEnvVariable("PING_SNAPSHOT")
	cfg.Font, _ = GetEnvVariable("PING_FONT")

	return cfg, nil
}
