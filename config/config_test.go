package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PING_BACKEND", "PING_LOG_LEVEL", "PING_FRAMES", "PING_SNAPSHOT", "PING_FONT"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendSDL || cfg.LogLevel != slog.LevelInfo || cfg.Frames != 600 {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Snapshot != "" || cfg.Font != "" {
		t.Fatalf("defaults = %+v, want empty paths", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PING_BACKEND", "Offscreen")
	t.Setenv("PING_LOG_LEVEL", "debug")
	t.Setenv("PING_FRAMES", "42")
	t.Setenv("PING_SNAPSHOT", "out.png")
	t.Setenv("PING_FONT", "font.ttf")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Backend: BackendOffscreen, LogLevel: slog.LevelDebug, Frames: 42, Snapshot: "out.png", Font: "font.ttf"}
	if cfg != want {
		t.Fatalf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"PING_BACKEND":   "vulkan",
		"PING_LOG_LEVEL": "loud",
		"PING_FRAMES":    "0",
	}
	for k, v := range cases {
		clearEnv(t)
		t.Setenv(k, v)
		if _, err := Load(); err == nil {
			t.Fatalf("Load with %s=%q succeeded", k, v)
		}
	}
}

func TestInitConfigReadsEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is already set.
	os.Unsetenv("PING_FRAMES")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PING_FRAMES=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frames != 7 {
		t.Fatalf("frames = %d, want 7", cfg.Frames)
	}
}

func TestInitConfigSkipsMissingFile(t *testing.T) {
	if err := InitConfig(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("InitConfig with a missing file: %v", err)
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatal("empty name accepted")
	}
	t.Setenv("PING_TEST_VALUE", "")
	if _, err := GetEnvVariable("PING_TEST_VALUE"); err == nil {
		t.Fatal("unset variable accepted")
	}
	t.Setenv("PING_TEST_VALUE", "x")
	if v, err := GetEnvVariable("PING_TEST_VALUE"); err != nil || v != "x" {
		t.Fatalf("GetEnvVariable = %q, %v, want x, nil", v, err)
	}
}
