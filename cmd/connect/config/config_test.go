package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/connect4/cmd/connect/config"
	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	want := config.Config{
		First:       "X",
		UI:          config.UIConsole,
		Color:       "auto",
		AudioFolder: "audio",
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	data := "CONNECT4_PLAYER_X=ai\nCONNECT4_SEED=7\nCONNECT4_SOUND=true\n"
	if err := os.WriteFile(envFile, []byte(data), 0644); err != nil {
		t.Fatalf("write env file: %s", err)
	}

	// godotenv never overrides variables that are already set.
	t.Setenv("CONNECT4_PLAYER_X", "human")
	t.Setenv("CONNECT4_SEED", "")
	t.Setenv("CONNECT4_SOUND", "")
	os.Unsetenv("CONNECT4_SEED")
	os.Unsetenv("CONNECT4_SOUND")

	cfg := config.Load(envFile)

	if cfg.PlayerX != "human" {
		t.Fatalf("expected the environment to win, got %q", cfg.PlayerX)
	}

	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Seed)
	}

	if !cfg.Sound {
		t.Fatalf("expected sound on")
	}
}

func TestGetEnvMalformed(t *testing.T) {
	t.Setenv("CONNECT4_TEST_INT", "seven")
	t.Setenv("CONNECT4_TEST_BOOL", "maybe")

	if got := config.GetEnvAsInt64("CONNECT4_TEST_INT", 3); got != 3 {
		t.Fatalf("expected default 3, got %d", got)
	}

	if got := config.GetEnvAsBool("CONNECT4_TEST_BOOL", true); !got {
		t.Fatalf("expected default true")
	}
}
