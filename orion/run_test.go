package orion

import (
	"testing"

	"github.com/oliverbestmann/rcore/orion/config"
	"github.com/oliverbestmann/rcore/rcore"
)

func TestRunGameRequiresGame(t *testing.T) {
	if err := RunGame(RunGameOptions{}); err == nil {
		t.Fatalf("expected error without a game")
	}
}

func TestWithDefaults(t *testing.T) {
	if withDefaults(config.Config{}) != config.Default() {
		t.Fatalf("expected the default config for an empty config")
	}

	cfg := withDefaults(config.Config{Time: config.Time{TargetFPS: 30}})

	if cfg.Window.Width != 1000 || cfg.Window.Height != 600 || cfg.Window.Title != "Orion" {
		t.Fatalf("expected default window, got %+v", cfg.Window)
	}

	if cfg.Time.TargetFPS != 30 {
		t.Fatalf("expected target fps to be kept, got %d", cfg.Time.TargetFPS)
	}
}

func TestWithDefaultsFillsHotkeys(t *testing.T) {
	cfg := withDefaults(config.Config{
		Window: config.Window{Title: "Partial"},
		Input:  config.Input{DebugKey: rcore.KeyF1},
	})

	input := cfg.Input
	if input.ExitKey != rcore.KeyEscape || input.FullscreenKey != rcore.KeyF11 || input.BorderlessKey != rcore.KeyF10 {
		t.Fatalf("expected default hotkeys, got %+v", input)
	}

	if input.DebugKey != rcore.KeyF1 {
		t.Fatalf("expected debug key to be kept, got %s", input.DebugKey)
	}

	if cfg.Time.TargetFPS != 60 {
		t.Fatalf("expected default target fps, got %d", cfg.Time.TargetFPS)
	}

	if cfg.Window.Title != "Partial" {
		t.Fatalf("expected title to be kept, got %q", cfg.Window.Title)
	}
}

func TestWithDefaultsKeepsCompleteConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("input:\n  exit_key: Null\ntime:\n  target_fps: 0\n"))
	if err != nil {
		t.Fatalf("parse config: %s", err)
	}

	cfg = withDefaults(cfg)

	if cfg.Input.ExitKey != rcore.KeyNull {
		t.Fatalf("expected exit key to stay disabled, got %s", cfg.Input.ExitKey)
	}

	if cfg.Time.TargetFPS != 0 {
		t.Fatalf("expected unlimited frame rate, got %d", cfg.Time.TargetFPS)
	}
}

func TestNewCore(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Flags = rcore.FlagWindowHighDPI
	cfg.Window.EventWaiting = true
	cfg.Input.ExitKey = rcore.KeyQ
	cfg.Time.TargetFPS = 50
	cfg.Storage.BasePath = t.TempDir()

	core := newCore(cfg)

	if core.Window.Title != "Orion" || core.GetScreenWidth() != 1000 || core.GetScreenHeight() != 600 {
		t.Fatalf("unexpected window %q %dx%d", core.Window.Title, core.GetScreenWidth(), core.GetScreenHeight())
	}

	if !core.IsWindowState(rcore.FlagWindowHighDPI) || !core.Window.EventWaiting {
		t.Fatalf("expected flags and event waiting to be applied")
	}

	if core.Input.Keyboard.ExitKey != rcore.KeyQ {
		t.Fatalf("expected exit key Q, got %s", core.Input.Keyboard.ExitKey)
	}

	if core.Time.Target != 1.0/50 {
		t.Fatalf("unexpected target frame time %f", core.Time.Target)
	}

	if core.Storage.BasePath != cfg.Storage.BasePath {
		t.Fatalf("unexpected base path %q", core.Storage.BasePath)
	}

	if core.IsWindowReady() {
		t.Fatalf("expected core without window not to be ready")
	}
}
