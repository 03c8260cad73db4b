package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/rcore/glimpse"
	"github.com/oliverbestmann/rcore/orion/config"
	"github.com/oliverbestmann/rcore/rcore"
	"github.com/oliverbestmann/rcore/storage"
)

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	// Config of window and frame loop. Zero fields of a config built in
	// code take their default, start from config.Default() to disable
	// hotkeys or the frame limit.
	Config config.Config
}

func RunGame(opts RunGameOptions) error {
	game := opts.Game
	if game == nil {
		return errors.New("Game must not be nil")
	}

	cfg := withDefaults(opts.Config)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	core := newCore(cfg)

	// create a new window, this attaches the window to the core
	win, err := glimpse.NewWindow(core)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Close()

	core.SetWindowMinSize(cfg.Window.MinWidth, cfg.Window.MinHeight)
	core.SetWindowMaxSize(cfg.Window.MaxWidth, cfg.Window.MaxHeight)

	var store *storage.Store
	if cfg.Storage.RememberPlacement {
		store, err = storage.Open(core.Storage.BasePath)
		if err != nil {
			slog.Warn("Window placement will not be remembered", slog.String("err", err.Error()))
		} else {
			defer store.Close()

			if err := restorePlacement(store, core); err != nil {
				slog.Warn("Failed to restore window placement", slog.String("err", err.Error()))
			}
		}
	}

	currentCore.set(core)
	defer currentCore.reset()

	DebugStats.reset()

	loopState := &LoopState{
		Core:  core,
		Game:  game,
		Input: cfg.Input,
	}

	if err := runLoop(loopState); err != nil {
		return err
	}

	if store != nil {
		if err := savePlacement(store, core); err != nil {
			slog.Warn("Failed to save window placement", slog.String("err", err.Error()))
		}
	}

	return nil
}

func withDefaults(cfg config.Config) config.Config {
	if cfg == (config.Config{}) {
		return config.Default()
	}

	defaults := config.Default()

	if cfg.Window.Width == 0 {
		cfg.Window.Width = defaults.Window.Width
	}

	if cfg.Window.Height == 0 {
		cfg.Window.Height = defaults.Window.Height
	}

	if cfg.Window.Title == "" {
		cfg.Window.Title = defaults.Window.Title
	}

	if cfg.Complete() {
		return cfg
	}

	keys := []struct {
		value    *rcore.Key
		fallback rcore.Key
	}{
		{&cfg.Input.ExitKey, defaults.Input.ExitKey},
		{&cfg.Input.FullscreenKey, defaults.Input.FullscreenKey},
		{&cfg.Input.BorderlessKey, defaults.Input.BorderlessKey},
		{&cfg.Input.DebugKey, defaults.Input.DebugKey},
	}

	for _, key := range keys {
		if *key.value == rcore.KeyNull {
			*key.value = key.fallback
		}
	}

	if cfg.Time.TargetFPS == 0 {
		cfg.Time.TargetFPS = defaults.Time.TargetFPS
	}

	return cfg
}

// newCore creates a core configured by cfg. The core has no window yet.
func newCore(cfg config.Config) *rcore.CoreData {
	core := rcore.NewCoreData(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)

	core.Window.Flags = cfg.Window.Flags
	core.Window.EventWaiting = cfg.Window.EventWaiting

	core.SetExitKey(cfg.Input.ExitKey)
	core.SetTargetFPS(cfg.Time.TargetFPS)

	if cfg.Storage.BasePath != "" {
		core.Storage.BasePath = cfg.Storage.BasePath
	}

	return core
}
