package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/rcore/orion/config"
	"github.com/oliverbestmann/rcore/rcore"
)

type LoopState struct {
	Core        *rcore.CoreData
	Game        Game
	Input       config.Input
	Initialized bool

	layout layoutState
}

func loopOnce(loopState *LoopState) error {
	core := loopState.Core

	core.BeginFrame()

	if core.IsWindowResized() {
		slog.Debug("Window resized",
			slog.Int("width", core.GetScreenWidth()),
			slog.Int("height", core.GetScreenHeight()),
		)
	}

	handleHotkeys(core, loopState.Input)

	if layouter, ok := loopState.Game.(Layouter); ok {
		updateLayout(core, layouter, &loopState.layout)
	}

	// run game.Initialize and game.Update
	if err := performGameUpdate(loopState); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	// waits for the target frame time and collects input for the next frame
	core.EndFrame()

	DebugStats.recordFrame(core)

	return nil
}

func handleHotkeys(core *rcore.CoreData, input config.Input) {
	if input.FullscreenKey != rcore.KeyNull && core.IsKeyPressed(input.FullscreenKey) {
		core.ToggleFullscreen()
	}

	if input.BorderlessKey != rcore.KeyNull && core.IsKeyPressed(input.BorderlessKey) {
		core.ToggleBorderlessWindowed()
	}

	if input.DebugKey != rcore.KeyNull && core.IsKeyPressed(input.DebugKey) {
		DebugStats.report()
	}
}

func performGameUpdate(loopState *LoopState) error {
	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := loopState.Game.Update(); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

// runLoop runs frames until the window should close
func runLoop(loopState *LoopState) error {
	for !loopState.Core.WindowShouldClose() {
		if err := loopOnce(loopState); err != nil {
			return err
		}
	}

	slog.Info("Window should close, leaving frame loop",
		slog.Uint64("frames", uint64(loopState.Core.Time.FrameCounter)),
	)

	return nil
}
