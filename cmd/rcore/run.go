package main

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/rcore/orion"
	"github.com/oliverbestmann/rcore/rcore"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	flagProfile    string
	flagRemember   bool
	flagFullscreen bool
	flagFPS        int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo window",
	Long: `Opens a window and logs the input received in each frame.

Press the exit key (default Escape) to quit, the fullscreen key
(default F11) to toggle fullscreen mode and the borderless key
(default F10) to toggle borderless windowed mode.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile of the run: cpu or mem")
	runCmd.Flags().BoolVar(&flagRemember, "remember", false, "Remember the window placement between runs")
	runCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Target frame rate, overrides the config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagRemember {
		cfg.Storage.RememberPlacement = true
	}

	if flagFullscreen {
		cfg.Window.Flags.Set(rcore.FlagFullscreenMode)
	}

	if cmd.Flags().Changed("fps") {
		cfg.Time.TargetFPS = flagFPS
	}

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q, expected cpu or mem", flagProfile)
	}

	return orion.RunGame(orion.RunGameOptions{
		Game:   &demoGame{},
		Config: cfg,
	})
}

// demoGame logs the input of every frame
type demoGame struct {
	monitor int
}

func (g *demoGame) Initialize() error {
	core := orion.Core()

	g.monitor = core.GetCurrentMonitor()

	slog.Info("Demo started",
		slog.Int("monitor", g.monitor),
		slog.String("monitorName", core.GetMonitorName(g.monitor)),
		slog.Int("renderWidth", core.GetRenderWidth()),
		slog.Int("renderHeight", core.GetRenderHeight()),
	)

	return nil
}

func (g *demoGame) Update() error {
	core := orion.Core()

	for key := core.GetKeyPressed(); key != rcore.KeyNull; key = core.GetKeyPressed() {
		slog.Info("Key pressed", slog.String("key", key.String()))
	}

	var text []rune
	for char := core.GetCharPressed(); char != 0; char = core.GetCharPressed() {
		text = append(text, char)
	}

	if len(text) > 0 {
		slog.Info("Text entered", slog.String("text", string(text)))
	}

	for button := rcore.MouseButtonLeft; button <= rcore.MouseButtonBack; button++ {
		if core.IsMouseButtonPressed(button) {
			pos := orion.MousePosition()
			slog.Info("Mouse button pressed",
				slog.String("button", button.String()),
				slog.Float64("x", float64(pos.X())),
				slog.Float64("y", float64(pos.Y())),
			)
		}
	}

	if wheel := core.GetMouseWheelMove(); wheel != 0 {
		slog.Debug("Mouse wheel moved", slog.Float64("move", float64(wheel)))
	}

	if button := core.GetGamepadButtonPressed(); button != rcore.GamepadButtonUnknown && core.IsGamepadButtonPressed(0, button) {
		slog.Info("Gamepad button pressed",
			slog.String("gamepad", core.GetGamepadName(0)),
			slog.String("button", button.String()),
		)
	}

	if core.IsFileDropped() {
		for _, path := range core.LoadDroppedFiles() {
			slog.Info("File dropped", slog.String("path", path))
		}

		core.ClearDroppedFiles()
	}

	if core.IsWindowResized() {
		slog.Info("Window resized",
			slog.Int("width", core.GetScreenWidth()),
			slog.Int("height", core.GetScreenHeight()),
		)
	}

	if monitor := core.GetCurrentMonitor(); monitor != g.monitor {
		g.monitor = monitor
		slog.Info("Window moved to monitor",
			slog.Int("monitor", monitor),
			slog.String("name", core.GetMonitorName(monitor)),
		)
	}

	if core.Time.FrameCounter%300 == 0 {
		slog.Debug("Frame stats",
			slog.Int("fps", core.GetFPS()),
			slog.Float64("frameTime", float64(core.GetFrameTime())),
			slog.Float64("time", core.GetTime()),
		)
	}

	return nil
}
