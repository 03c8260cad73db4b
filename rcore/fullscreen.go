package rcore

import (
	"log/slog"

	"github.com/oliverbestmann/rcore/glm"
)

// ToggleFullscreen switches between windowed and fullscreen mode. The window
// position is stored when entering fullscreen and restored when leaving it.
// Borderless windowed mode is left first, its stored placement becomes the
// windowed placement. If no monitor can be resolved, the window stays in
// windowed mode.
func (c *CoreData) ToggleFullscreen() {
	if c.Platform == nil {
		slog.Warn("Cannot toggle fullscreen without a window")
		return
	}

	screen := c.Window.Screen

	if c.Window.Fullscreen() {
		c.Window.Flags.Clear(FlagFullscreenMode)

		pos := c.Window.Position
		c.Platform.SetWindowMonitor(nil, pos.X, pos.Y, screen.Width, screen.Height, DontCare)

		slog.Debug("Left fullscreen mode", slog.Int("x", pos.X), slog.Int("y", pos.Y))
		return
	}

	if c.Window.Flags.Has(FlagBorderlessWindowedMode) {
		c.Platform.SetWindowDecorated(true)
		c.Window.Flags.Clear(FlagBorderlessWindowedMode)

		c.Window.Position = c.Window.PreviousPosition
		c.Window.Screen = c.Window.PreviousScreen
		screen = c.Window.Screen
	} else {
		// remember where to go back to
		c.Window.Position.X, c.Window.Position.Y = c.Platform.WindowPosition()
	}

	var monitor Monitor

	monitorIndex := c.GetCurrentMonitor()
	if monitors := c.Platform.Monitors(); monitorIndex < len(monitors) {
		monitor = monitors[monitorIndex]
	}

	if monitor == nil {
		slog.Warn("GLFW: Failed to get monitor")

		c.Window.Flags.Clear(FlagFullscreenMode)

		pos := c.Window.Position
		c.Platform.SetWindowMonitor(nil, pos.X, pos.Y, screen.Width, screen.Height, DontCare)
		return
	}

	c.Window.Flags.Set(FlagFullscreenMode)
	c.Platform.SetWindowMonitor(monitor, 0, 0, screen.Width, screen.Height, DontCare)

	slog.Debug("Entered fullscreen mode",
		slog.Int("monitor", monitorIndex),
		slog.String("name", monitor.Name()),
	)
}

// ToggleBorderlessWindowed switches between windowed mode and an undecorated
// window covering the whole current monitor. Fullscreen mode is left first.
func (c *CoreData) ToggleBorderlessWindowed() {
	if c.Platform == nil {
		slog.Warn("Cannot toggle borderless windowed mode without a window")
		return
	}

	wasFullscreen := false
	if c.Window.Fullscreen() {
		c.Window.PreviousPosition = c.Window.Position
		c.ToggleFullscreen()
		wasFullscreen = true
	}

	monitorIndex := c.GetCurrentMonitor()

	monitors := c.Platform.Monitors()
	if monitorIndex >= len(monitors) || monitors[monitorIndex] == nil {
		slog.Warn("GLFW: Failed to find selected monitor")
		return
	}

	monitor := monitors[monitorIndex]

	bounds, ok := monitorBounds(monitor)
	if !ok {
		slog.Warn("GLFW: Failed to find video mode for selected monitor", slog.Int("monitor", monitorIndex))
		return
	}

	if c.Window.Flags.Has(FlagBorderlessWindowedMode) {
		c.Platform.SetWindowDecorated(true)

		pos := c.Window.PreviousPosition
		size := c.Window.PreviousScreen
		c.Platform.SetWindowMonitor(nil, pos.X, pos.Y, size.Width, size.Height, DontCare)

		c.Window.Screen = size
		c.Window.Flags.Clear(FlagBorderlessWindowedMode)
		return
	}

	if !wasFullscreen {
		x, y := c.Platform.WindowPosition()
		c.Window.PreviousPosition = glm.Point{X: x, Y: y}
	}

	c.Window.PreviousScreen = c.Window.Screen

	c.Platform.SetWindowDecorated(false)
	c.Platform.SetWindowMonitor(nil, bounds.X, bounds.Y, bounds.Width, bounds.Height, DontCare)

	c.Window.Screen = glm.Size{Width: bounds.Width, Height: bounds.Height}
	c.Window.Flags.Set(FlagBorderlessWindowedMode)
}
