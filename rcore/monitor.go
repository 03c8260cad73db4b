package rcore

import (
	"log/slog"

	"github.com/oliverbestmann/rcore/glm"
)

// GetCurrentMonitor returns the index of the monitor the window is on. In
// fullscreen mode this is the monitor the window is assigned to, in windowed
// mode the first monitor containing the top left corner of the window.
// Falls back to the first monitor if no monitor matches.
func (c *CoreData) GetCurrentMonitor() int {
	if c.Platform == nil {
		return 0
	}

	monitors := c.Platform.Monitors()
	if len(monitors) == 0 {
		return 0
	}

	if c.Window.Fullscreen() {
		current := c.Platform.WindowMonitor()
		if current == nil {
			return 0
		}

		for idx, monitor := range monitors {
			if monitor == current {
				return idx
			}
		}

		trace("Fullscreen monitor not found in monitor list")
		return 0
	}

	x, y := c.Platform.WindowPosition()

	for idx, monitor := range monitors {
		bounds, ok := monitorBounds(monitor)
		if !ok {
			trace("GLFW: Failed to find video mode for selected monitor", slog.Int("monitor", idx))
			continue
		}

		if bounds.Contains(x, y) {
			return idx
		}
	}

	return 0
}

func monitorBounds(monitor Monitor) (glm.Recti, bool) {
	if monitor == nil {
		return glm.Recti{}, false
	}

	mode, ok := monitor.VideoMode()
	if !ok {
		return glm.Recti{}, false
	}

	x, y := monitor.Position()
	return glm.RectOf(x, y, mode.Width, mode.Height), true
}

func (c *CoreData) GetMonitorCount() int {
	if c.Platform == nil {
		return 0
	}

	return len(c.Platform.Monitors())
}

// monitorAt returns the monitor with the given index or nil,
// logging a warning if the index is out of range.
func (c *CoreData) monitorAt(index int) Monitor {
	if c.Platform == nil {
		return nil
	}

	monitors := c.Platform.Monitors()
	if index < 0 || index >= len(monitors) || monitors[index] == nil {
		slog.Warn("GLFW: Failed to find selected monitor", slog.Int("monitor", index))
		return nil
	}

	return monitors[index]
}

func (c *CoreData) GetMonitorName(index int) string {
	monitor := c.monitorAt(index)
	if monitor == nil {
		return ""
	}

	return monitor.Name()
}

func (c *CoreData) GetMonitorPosition(index int) glm.Point {
	monitor := c.monitorAt(index)
	if monitor == nil {
		return glm.Point{}
	}

	x, y := monitor.Position()
	return glm.Point{X: x, Y: y}
}

func (c *CoreData) monitorVideoMode(index int) VideoMode {
	monitor := c.monitorAt(index)
	if monitor == nil {
		return VideoMode{}
	}

	mode, ok := monitor.VideoMode()
	if !ok {
		slog.Warn("GLFW: Failed to find video mode for selected monitor", slog.Int("monitor", index))
	}

	return mode
}

func (c *CoreData) GetMonitorWidth(index int) int {
	return c.monitorVideoMode(index).Width
}

func (c *CoreData) GetMonitorHeight(index int) int {
	return c.monitorVideoMode(index).Height
}

func (c *CoreData) GetMonitorRefreshRate(index int) int {
	return c.monitorVideoMode(index).RefreshRate
}

// GetMonitorPhysicalWidth returns the physical width of the monitor in millimetres
func (c *CoreData) GetMonitorPhysicalWidth(index int) int {
	monitor := c.monitorAt(index)
	if monitor == nil {
		return 0
	}

	width, _ := monitor.PhysicalSize()
	return width
}

// GetMonitorPhysicalHeight returns the physical height of the monitor in millimetres
func (c *CoreData) GetMonitorPhysicalHeight(index int) int {
	monitor := c.monitorAt(index)
	if monitor == nil {
		return 0
	}

	_, height := monitor.PhysicalSize()
	return height
}

// SetWindowMonitor moves the window to the monitor with the given index. In
// fullscreen mode the window is assigned to the monitor, in windowed mode
// it is placed at the monitors top left corner.
func (c *CoreData) SetWindowMonitor(index int) {
	monitor := c.monitorAt(index)
	if monitor == nil {
		return
	}

	if c.Window.Fullscreen() {
		slog.Info("Selected fullscreen monitor",
			slog.Int("monitor", index),
			slog.String("name", monitor.Name()),
		)

		mode, ok := monitor.VideoMode()
		if !ok {
			slog.Warn("GLFW: Failed to find video mode for selected monitor", slog.Int("monitor", index))
			return
		}

		c.Platform.SetWindowMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return
	}

	x, y := monitor.Position()
	c.SetWindowPosition(x, y)
}
