package glimpse

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/rcore/rcore"
)

// glfwMonitor holds a copy of the glfw monitor handle. glfw allocates a
// new *glfw.Monitor on every lookup, the copies compare equal if they
// wrap the same native monitor.
type glfwMonitor struct {
	handle glfw.Monitor
}

func monitorOf(handle *glfw.Monitor) rcore.Monitor {
	if handle == nil {
		return nil
	}

	return glfwMonitor{handle: *handle}
}

func (m glfwMonitor) Name() string {
	return m.handle.GetName()
}

func (m glfwMonitor) Position() (x, y int) {
	return m.handle.GetPos()
}

func (m glfwMonitor) VideoMode() (rcore.VideoMode, bool) {
	mode := m.handle.GetVideoMode()
	if mode == nil {
		return rcore.VideoMode{}, false
	}

	return rcore.VideoMode{
		Width:       mode.Width,
		Height:      mode.Height,
		RefreshRate: mode.RefreshRate,
	}, true
}

func (m glfwMonitor) PhysicalSize() (widthMM, heightMM int) {
	return m.handle.GetPhysicalSize()
}
