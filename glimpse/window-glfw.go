package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/rcore/glm"
	"github.com/oliverbestmann/rcore/rcore"
)

// Window owns the native glfw window and implements rcore.Platform for it.
type Window struct {
	win  *glfw.Window
	core *rcore.CoreData

	keyNames *lru.Cache[glfw.Key, string]
}

// NewWindow initializes glfw and creates a window as described by the
// window state of the given core. The core is attached to the new window.
func NewWindow(core *rcore.CoreData) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	slog.Info("Initialized glfw", slog.String("version", glfw.GetVersionString()))

	state := &core.Window

	primary := glfw.GetPrimaryMonitor()
	if primary == nil {
		glfw.Terminate()
		return nil, fmt.Errorf("get primary monitor: no monitor connected")
	}

	if mode := primary.GetVideoMode(); mode != nil {
		state.Display = glm.Size{Width: mode.Width, Height: mode.Height}
	}

	if state.Screen.IsZero() {
		state.Screen = state.Display
	}

	applyWindowHints(state.Flags)

	var monitor *glfw.Monitor
	if state.Fullscreen() {
		monitor = primary
	}

	window, err := glfw.CreateWindow(state.Screen.Width, state.Screen.Height, state.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	keyNames, _ := lru.New[glfw.Key, string](64)

	w := &Window{
		win:      window,
		core:     core,
		keyNames: keyNames,
	}

	if !state.Fullscreen() {
		// center the window on the primary monitor
		mx, my := primary.GetPos()
		window.SetPos(
			mx+(state.Display.Width-state.Screen.Width)/2,
			my+(state.Display.Height-state.Screen.Height)/2,
		)
	}

	if state.Flags.Has(rcore.FlagWindowMinimized) {
		window.Iconify()
	}

	if state.Flags.Has(rcore.FlagWindowMaximized) {
		window.Maximize()
	}

	if state.Flags.Has(rcore.FlagVsyncHint) {
		// there is no graphics context on this window, the renderer owns the swap chain
		slog.Debug("VSync requested, leaving it to the renderer")
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	state.Render = glm.Size{Width: fbWidth, Height: fbHeight}
	state.CurrentFbo = state.Render

	configureInput(window, w)

	core.Attach(w)

	return w, nil
}

func applyWindowHints(flags rcore.ConfigFlags) {
	glfw.DefaultWindowHints()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	glfw.WindowHint(glfw.Visible, boolHint(!flags.Has(rcore.FlagWindowHidden)))
	glfw.WindowHint(glfw.Decorated, boolHint(!flags.Has(rcore.FlagWindowUndecorated)))
	glfw.WindowHint(glfw.Resizable, boolHint(flags.Has(rcore.FlagWindowResizable)))
	glfw.WindowHint(glfw.Focused, boolHint(!flags.Has(rcore.FlagWindowUnfocused)))
	glfw.WindowHint(glfw.Floating, boolHint(flags.Has(rcore.FlagWindowTopmost)))
	glfw.WindowHint(glfw.TransparentFramebuffer, boolHint(flags.Has(rcore.FlagWindowTransparent)))
	glfw.WindowHint(glfw.ScaleToMonitor, boolHint(flags.Has(rcore.FlagWindowHighDPI)))

	// keep the window visible when it loses focus in fullscreen mode
	glfw.WindowHint(glfw.AutoIconify, glfw.False)

	if flags.Has(rcore.FlagMSAA4xHint) {
		glfw.WindowHint(glfw.Samples, 4)
	}
}

func boolHint(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}

// Close destroys the window and terminates glfw. The core is
// detached and no longer ready.
func (w *Window) Close() {
	w.core.Detach()

	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) Monitors() []rcore.Monitor {
	monitors := glfw.GetMonitors()

	result := make([]rcore.Monitor, 0, len(monitors))
	for _, monitor := range monitors {
		result = append(result, monitorOf(monitor))
	}

	return result
}

func (w *Window) WindowMonitor() rcore.Monitor {
	monitor := w.win.GetMonitor()
	if monitor == nil {
		return nil
	}

	return monitorOf(monitor)
}

func (w *Window) SetWindowMonitor(monitor rcore.Monitor, x, y, width, height, refreshRate int) {
	var native *glfw.Monitor
	if m, ok := monitor.(glfwMonitor); ok {
		native = &m.handle
	}

	w.win.SetMonitor(native, x, y, width, height, refreshRate)
}

func (w *Window) WindowPosition() (x, y int) {
	return w.win.GetPos()
}

func (w *Window) SetWindowPosition(x, y int) {
	w.win.SetPos(x, y)
}

func (w *Window) SetWindowSize(width, height int) {
	w.win.SetSize(width, height)
}

func (w *Window) SetWindowSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) {
	w.win.SetSizeLimits(minWidth, minHeight, maxWidth, maxHeight)
}

func (w *Window) SetWindowTitle(title string) {
	w.win.SetTitle(title)
}

func (w *Window) SetWindowDecorated(decorated bool) {
	w.win.SetAttrib(glfw.Decorated, boolHint(decorated))
}

func (w *Window) SetCursorVisible(visible bool) {
	mode := glfw.CursorHidden
	if visible {
		mode = glfw.CursorNormal
	}

	w.win.SetInputMode(glfw.CursorMode, mode)
}

func (w *Window) PollEvents(wait bool) {
	if wait {
		glfw.WaitEvents()
		return
	}

	glfw.PollEvents()
}

func (w *Window) Time() float64 {
	return glfw.GetTime()
}
