package rcore

import (
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/rcore/glm"
)

// CoreData is the complete state of the core: window, input, timing and
// storage. It is owned by the frame loop and must only be used from the
// thread the platform was created on.
type CoreData struct {
	Window  Window
	Storage Storage
	Input   Input
	Time    Time

	// Platform is the native windowing library the core talks to.
	// It is nil until a window was created.
	Platform Platform

	// sleep blocks the frame loop to reach the target frame time
	sleep func(time.Duration)
}

type Window struct {
	Title string

	// Flags holds the configuration options and the current window state,
	// e.g. fullscreen or minimized.
	Flags ConfigFlags

	// Ready is set once the window was initialized successfully
	Ready bool

	ShouldClose      bool
	ResizedLastFrame bool

	// EventWaiting blocks in PollInputEvents until an event arrives
	EventWaiting bool

	// Position is the windowed mode position, required to restore
	// the window when leaving fullscreen
	Position glm.Point

	// PreviousPosition is the position before entering borderless windowed mode
	PreviousPosition glm.Point

	// Display is the size of the monitor the window was created on
	Display glm.Size

	// Screen is the size of the window (used render area)
	Screen glm.Size

	// PreviousScreen is the size before entering borderless windowed mode
	PreviousScreen glm.Size

	CurrentFbo   glm.Size
	Render       glm.Size
	RenderOffset glm.Point

	ScreenMin glm.Size
	ScreenMax glm.Size

	// ScreenScale scales the screen to the framebuffer in high dpi mode
	ScreenScale glm.Mat4f

	// DropFilepaths holds the paths of files dropped onto the window
	// since the last call to ClearDroppedFiles.
	DropFilepaths []string
}

// Fullscreen reports whether the window is in fullscreen mode. The
// FlagFullscreenMode option is the only record of this state.
func (w *Window) Fullscreen() bool {
	return w.Flags.Has(FlagFullscreenMode)
}

type Storage struct {
	// BasePath is the directory persistent data is stored in
	BasePath string
}

type Time struct {
	Current  float64
	Previous float64
	Update   float64
	Draw     float64
	Frame    float64

	// Target is the desired duration of one frame, 0 if not limited
	Target float64

	// Base is the platform time when the core was initialized
	Base float64

	FrameCounter uint32

	// moving average of the frame duration
	average float64
}

// NewCoreData creates a new core with default input settings. The
// window is not ready until a platform is attached with Attach.
func NewCoreData(title string, width, height int) *CoreData {
	core := &CoreData{
		sleep: time.Sleep,
	}

	core.Window.Title = title
	core.Window.Screen = glm.Size{Width: width, Height: height}
	core.Window.Render = core.Window.Screen
	core.Window.CurrentFbo = core.Window.Screen
	core.Window.ScreenScale = glm.IdentityMat4[float32]()

	core.Input.Keyboard.ExitKey = KeyEscape
	core.Input.Mouse.Scale = glm.Vec2f{1, 1}
	core.Input.Gamepad.LastButtonPressed = GamepadButtonUnknown

	if wd, err := os.Getwd(); err == nil {
		core.Storage.BasePath = wd
	}

	return core
}

// Attach connects the core to an initialized native window and marks
// the window as ready. A window created in fullscreen mode gets a windowed
// position centered on its monitor, used when leaving fullscreen.
func (c *CoreData) Attach(platform Platform) {
	c.Platform = platform

	if c.Window.Fullscreen() {
		c.Window.Position = c.centeredPosition(platform.WindowMonitor())
	} else {
		c.Window.Position.X, c.Window.Position.Y = platform.WindowPosition()
	}

	c.Time.Base = platform.Time()
	c.Time.Previous = c.GetTime()

	c.Window.Ready = true

	slog.Info("Window attached",
		slog.String("title", c.Window.Title),
		slog.Int("width", c.Window.Screen.Width),
		slog.Int("height", c.Window.Screen.Height),
		slog.String("flags", c.Window.Flags.String()),
	)
}

// centeredPosition returns the position that centers the screen on the
// monitor. Without a video mode the current position is kept.
func (c *CoreData) centeredPosition(monitor Monitor) glm.Point {
	bounds, ok := monitorBounds(monitor)
	if !ok {
		return c.Window.Position
	}

	return glm.Point{
		X: bounds.X + (bounds.Width-c.Window.Screen.Width)/2,
		Y: bounds.Y + (bounds.Height-c.Window.Screen.Height)/2,
	}
}

// Detach disconnects the core from the native window. The window is
// no longer ready afterwards.
func (c *CoreData) Detach() {
	c.Window.Ready = false
	c.Platform = nil
}
