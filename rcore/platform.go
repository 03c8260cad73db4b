package rcore

// Platform is the native windowing library as seen by the core. All methods
// must be called from the thread that created the window.
type Platform interface {
	// Monitors enumerates the connected monitors. The returned handles
	// are only valid until the next call to Monitors.
	Monitors() []Monitor

	// WindowMonitor returns the monitor the window is assigned to in
	// fullscreen mode, or nil if the window is in windowed mode.
	WindowMonitor() Monitor

	// SetWindowMonitor moves the window onto the given monitor in
	// fullscreen mode. A nil monitor puts the window into windowed mode
	// at the given position.
	SetWindowMonitor(monitor Monitor, x, y, width, height, refreshRate int)

	WindowPosition() (x, y int)
	SetWindowPosition(x, y int)
	SetWindowSize(width, height int)
	SetWindowSizeLimits(minWidth, minHeight, maxWidth, maxHeight int)
	SetWindowTitle(title string)
	SetWindowDecorated(decorated bool)
	SetCursorVisible(visible bool)

	// PollEvents processes pending events and dispatches them to the
	// registered event handlers. If wait is true, PollEvents blocks until
	// at least one event was received.
	PollEvents(wait bool)

	// GamepadState returns the state of the gamepad at the given index
	// if a gamepad is connected at that slot.
	GamepadState(index int) (GamepadState, bool)

	// Time returns the seconds elapsed since the platform was initialized
	Time() float64
}

// Monitor is a borrowed handle to a monitor. Two handles are equal
// if they refer to the same physical monitor.
type Monitor interface {
	Name() string

	// Position returns the position of the monitors top left corner
	// in virtual screen coordinates.
	Position() (x, y int)

	// VideoMode returns the current video mode. ok is false if the
	// native library could not provide one.
	VideoMode() (mode VideoMode, ok bool)

	// PhysicalSize returns the physical size in millimetres
	PhysicalSize() (widthMM, heightMM int)
}

type VideoMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// GamepadState is the state of a gamepad in the standard layout
// of the native library (xbox style button placement).
type GamepadState struct {
	Name    string
	Buttons [NativeGamepadButtons]bool
	Axes    [NativeGamepadAxes]float32
}

const (
	NativeGamepadButtons = 15
	NativeGamepadAxes    = 6
)
