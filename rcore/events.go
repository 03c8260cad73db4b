package rcore

import (
	"log/slog"

	"github.com/oliverbestmann/rcore/glm"
)

// The On* methods translate native window events into the core state.
// They are called by the platform from within Platform.PollEvents.

func (c *CoreData) OnKey(key Key, action Action) {
	if !key.Valid() {
		trace("Ignoring key event", slog.Int("key", int(key)))
		return
	}

	keyboard := &c.Input.Keyboard

	switch action {
	case ActionRelease:
		keyboard.CurrentKeyState[key] = false

	case ActionPress:
		keyboard.CurrentKeyState[key] = true
		keyboard.pushKey(key)

	case ActionRepeat:
		keyboard.KeyRepeatInFrame[key] = true
	}

	if action == ActionPress && key == keyboard.ExitKey && key != KeyNull {
		c.OnClose()
	}
}

func (c *CoreData) OnChar(char rune) {
	c.Input.Keyboard.pushChar(char)
}

func (c *CoreData) OnMouseButton(button MouseButton, action Action) {
	if !button.Valid() {
		return
	}

	pressed := action == ActionPress

	c.Input.Mouse.CurrentButtonState[button] = pressed

	// the mouse doubles as touch point on desktop
	touch := &c.Input.Touch
	if int(button) < MaxTouchPoints {
		touch.CurrentTouchState[button] = pressed
	}

	if pressed {
		touch.PointCount = 1
	} else {
		touch.PointCount = 0
	}

	touch.PointID[0] = 0
	touch.Position[0] = c.GetMousePosition()
}

func (c *CoreData) OnCursorPos(x, y float32) {
	c.Input.Mouse.CurrentPosition = glm.Vec2f{x, y}
	c.Input.Touch.Position[0] = c.GetMousePosition()
}

func (c *CoreData) OnScroll(x, y float32) {
	c.Input.Mouse.CurrentWheelMove = glm.Vec2f{x, y}
}

func (c *CoreData) OnCursorEnter(entered bool) {
	c.Input.Mouse.CursorOnScreen = entered
}

// OnResize is called with the new size of the window in screen coordinates
func (c *CoreData) OnResize(width, height int) {
	c.Window.ResizedLastFrame = true

	// the window size follows the video mode in fullscreen mode
	if c.Window.Fullscreen() {
		return
	}

	c.Window.Screen = glm.Size{Width: width, Height: height}

	if !c.Window.Flags.Has(FlagWindowHighDPI) {
		c.Window.Render = c.Window.Screen
		c.Window.CurrentFbo = c.Window.Screen
	}
}

// OnFramebufferResize is called with the new size of the framebuffer in pixels
func (c *CoreData) OnFramebufferResize(width, height int) {
	size := glm.Size{Width: width, Height: height}

	c.Window.Render = size
	c.Window.CurrentFbo = size

	screen := c.Window.Screen
	if c.Window.Flags.Has(FlagWindowHighDPI) && screen.Width > 0 && screen.Height > 0 {
		scaleX := float32(width) / float32(screen.Width)
		scaleY := float32(height) / float32(screen.Height)
		c.Window.ScreenScale = glm.ScaleMat4[float32](scaleX, scaleY, 1)
	}
}

func (c *CoreData) OnFocus(focused bool) {
	c.Window.Flags.Assign(FlagWindowUnfocused, !focused)
}

func (c *CoreData) OnIconify(iconified bool) {
	c.Window.Flags.Assign(FlagWindowMinimized, iconified)
}

func (c *CoreData) OnMaximize(maximized bool) {
	c.Window.Flags.Assign(FlagWindowMaximized, maximized)
}

// OnDrop stores the dropped paths, replacing the paths of
// a previous drop that were not yet cleared.
func (c *CoreData) OnDrop(paths []string) {
	if len(paths) > MaxFilepathCapacity {
		slog.Warn("Too many files dropped, ignoring the rest",
			slog.Int("count", len(paths)),
			slog.Int("capacity", MaxFilepathCapacity),
		)

		paths = paths[:MaxFilepathCapacity]
	}

	c.Window.DropFilepaths = c.Window.DropFilepaths[:0]

	for _, path := range paths {
		if len(path) > MaxFilepathLength {
			slog.Warn("Dropped file path too long", slog.String("path", path[:64]+"..."))
			continue
		}

		c.Window.DropFilepaths = append(c.Window.DropFilepaths, path)
	}
}

// OnClose marks the window for closing. The frame loop decides
// if it honors the request, see WindowShouldClose.
func (c *CoreData) OnClose() {
	c.Window.ShouldClose = true
}
