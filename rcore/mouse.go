package rcore

import (
	"math"

	"github.com/oliverbestmann/rcore/glm"
)

func (c *CoreData) IsMouseButtonPressed(button MouseButton) bool {
	if !button.Valid() {
		return false
	}

	mouse := &c.Input.Mouse
	return !mouse.PreviousButtonState[button] && mouse.CurrentButtonState[button]
}

func (c *CoreData) IsMouseButtonDown(button MouseButton) bool {
	if !button.Valid() {
		return false
	}

	return c.Input.Mouse.CurrentButtonState[button]
}

func (c *CoreData) IsMouseButtonReleased(button MouseButton) bool {
	if !button.Valid() {
		return false
	}

	mouse := &c.Input.Mouse
	return mouse.PreviousButtonState[button] && !mouse.CurrentButtonState[button]
}

func (c *CoreData) IsMouseButtonUp(button MouseButton) bool {
	if !button.Valid() {
		return false
	}

	return !c.Input.Mouse.CurrentButtonState[button]
}

// GetMousePosition returns the cursor position with offset and scale applied
func (c *CoreData) GetMousePosition() glm.Vec2f {
	mouse := &c.Input.Mouse
	return mouse.CurrentPosition.Add(mouse.Offset).Mul(mouse.Scale)
}

func (c *CoreData) GetMouseX() int {
	return int(c.GetMousePosition().X())
}

func (c *CoreData) GetMouseY() int {
	return int(c.GetMousePosition().Y())
}

// GetMouseDelta returns the cursor movement since the previous frame
func (c *CoreData) GetMouseDelta() glm.Vec2f {
	mouse := &c.Input.Mouse
	return mouse.CurrentPosition.Sub(mouse.PreviousPosition)
}

func (c *CoreData) SetMouseOffset(x, y float32) {
	c.Input.Mouse.Offset = glm.Vec2f{x, y}
}

func (c *CoreData) SetMouseScale(x, y float32) {
	c.Input.Mouse.Scale = glm.Vec2f{x, y}
}

// GetMouseWheelMove returns the wheel movement along the dominant axis
func (c *CoreData) GetMouseWheelMove() float32 {
	x, y := c.Input.Mouse.CurrentWheelMove.XY()

	if math.Abs(float64(x)) > math.Abs(float64(y)) {
		return x
	}

	return y
}

func (c *CoreData) GetMouseWheelMoveV() glm.Vec2f {
	return c.Input.Mouse.CurrentWheelMove
}

func (c *CoreData) ShowCursor() {
	c.setCursorHidden(false)
}

func (c *CoreData) HideCursor() {
	c.setCursorHidden(true)
}

func (c *CoreData) setCursorHidden(hidden bool) {
	c.Input.Mouse.CursorHidden = hidden

	if c.Platform != nil {
		c.Platform.SetCursorVisible(!hidden)
	}
}

func (c *CoreData) IsCursorHidden() bool {
	return c.Input.Mouse.CursorHidden
}

// IsCursorOnScreen reports whether the cursor is within the window
func (c *CoreData) IsCursorOnScreen() bool {
	return c.Input.Mouse.CursorOnScreen
}

func (c *CoreData) GetTouchPointCount() int {
	return c.Input.Touch.PointCount
}

func (c *CoreData) GetTouchPosition(index int) glm.Vec2f {
	if index < 0 || index >= MaxTouchPoints {
		return glm.Vec2f{}
	}

	return c.Input.Touch.Position[index]
}

// GetTouchPointID returns the identifier of the touch point, or -1
func (c *CoreData) GetTouchPointID(index int) int {
	if index < 0 || index >= MaxTouchPoints {
		return -1
	}

	return c.Input.Touch.PointID[index]
}
