package orion

import (
	"github.com/oliverbestmann/rcore/glm"
	"github.com/oliverbestmann/rcore/rcore"
)

type KeyCode = rcore.Key
type MouseButton = rcore.MouseButton

// MousePositionRaw returns the cursor position in window coordinates
func MousePositionRaw() glm.Vec2f {
	return Core().Input.Mouse.CurrentPosition
}

// MousePosition returns the cursor position on the virtual screen
// if the game implements Layouter, window coordinates otherwise.
func MousePosition() glm.Vec2f {
	return Core().GetMousePosition()
}

func IsKeyPressed(key KeyCode) bool {
	return Core().IsKeyDown(key)
}

func IsKeyJustPressed(key KeyCode) bool {
	return Core().IsKeyPressed(key)
}

func IsKeyJustReleased(key KeyCode) bool {
	return Core().IsKeyReleased(key)
}

func IsMouseButtonPressed(button MouseButton) bool {
	return Core().IsMouseButtonDown(button)
}

func IsMouseButtonJustPressed(button MouseButton) bool {
	return Core().IsMouseButtonPressed(button)
}

func IsMouseButtonJustReleased(button MouseButton) bool {
	return Core().IsMouseButtonReleased(button)
}

// FrameTime returns the duration of the last frame in seconds
func FrameTime() float32 {
	return Core().GetFrameTime()
}
