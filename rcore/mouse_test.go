package rcore

import (
	"testing"

	"github.com/oliverbestmann/rcore/glm"
)

func TestMouseButtonEdges(t *testing.T) {
	core := newTestCore(newStubPlatform())

	core.OnMouseButton(MouseButtonLeft, ActionPress)

	if !core.IsMouseButtonPressed(MouseButtonLeft) || !core.IsMouseButtonDown(MouseButtonLeft) {
		t.Fatalf("expected left button to be pressed")
	}

	core.PollInputEvents()
	core.OnMouseButton(MouseButtonLeft, ActionRelease)

	if !core.IsMouseButtonReleased(MouseButtonLeft) || !core.IsMouseButtonUp(MouseButtonLeft) {
		t.Fatalf("expected left button to be released")
	}

	if core.IsMouseButtonDown(MouseButton(42)) {
		t.Fatalf("expected invalid button to be up")
	}
}

func TestMousePositionOffsetAndScale(t *testing.T) {
	core := newTestCore(newStubPlatform())

	core.OnCursorPos(100, 50)

	if pos := core.GetMousePosition(); pos != (glm.Vec2f{100, 50}) {
		t.Fatalf("unexpected mouse position %v", pos)
	}

	core.SetMouseOffset(-20, 10)
	core.SetMouseScale(0.5, 2)

	if pos := core.GetMousePosition(); pos != (glm.Vec2f{40, 120}) {
		t.Fatalf("unexpected mouse position %v", pos)
	}

	if core.GetMouseX() != 40 || core.GetMouseY() != 120 {
		t.Fatalf("unexpected mouse coordinates")
	}
}

func TestMouseDelta(t *testing.T) {
	core := newTestCore(newStubPlatform())

	core.OnCursorPos(10, 10)
	core.PollInputEvents()
	core.OnCursorPos(15, 7)

	if delta := core.GetMouseDelta(); delta != (glm.Vec2f{5, -3}) {
		t.Fatalf("unexpected mouse delta %v", delta)
	}
}

func TestMouseWheel(t *testing.T) {
	core := newTestCore(newStubPlatform())

	core.OnScroll(0.5, -2)
	if core.GetMouseWheelMove() != -2 {
		t.Fatalf("expected vertical wheel movement to dominate")
	}

	core.OnScroll(3, 1)
	if core.GetMouseWheelMove() != 3 {
		t.Fatalf("expected horizontal wheel movement to dominate")
	}

	core.PollInputEvents()

	if core.GetMouseWheelMoveV() != (glm.Vec2f{}) {
		t.Fatalf("expected wheel movement to reset every frame")
	}

	if core.Input.Mouse.PreviousWheelMove != (glm.Vec2f{3, 1}) {
		t.Fatalf("expected previous wheel movement to be kept")
	}
}

func TestMouseMapsToTouch(t *testing.T) {
	core := newTestCore(newStubPlatform())

	core.OnCursorPos(30, 40)
	core.OnMouseButton(MouseButtonLeft, ActionPress)

	if core.GetTouchPointCount() != 1 {
		t.Fatalf("expected one touch point")
	}

	if core.GetTouchPosition(0) != (glm.Vec2f{30, 40}) {
		t.Fatalf("unexpected touch position %v", core.GetTouchPosition(0))
	}

	if core.GetTouchPointID(0) != 0 || core.GetTouchPointID(MaxTouchPoints) != -1 {
		t.Fatalf("unexpected touch point ids")
	}

	core.OnMouseButton(MouseButtonLeft, ActionRelease)

	if core.GetTouchPointCount() != 0 {
		t.Fatalf("expected no touch points after release")
	}
}

func TestCursorEnter(t *testing.T) {
	core := newTestCore(newStubPlatform())

	core.OnCursorEnter(true)
	if !core.IsCursorOnScreen() {
		t.Fatalf("expected cursor on screen")
	}

	core.OnCursorEnter(false)
	if core.Input.Mouse.CursorOnScreen {
		t.Fatalf("expected cursor to have left the screen")
	}
}

func TestCursorVisibility(t *testing.T) {
	platform := newStubPlatform()
	core := newTestCore(platform)

	core.HideCursor()
	if !core.IsCursorHidden() || platform.cursorVisible {
		t.Fatalf("expected hidden cursor")
	}

	core.ShowCursor()
	if core.IsCursorHidden() || !platform.cursorVisible {
		t.Fatalf("expected visible cursor")
	}
}
