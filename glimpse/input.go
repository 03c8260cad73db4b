package glimpse

import (
	"context"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/rcore/rcore"
)

var joysticks = [rcore.MaxGamepads]glfw.Joystick{
	glfw.Joystick1,
	glfw.Joystick2,
	glfw.Joystick3,
	glfw.Joystick4,
}

func configureInput(window *glfw.Window, w *Window) {
	core := w.core

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		key, ok := w.keyOf(glfwKey, scancode)
		if !ok {
			return
		}

		core.OnKey(key, rcore.Action(action))
	})

	window.SetCharCallback(func(_win *glfw.Window, char rune) {
		core.OnChar(char)
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		core.OnMouseButton(rcore.MouseButton(btn), rcore.Action(action))
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		core.OnCursorPos(float32(xpos), float32(ypos))
	})

	window.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		core.OnScroll(float32(xoff), float32(yoff))
	})

	window.SetCursorEnterCallback(func(_win *glfw.Window, entered bool) {
		core.OnCursorEnter(entered)
	})

	window.SetSizeCallback(func(_win *glfw.Window, width int, height int) {
		slog.Debug("Window resized",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		core.OnResize(width, height)
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		core.OnFramebufferResize(width, height)
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		core.OnFocus(focused)
	})

	window.SetIconifyCallback(func(_win *glfw.Window, iconified bool) {
		core.OnIconify(iconified)
	})

	window.SetMaximizeCallback(func(_win *glfw.Window, maximized bool) {
		core.OnMaximize(maximized)
	})

	window.SetDropCallback(func(_win *glfw.Window, names []string) {
		slog.Info("Files dropped", slog.Int("count", len(names)))
		core.OnDrop(names)
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		core.OnClose()
	})
}

func (w *Window) keyOf(glfwKey glfw.Key, scancode int) (key rcore.Key, ok bool) {
	key = rcore.Key(glfwKey)

	ok = key.Valid()
	if !ok {
		// glfw reports media and vendor keys as KeyUnknown on every press
		slog.Log(context.Background(), rcore.LevelTrace,
			"Unknown key code",
			slog.Int("key", int(glfwKey)),
			slog.Int("scancode", scancode),
		)
	}

	return
}

// KeyName returns the layout specific name of a printable key,
// or the name of the key code for all other keys.
func (w *Window) KeyName(key rcore.Key) string {
	glfwKey := glfw.Key(key)

	name, ok := w.keyNames.Get(glfwKey)
	if !ok {
		name = glfw.GetKeyName(glfwKey, 0)
		w.keyNames.Add(glfwKey, name)
	}

	if name == "" {
		return key.String()
	}

	return name
}

func (w *Window) GamepadState(index int) (rcore.GamepadState, bool) {
	if index < 0 || index >= len(joysticks) {
		return rcore.GamepadState{}, false
	}

	joystick := joysticks[index]
	if !joystick.Present() || !joystick.IsGamepad() {
		return rcore.GamepadState{}, false
	}

	native := joystick.GetGamepadState()
	if native == nil {
		return rcore.GamepadState{}, false
	}

	state := rcore.GamepadState{
		Name: joystick.GetGamepadName(),
		Axes: native.Axes,
	}

	for idx, action := range native.Buttons {
		state.Buttons[idx] = action == glfw.Press
	}

	return state, true
}
