package rcore

import "github.com/oliverbestmann/rcore/glm"

type Input struct {
	Keyboard Keyboard
	Mouse    Mouse
	Touch    Touch
	Gamepad  Gamepad
}

type Keyboard struct {
	// ExitKey closes the window when pressed. KeyNull disables it.
	ExitKey Key

	CurrentKeyState  [MaxKeyboardKeys]bool
	PreviousKeyState [MaxKeyboardKeys]bool

	// KeyRepeatInFrame registers key repeats for the current frame. Pressed
	// detection compares previous and current state, so repeats need
	// their own record.
	KeyRepeatInFrame [MaxKeyboardKeys]bool

	KeyPressedQueue      [MaxKeyPressedQueue]Key
	KeyPressedQueueCount int

	CharPressedQueue      [MaxCharPressedQueue]rune
	CharPressedQueueCount int
}

func (k *Keyboard) pushKey(key Key) {
	if k.KeyPressedQueueCount < MaxKeyPressedQueue {
		k.KeyPressedQueue[k.KeyPressedQueueCount] = key
		k.KeyPressedQueueCount++
	}
}

func (k *Keyboard) pushChar(char rune) {
	if k.CharPressedQueueCount < MaxCharPressedQueue {
		k.CharPressedQueue[k.CharPressedQueueCount] = char
		k.CharPressedQueueCount++
	}
}

func (k *Keyboard) popKey() Key {
	if k.KeyPressedQueueCount == 0 {
		return KeyNull
	}

	key := k.KeyPressedQueue[0]

	copy(k.KeyPressedQueue[:], k.KeyPressedQueue[1:k.KeyPressedQueueCount])
	k.KeyPressedQueueCount--
	k.KeyPressedQueue[k.KeyPressedQueueCount] = KeyNull

	return key
}

func (k *Keyboard) popChar() rune {
	if k.CharPressedQueueCount == 0 {
		return 0
	}

	char := k.CharPressedQueue[0]

	copy(k.CharPressedQueue[:], k.CharPressedQueue[1:k.CharPressedQueueCount])
	k.CharPressedQueueCount--
	k.CharPressedQueue[k.CharPressedQueueCount] = 0

	return char
}

func (k *Keyboard) nextFrame() {
	k.KeyPressedQueueCount = 0
	k.CharPressedQueueCount = 0

	k.PreviousKeyState = k.CurrentKeyState
	clear(k.KeyRepeatInFrame[:])
}

type Mouse struct {
	Offset glm.Vec2f
	Scale  glm.Vec2f

	CurrentPosition  glm.Vec2f
	PreviousPosition glm.Vec2f

	Cursor         int
	CursorHidden   bool
	CursorOnScreen bool

	CurrentButtonState  [MaxMouseButtons]bool
	PreviousButtonState [MaxMouseButtons]bool

	CurrentWheelMove  glm.Vec2f
	PreviousWheelMove glm.Vec2f
}

func (m *Mouse) nextFrame() {
	m.PreviousButtonState = m.CurrentButtonState

	m.PreviousWheelMove = m.CurrentWheelMove
	m.CurrentWheelMove = glm.Vec2f{}

	m.PreviousPosition = m.CurrentPosition
}

type Touch struct {
	PointCount int
	PointID    [MaxTouchPoints]int
	Position   [MaxTouchPoints]glm.Vec2f

	CurrentTouchState  [MaxTouchPoints]bool
	PreviousTouchState [MaxTouchPoints]bool
}

func (t *Touch) nextFrame() {
	t.PreviousTouchState = t.CurrentTouchState
}

type Gamepad struct {
	LastButtonPressed GamepadButton

	AxisCount [MaxGamepads]int
	Ready     [MaxGamepads]bool
	Name      [MaxGamepads]string

	CurrentButtonState  [MaxGamepads][MaxGamepadButtons]bool
	PreviousButtonState [MaxGamepads][MaxGamepadButtons]bool

	AxisState [MaxGamepads][MaxGamepadAxis]float32
}

// gamepadButtonOf maps the native standard gamepad layout to GamepadButton
var gamepadButtonOf = [NativeGamepadButtons]GamepadButton{
	GamepadButtonRightFaceDown,  // A
	GamepadButtonRightFaceRight, // B
	GamepadButtonRightFaceLeft,  // X
	GamepadButtonRightFaceUp,    // Y
	GamepadButtonLeftTrigger1,   // left bumper
	GamepadButtonRightTrigger1,  // right bumper
	GamepadButtonMiddleLeft,     // back
	GamepadButtonMiddle,         // guide
	GamepadButtonMiddleRight,    // start
	GamepadButtonLeftThumb,
	GamepadButtonRightThumb,
	GamepadButtonLeftFaceUp,
	GamepadButtonLeftFaceRight,
	GamepadButtonLeftFaceDown,
	GamepadButtonLeftFaceLeft,
}

// triggers count as pressed once the axis crosses this value
const triggerThreshold = 0.1

func (g *Gamepad) update(index int, state GamepadState, ok bool) {
	g.PreviousButtonState[index] = g.CurrentButtonState[index]

	if !ok {
		g.Ready[index] = false
		g.Name[index] = ""
		g.AxisCount[index] = 0
		clear(g.CurrentButtonState[index][:])
		clear(g.AxisState[index][:])
		return
	}

	g.Ready[index] = true
	g.Name[index] = state.Name
	g.AxisCount[index] = NativeGamepadAxes

	for nativeIdx, pressed := range state.Buttons {
		button := gamepadButtonOf[nativeIdx]
		g.setButton(index, button, pressed)
	}

	for axis, value := range state.Axes {
		g.AxisState[index][axis] = value
	}

	g.setButton(index, GamepadButtonLeftTrigger2, state.Axes[GamepadAxisLeftTrigger] > triggerThreshold)
	g.setButton(index, GamepadButtonRightTrigger2, state.Axes[GamepadAxisRightTrigger] > triggerThreshold)
}

func (g *Gamepad) setButton(index int, button GamepadButton, pressed bool) {
	g.CurrentButtonState[index][button] = pressed

	if pressed && !g.PreviousButtonState[index][button] {
		g.LastButtonPressed = button
	}
}

// PollInputEvents finishes the input of the current frame and collects
// the events for the next one: queues are reset, the current state
// becomes the previous state and the native event queue is processed.
func (c *CoreData) PollInputEvents() {
	c.Input.Keyboard.nextFrame()
	c.Input.Mouse.nextFrame()
	c.Input.Touch.nextFrame()

	c.Window.ResizedLastFrame = false

	if c.Platform == nil {
		return
	}

	c.Platform.PollEvents(c.Window.EventWaiting)

	for idx := 0; idx < MaxGamepads; idx++ {
		state, ok := c.Platform.GamepadState(idx)
		c.Input.Gamepad.update(idx, state, ok)
	}
}
