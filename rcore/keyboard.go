package rcore

// IsKeyPressed reports whether the key went down in this frame
func (c *CoreData) IsKeyPressed(key Key) bool {
	if !key.Valid() {
		return false
	}

	keyboard := &c.Input.Keyboard
	return !keyboard.PreviousKeyState[key] && keyboard.CurrentKeyState[key]
}

// IsKeyPressedRepeat reports whether the native library sent a key repeat in this frame
func (c *CoreData) IsKeyPressedRepeat(key Key) bool {
	if !key.Valid() {
		return false
	}

	return c.Input.Keyboard.KeyRepeatInFrame[key]
}

func (c *CoreData) IsKeyDown(key Key) bool {
	if !key.Valid() {
		return false
	}

	return c.Input.Keyboard.CurrentKeyState[key]
}

// IsKeyReleased reports whether the key went up in this frame
func (c *CoreData) IsKeyReleased(key Key) bool {
	if !key.Valid() {
		return false
	}

	keyboard := &c.Input.Keyboard
	return keyboard.PreviousKeyState[key] && !keyboard.CurrentKeyState[key]
}

func (c *CoreData) IsKeyUp(key Key) bool {
	if !key.Valid() {
		return false
	}

	return !c.Input.Keyboard.CurrentKeyState[key]
}

// GetKeyPressed dequeues the next key pressed in this frame. Returns
// KeyNull once the queue is empty.
func (c *CoreData) GetKeyPressed() Key {
	return c.Input.Keyboard.popKey()
}

// GetCharPressed dequeues the next unicode character entered in this
// frame. Returns 0 once the queue is empty.
func (c *CoreData) GetCharPressed() rune {
	return c.Input.Keyboard.popChar()
}

// SetExitKey sets the key that closes the window. Use KeyNull to disable it.
func (c *CoreData) SetExitKey(key Key) {
	c.Input.Keyboard.ExitKey = key
}
