package rcore

func validGamepad(gamepad int) bool {
	return gamepad >= 0 && gamepad < MaxGamepads
}

func (c *CoreData) IsGamepadAvailable(gamepad int) bool {
	return validGamepad(gamepad) && c.Input.Gamepad.Ready[gamepad]
}

func (c *CoreData) GetGamepadName(gamepad int) string {
	if !c.IsGamepadAvailable(gamepad) {
		return ""
	}

	return c.Input.Gamepad.Name[gamepad]
}

func (c *CoreData) IsGamepadButtonPressed(gamepad int, button GamepadButton) bool {
	if !c.IsGamepadAvailable(gamepad) || !button.Valid() {
		return false
	}

	pad := &c.Input.Gamepad
	return !pad.PreviousButtonState[gamepad][button] && pad.CurrentButtonState[gamepad][button]
}

func (c *CoreData) IsGamepadButtonDown(gamepad int, button GamepadButton) bool {
	if !c.IsGamepadAvailable(gamepad) || !button.Valid() {
		return false
	}

	return c.Input.Gamepad.CurrentButtonState[gamepad][button]
}

func (c *CoreData) IsGamepadButtonReleased(gamepad int, button GamepadButton) bool {
	if !c.IsGamepadAvailable(gamepad) || !button.Valid() {
		return false
	}

	pad := &c.Input.Gamepad
	return pad.PreviousButtonState[gamepad][button] && !pad.CurrentButtonState[gamepad][button]
}

func (c *CoreData) IsGamepadButtonUp(gamepad int, button GamepadButton) bool {
	if !c.IsGamepadAvailable(gamepad) || !button.Valid() {
		return false
	}

	return !c.Input.Gamepad.CurrentButtonState[gamepad][button]
}

// GetGamepadButtonPressed returns the last button pressed on any gamepad
func (c *CoreData) GetGamepadButtonPressed() GamepadButton {
	return c.Input.Gamepad.LastButtonPressed
}

func (c *CoreData) GetGamepadAxisCount(gamepad int) int {
	if !validGamepad(gamepad) {
		return 0
	}

	return c.Input.Gamepad.AxisCount[gamepad]
}

// GetGamepadAxisMovement returns the axis value in [-1, 1]
func (c *CoreData) GetGamepadAxisMovement(gamepad int, axis GamepadAxis) float32 {
	if !c.IsGamepadAvailable(gamepad) || !axis.Valid() {
		return 0
	}

	return c.Input.Gamepad.AxisState[gamepad][axis]
}
