package rcore

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=MouseButton -trimprefix=MouseButton -output=mousebutton_string.go
//go:generate go tool stringer -type=GamepadButton -trimprefix=GamepadButton -output=gamepadbutton_string.go
//go:generate go tool stringer -type=GamepadAxis -trimprefix=GamepadAxis -output=gamepadaxis_string.go

// Key is a keyboard key code. The values match the key codes
// reported by GLFW, so native keys translate without a lookup table.
type Key int32

const (
	KeyNull Key = 0

	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	KeyZero         Key = 48
	KeyOne          Key = 49
	KeyTwo          Key = 50
	KeyThree        Key = 51
	KeyFour         Key = 52
	KeyFive         Key = 53
	KeySix          Key = 54
	KeySeven        Key = 55
	KeyEight        Key = 56
	KeyNine         Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96

	KeySpace        Key = 32
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyKbMenu       Key = 348

	KeyKp0        Key = 320
	KeyKp1        Key = 321
	KeyKp2        Key = 322
	KeyKp3        Key = 323
	KeyKp4        Key = 324
	KeyKp5        Key = 325
	KeyKp6        Key = 326
	KeyKp7        Key = 327
	KeyKp8        Key = 328
	KeyKp9        Key = 329
	KeyKpDecimal  Key = 330
	KeyKpDivide   Key = 331
	KeyKpMultiply Key = 332
	KeyKpSubtract Key = 333
	KeyKpAdd      Key = 334
	KeyKpEnter    Key = 335
	KeyKpEqual    Key = 336
)

var keyNames = map[Key]string{
	KeyNull:         "Null",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeySemicolon:    "Semicolon",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyGrave:        "Grave",
	KeySpace:        "Space",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
	KeyRightSuper:   "RightSuper",
	KeyKbMenu:       "KbMenu",
	KeyKpDecimal:    "KpDecimal",
	KeyKpDivide:     "KpDivide",
	KeyKpMultiply:   "KpMultiply",
	KeyKpSubtract:   "KpSubtract",
	KeyKpAdd:        "KpAdd",
	KeyKpEnter:      "KpEnter",
	KeyKpEqual:      "KpEqual",
}

var keysByName = map[string]Key{}

func init() {
	digits := []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	for idx, name := range digits {
		keyNames[KeyZero+Key(idx)] = name
		keyNames[KeyKp0+Key(idx)] = "Kp" + strconv.Itoa(idx)
	}

	for key := KeyA; key <= KeyZ; key++ {
		keyNames[key] = string(rune(key))
	}

	for key := KeyF1; key <= KeyF12; key++ {
		keyNames[key] = "F" + strconv.Itoa(int(key-KeyF1)+1)
	}

	for key, name := range keyNames {
		keysByName[strings.ToLower(name)] = key
	}
}

// Valid reports whether the key fits into the keyboard state arrays
func (k Key) Valid() bool {
	return k >= 0 && k < MaxKeyboardKeys
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey looks up a key by the name returned from Key.String,
// ignoring case.
func ParseKey(name string) (Key, error) {
	key, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyNull, fmt.Errorf("unknown key %q", name)
	}

	return key, nil
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	key, err := ParseKey(string(text))
	if err != nil {
		return err
	}

	*k = key
	return nil
}

type MouseButton int32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonSide
	MouseButtonExtra
	MouseButtonForward
	MouseButtonBack
)

func (b MouseButton) Valid() bool {
	return b >= 0 && b < MaxMouseButtons
}

type GamepadButton int32

const (
	GamepadButtonUnknown GamepadButton = iota
	GamepadButtonLeftFaceUp
	GamepadButtonLeftFaceRight
	GamepadButtonLeftFaceDown
	GamepadButtonLeftFaceLeft
	GamepadButtonRightFaceUp
	GamepadButtonRightFaceRight
	GamepadButtonRightFaceDown
	GamepadButtonRightFaceLeft
	GamepadButtonLeftTrigger1
	GamepadButtonLeftTrigger2
	GamepadButtonRightTrigger1
	GamepadButtonRightTrigger2
	GamepadButtonMiddleLeft
	GamepadButtonMiddle
	GamepadButtonMiddleRight
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
)

func (b GamepadButton) Valid() bool {
	return b >= 0 && b < MaxGamepadButtons
}

type GamepadAxis int32

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

func (a GamepadAxis) Valid() bool {
	return a >= 0 && a < MaxGamepadAxis
}

// Action is the state transition reported for a key or button
type Action int32

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)
