package rcore

const (
	// MaxFilepathCapacity is the maximum number of dropped file paths kept per window
	MaxFilepathCapacity = 8192
	// MaxFilepathLength is the maximum length of a single file path (PATH_MAX on linux)
	MaxFilepathLength = 4096

	MaxKeyboardKeys   = 512
	MaxMouseButtons   = 8
	MaxGamepads       = 4
	MaxGamepadAxis    = 8
	MaxGamepadButtons = 32
	MaxTouchPoints    = 8

	// MaxKeyPressedQueue is the capacity of the per frame key queue
	MaxKeyPressedQueue = 16
	// MaxCharPressedQueue is the capacity of the per frame unicode char queue
	MaxCharPressedQueue = 16

	// MaxDecompressionSize is the maximum size allocated for decompression in megabytes
	MaxDecompressionSize = 64
)

// DontCare lets the native windowing library pick a value, e.g.
// the refresh rate when moving a window onto a monitor.
const DontCare = -1
