package rcore

import (
	"fmt"
	"math/bits"
	"strings"
)

// ConfigFlags is a set of window configuration options. A single option
// is a ConfigFlags value with exactly one bit set.
type ConfigFlags uint32

const (
	FlagFullscreenMode         ConfigFlags = 0x00000002
	FlagWindowResizable        ConfigFlags = 0x00000004
	FlagWindowUndecorated      ConfigFlags = 0x00000008
	FlagWindowTransparent      ConfigFlags = 0x00000010
	FlagMSAA4xHint             ConfigFlags = 0x00000020
	FlagVsyncHint              ConfigFlags = 0x00000040
	FlagWindowHidden           ConfigFlags = 0x00000080
	FlagWindowAlwaysRun        ConfigFlags = 0x00000100
	FlagWindowMinimized        ConfigFlags = 0x00000200
	FlagWindowMaximized        ConfigFlags = 0x00000400
	FlagWindowUnfocused        ConfigFlags = 0x00000800
	FlagWindowTopmost          ConfigFlags = 0x00001000
	FlagWindowHighDPI          ConfigFlags = 0x00002000
	FlagWindowMousePassthrough ConfigFlags = 0x00004000
	FlagBorderlessWindowedMode ConfigFlags = 0x00008000
	FlagInterlacedHint         ConfigFlags = 0x00010000
)

var flagNames = []struct {
	flag ConfigFlags
	name string
}{
	{FlagFullscreenMode, "fullscreen_mode"},
	{FlagWindowResizable, "window_resizable"},
	{FlagWindowUndecorated, "window_undecorated"},
	{FlagWindowTransparent, "window_transparent"},
	{FlagMSAA4xHint, "msaa_4x_hint"},
	{FlagVsyncHint, "vsync_hint"},
	{FlagWindowHidden, "window_hidden"},
	{FlagWindowAlwaysRun, "window_always_run"},
	{FlagWindowMinimized, "window_minimized"},
	{FlagWindowMaximized, "window_maximized"},
	{FlagWindowUnfocused, "window_unfocused"},
	{FlagWindowTopmost, "window_topmost"},
	{FlagWindowHighDPI, "window_highdpi"},
	{FlagWindowMousePassthrough, "window_mouse_passthrough"},
	{FlagBorderlessWindowedMode, "borderless_windowed_mode"},
	{FlagInterlacedHint, "interlaced_hint"},
}

// Has reports whether all options in other are part of the set
func (f ConfigFlags) Has(other ConfigFlags) bool {
	return f&other == other
}

func (f *ConfigFlags) Set(other ConfigFlags) {
	*f |= other
}

func (f *ConfigFlags) Clear(other ConfigFlags) {
	*f &^= other
}

func (f *ConfigFlags) Toggle(other ConfigFlags) {
	*f ^= other
}

// Assign sets or clears the given options depending on enabled
func (f *ConfigFlags) Assign(other ConfigFlags, enabled bool) {
	if enabled {
		f.Set(other)
	} else {
		f.Clear(other)
	}
}

func (f ConfigFlags) Len() int {
	return bits.OnesCount32(uint32(f))
}

// Names returns the names of all known options in the set
func (f ConfigFlags) Names() []string {
	var names []string

	for _, entry := range flagNames {
		if f.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}

	return names
}

func (f ConfigFlags) String() string {
	if f == 0 {
		return "none"
	}

	return strings.Join(f.Names(), "|")
}

// ParseConfigFlags parses a set of options joined by '|', as produced by String.
func ParseConfigFlags(text string) (ConfigFlags, error) {
	var result ConfigFlags

	text = strings.TrimSpace(text)
	if text == "" || text == "none" {
		return 0, nil
	}

	for _, part := range strings.Split(text, "|") {
		name := strings.ToLower(strings.TrimSpace(part))

		flag, ok := lookupFlag(name)
		if !ok {
			return 0, fmt.Errorf("unknown config flag %q", name)
		}

		result.Set(flag)
	}

	return result, nil
}

func lookupFlag(name string) (ConfigFlags, bool) {
	for _, entry := range flagNames {
		if entry.name == name {
			return entry.flag, true
		}
	}

	return 0, false
}

func (f ConfigFlags) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *ConfigFlags) UnmarshalText(text []byte) error {
	parsed, err := ParseConfigFlags(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
