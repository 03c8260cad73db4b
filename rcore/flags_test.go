package rcore

import "testing"

func TestConfigFlagsOperations(t *testing.T) {
	var flags ConfigFlags

	flags.Set(FlagVsyncHint | FlagWindowResizable)
	if !flags.Has(FlagVsyncHint) || !flags.Has(FlagWindowResizable) || flags.Len() != 2 {
		t.Fatalf("unexpected flags %s", flags)
	}

	flags.Clear(FlagVsyncHint)
	if flags.Has(FlagVsyncHint) {
		t.Fatalf("expected vsync to be cleared")
	}

	flags.Toggle(FlagFullscreenMode)
	flags.Toggle(FlagWindowResizable)
	if flags != FlagFullscreenMode {
		t.Fatalf("unexpected flags after toggle: %s", flags)
	}

	flags.Assign(FlagWindowTopmost, true)
	flags.Assign(FlagFullscreenMode, false)
	if flags != FlagWindowTopmost {
		t.Fatalf("unexpected flags after assign: %s", flags)
	}
}

func TestConfigFlagsText(t *testing.T) {
	flags := FlagVsyncHint | FlagFullscreenMode

	text, err := flags.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	if string(text) != "fullscreen_mode|vsync_hint" {
		t.Fatalf("unexpected text %q", text)
	}

	var parsed ConfigFlags
	if err := parsed.UnmarshalText([]byte("VSYNC_HINT | window_highdpi")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}

	if parsed != FlagVsyncHint|FlagWindowHighDPI {
		t.Fatalf("unexpected parsed flags %s", parsed)
	}

	if err := parsed.UnmarshalText([]byte("no_such_flag")); err == nil {
		t.Fatalf("expected error for unknown flag")
	}

	if ConfigFlags(0).String() != "none" {
		t.Fatalf("unexpected empty flags text")
	}
}

func TestFullscreenFollowsFlag(t *testing.T) {
	var window Window

	window.Flags.Set(FlagFullscreenMode)
	if !window.Fullscreen() {
		t.Fatalf("expected fullscreen")
	}

	window.Flags.Clear(FlagFullscreenMode)
	if window.Fullscreen() {
		t.Fatalf("expected windowed")
	}
}
