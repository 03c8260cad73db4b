package orion

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oliverbestmann/rcore/orion/config"
	"github.com/oliverbestmann/rcore/rcore"
)

func TestRunLoopUntilClose(t *testing.T) {
	core, _ := newTestCore()

	game := &funcGame{}
	game.update = func() error {
		if game.updates == 3 {
			core.OnClose()
		}

		return nil
	}

	err := runLoop(&LoopState{Core: core, Game: game})
	if err != nil {
		t.Fatalf("runLoop() failed: %v", err)
	}

	if game.initialized != 1 {
		t.Fatalf("expected a single Initialize call, got %d", game.initialized)
	}

	if game.updates != 3 {
		t.Fatalf("expected 3 updates, got %d", game.updates)
	}

	if core.Time.FrameCounter != 3 {
		t.Fatalf("expected 3 frames, got %d", core.Time.FrameCounter)
	}
}

func TestRunLoopStopsOnError(t *testing.T) {
	core, _ := newTestCore()

	errBoom := errors.New("boom")

	game := &funcGame{update: func() error { return errBoom }}

	err := runLoop(&LoopState{Core: core, Game: game})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom error, got %v", err)
	}

	if core.Time.FrameCounter != 0 {
		t.Fatalf("expected no completed frame, got %d", core.Time.FrameCounter)
	}
}

func TestExitKeyClosesWindow(t *testing.T) {
	core, platform := newTestCore()

	platform.frames = [][]func(){
		{func() { core.OnKey(rcore.KeyEscape, rcore.ActionPress) }},
	}

	game := &funcGame{}

	if err := runLoop(&LoopState{Core: core, Game: game}); err != nil {
		t.Fatalf("runLoop() failed: %v", err)
	}

	if game.updates != 1 {
		t.Fatalf("expected the loop to stop after one frame, got %d updates", game.updates)
	}
}

func TestFullscreenHotkey(t *testing.T) {
	core, platform := newTestCore()

	state := &LoopState{
		Core:  core,
		Game:  &funcGame{},
		Input: config.Default().Input,
	}

	platform.frames = [][]func(){
		{func() { core.OnKey(rcore.KeyF11, rcore.ActionPress) }},
		{func() { core.OnKey(rcore.KeyF11, rcore.ActionRelease) }},
		{func() { core.OnKey(rcore.KeyF11, rcore.ActionPress) }},
	}

	// collects the first key press
	mustLoopOnce(t, state)

	if core.IsWindowFullscreen() {
		t.Fatalf("expected windowed mode before the hotkey is handled")
	}

	mustLoopOnce(t, state)

	if !core.IsWindowFullscreen() || platform.windowMonitor == nil {
		t.Fatalf("expected fullscreen mode after the hotkey")
	}

	mustLoopOnce(t, state)
	mustLoopOnce(t, state)

	if core.IsWindowFullscreen() || platform.windowMonitor != nil {
		t.Fatalf("expected windowed mode after the second hotkey")
	}

	if platform.pos.X != 100 || platform.pos.Y != 50 {
		t.Fatalf("expected window position to be restored, got %+v", platform.pos)
	}
}

func TestBorderlessHotkey(t *testing.T) {
	core, platform := newTestCore()

	state := &LoopState{
		Core:  core,
		Game:  &funcGame{},
		Input: config.Default().Input,
	}

	platform.frames = [][]func(){
		{func() { core.OnKey(rcore.KeyF10, rcore.ActionPress) }},
	}

	mustLoopOnce(t, state)
	mustLoopOnce(t, state)

	if !core.IsWindowState(rcore.FlagBorderlessWindowedMode) {
		t.Fatalf("expected borderless windowed mode")
	}

	if platform.decorated {
		t.Fatalf("expected undecorated window")
	}

	if core.GetScreenWidth() != 1920 || core.GetScreenHeight() != 1080 {
		t.Fatalf("expected window to cover the monitor, got %dx%d", core.GetScreenWidth(), core.GetScreenHeight())
	}
}

func TestDisabledHotkeys(t *testing.T) {
	core, platform := newTestCore()

	state := &LoopState{Core: core, Game: &funcGame{}}

	platform.frames = [][]func(){
		{func() { core.OnKey(rcore.KeyF11, rcore.ActionPress) }},
	}

	mustLoopOnce(t, state)
	mustLoopOnce(t, state)

	if core.IsWindowFullscreen() {
		t.Fatalf("expected no fullscreen toggle without a configured hotkey")
	}
}

func mustLoopOnce(t *testing.T, state *LoopState) {
	t.Helper()

	if err := loopOnce(state); err != nil {
		t.Fatalf("loopOnce() failed: %v", err)
	}
}

func TestDebugStatsRecordsFrames(t *testing.T) {
	core, _ := newTestCore()

	DebugStats.reset()
	t.Cleanup(DebugStats.reset)

	state := &LoopState{Core: core, Game: &funcGame{}}

	for range 5 {
		mustLoopOnce(t, state)
	}

	if DebugStats.frameCount != 5 {
		t.Fatalf("expected 5 recorded frames, got %d", DebugStats.frameCount)
	}

	if DebugStats.fps() <= 0 || DebugStats.maxFrame() <= 0 {
		t.Fatalf("expected frame timing to be recorded")
	}

	if text := DebugStats.buildText(); !strings.Contains(text, "Frames: 5") {
		t.Fatalf("unexpected debug text:\n%s", text)
	}
}

func TestDebugStatsSplitsFrameTime(t *testing.T) {
	var stats debugStats

	core := rcore.NewCoreData("test", 800, 600)

	// binary fractions of a second to keep the math exact
	core.Time.Update = 1.0 / 1024
	core.Time.Draw = 1.0 / 256
	core.Time.Frame = 1.0 / 64

	stats.recordFrame(core)

	game, wait := stats.averages()
	if game != 3906250*time.Nanosecond {
		t.Fatalf("expected game time of the draw phase, got %s", game)
	}

	if wait <= 10*time.Millisecond || wait >= 11*time.Millisecond {
		t.Fatalf("expected remaining frame time as wait, got %s", wait)
	}

	text := stats.buildText()
	for _, expected := range []string{"Game update:   3.91ms", "Frame wait:    10.74ms"} {
		if !strings.Contains(text, expected) {
			t.Fatalf("expected %q in debug text:\n%s", expected, text)
		}
	}
}
