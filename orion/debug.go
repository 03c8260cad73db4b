package orion

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/oliverbestmann/rcore/rcore"
)

type frame struct {
	Total time.Duration

	// Game is the time between BeginFrame and EndFrame, spent in Game.Update
	Game time.Duration

	// Wait is the time spent waiting for the target frame time
	Wait time.Duration
}

// DebugStats records the timing of the last frames. Press the debug
// key of the config to write a report to the log.
var DebugStats debugStats

type debugStats struct {
	frameCount int
	frames     [60 * 10]frame

	mem runtime.MemStats
}

func seconds(value float64) time.Duration {
	return time.Duration(value * float64(time.Second))
}

// recordFrame stores the timing of the frame the core just finished
func (d *debugStats) recordFrame(core *rcore.CoreData) {
	total := core.Time.Frame
	game := core.Time.Draw

	d.frames[d.frameCount%len(d.frames)] = frame{
		Total: seconds(total),
		Game:  seconds(game),
		Wait:  seconds(max(0, total-core.Time.Update-game)),
	}

	d.frameCount += 1
}

func (d *debugStats) reset() {
	*d = debugStats{}
}

func (d *debugStats) fps() float64 {
	// calculate the average frame time
	var frameCount int
	var totalTime time.Duration

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			totalTime += frame.Total
		}
	}

	if frameCount == 0 {
		return 0
	}

	averageFrameTime := totalTime / time.Duration(frameCount)

	// calculate the frames per second
	return 1.0 / averageFrameTime.Seconds()
}

// averages returns the average game and wait time of the recorded frames
func (d *debugStats) averages() (game, wait time.Duration) {
	var frameCount int

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			game += frame.Game
			wait += frame.Wait
		}
	}

	if frameCount == 0 {
		return 0, 0
	}

	return game / time.Duration(frameCount), wait / time.Duration(frameCount)
}

// maxFrame returns the longest frame in the recorded window
func (d *debugStats) maxFrame() time.Duration {
	var longest time.Duration

	for _, frame := range d.frames {
		longest = max(longest, frame.Total)
	}

	return longest
}

func (d *debugStats) buildText() string {
	runtime.ReadMemStats(&d.mem)

	lastCycle := (d.mem.NumGC + 255) % 256
	lastCycleDur := time.Duration(d.mem.PauseNs[lastCycle])

	game, wait := d.averages()

	lines := []string{
		fmt.Sprintf("FPS: %1.2f", d.fps()),
		fmt.Sprintf("Frames: %d", d.frameCount),
		fmt.Sprintf("Longest frame: %1.2fms", d.maxFrame().Seconds()*1000),
		fmt.Sprintf("Game update:   %1.2fms", game.Seconds()*1000),
		fmt.Sprintf("Frame wait:    %1.2fms", wait.Seconds()*1000),
		"",
		"Memory",
		fmt.Sprintf("  Heap Objects: %d", d.mem.HeapObjects),
		fmt.Sprintf("  Heap InUse:   %1.2fmb", float64(d.mem.HeapInuse)/(1024.0*1024.0)),
		fmt.Sprintf("  Stack InUse:  %1.2fmb", float64(d.mem.StackInuse)/(1024.0*1024.0)),
		"",
		"GC:",
		fmt.Sprintf("  Cycles:   %d", d.mem.NumGC),
		fmt.Sprintf("  Fraction: %1.2f%%", d.mem.GCCPUFraction*100),
		fmt.Sprintf("  Duration: %1.2fms", lastCycleDur.Seconds()*1000),
	}

	return strings.Join(lines, "\n")
}

func (d *debugStats) report() {
	slog.Info("Debug stats\n" + d.buildText())
}
