package rcore

import (
	"time"

	"github.com/oliverbestmann/rcore/glm"
)

type stubMonitor struct {
	name   string
	bounds glm.Recti
	noMode bool
}

func (m *stubMonitor) Name() string {
	return m.name
}

func (m *stubMonitor) Position() (x, y int) {
	return m.bounds.X, m.bounds.Y
}

func (m *stubMonitor) VideoMode() (VideoMode, bool) {
	if m.noMode {
		return VideoMode{}, false
	}

	return VideoMode{Width: m.bounds.Width, Height: m.bounds.Height, RefreshRate: 60}, true
}

func (m *stubMonitor) PhysicalSize() (int, int) {
	return m.bounds.Width / 4, m.bounds.Height / 4
}

type setMonitorCall struct {
	monitor             Monitor
	x, y, width, height int
	refreshRate         int
}

// stubPlatform simulates a native windowing library with a single window
type stubPlatform struct {
	monitors []Monitor

	// monitor the window is assigned to in fullscreen mode
	windowMonitor Monitor

	pos       glm.Point
	size      glm.Size
	title     string
	decorated bool

	cursorVisible bool

	setMonitorCalls []setMonitorCall
	pollCalls       int
	waited          bool

	// events run within PollEvents
	events []func()

	gamepads map[int]GamepadState

	now float64
}

func newStubPlatform(monitors ...Monitor) *stubPlatform {
	return &stubPlatform{monitors: monitors, decorated: true}
}

func (p *stubPlatform) Monitors() []Monitor {
	return p.monitors
}

func (p *stubPlatform) WindowMonitor() Monitor {
	return p.windowMonitor
}

func (p *stubPlatform) SetWindowMonitor(monitor Monitor, x, y, width, height, refreshRate int) {
	p.setMonitorCalls = append(p.setMonitorCalls, setMonitorCall{monitor, x, y, width, height, refreshRate})

	p.windowMonitor = monitor
	p.size = glm.Size{Width: width, Height: height}

	if monitor != nil {
		p.pos.X, p.pos.Y = monitor.Position()
	} else {
		p.pos = glm.Point{X: x, Y: y}
	}
}

func (p *stubPlatform) WindowPosition() (int, int) {
	return p.pos.X, p.pos.Y
}

func (p *stubPlatform) SetWindowPosition(x, y int) {
	p.pos = glm.Point{X: x, Y: y}
}

func (p *stubPlatform) SetWindowSize(width, height int) {
	p.size = glm.Size{Width: width, Height: height}
}

func (p *stubPlatform) SetWindowSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) {
}

func (p *stubPlatform) SetWindowTitle(title string) {
	p.title = title
}

func (p *stubPlatform) SetWindowDecorated(decorated bool) {
	p.decorated = decorated
}

func (p *stubPlatform) SetCursorVisible(visible bool) {
	p.cursorVisible = visible
}

func (p *stubPlatform) PollEvents(wait bool) {
	p.pollCalls++
	p.waited = wait

	events := p.events
	p.events = nil

	for _, event := range events {
		event()
	}
}

func (p *stubPlatform) GamepadState(index int) (GamepadState, bool) {
	state, ok := p.gamepads[index]
	return state, ok
}

func (p *stubPlatform) Time() float64 {
	return p.now
}

func dualMonitors() (*stubMonitor, *stubMonitor) {
	left := &stubMonitor{name: "left", bounds: glm.RectOf(0, 0, 1920, 1080)}
	right := &stubMonitor{name: "right", bounds: glm.RectOf(1920, 0, 1920, 1080)}
	return left, right
}

// newTestCore returns a ready core attached to the given platform
func newTestCore(platform *stubPlatform) *CoreData {
	core := NewCoreData("test", 800, 600)
	core.sleep = func(time.Duration) {}
	core.Attach(platform)
	return core
}
