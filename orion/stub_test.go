package orion

import (
	"github.com/oliverbestmann/rcore/glm"
	"github.com/oliverbestmann/rcore/rcore"
)

type stubMonitor struct {
	name   string
	bounds glm.Recti
}

func (m *stubMonitor) Name() string {
	return m.name
}

func (m *stubMonitor) Position() (x, y int) {
	return m.bounds.X, m.bounds.Y
}

func (m *stubMonitor) VideoMode() (rcore.VideoMode, bool) {
	return rcore.VideoMode{Width: m.bounds.Width, Height: m.bounds.Height, RefreshRate: 60}, true
}

func (m *stubMonitor) PhysicalSize() (int, int) {
	return 0, 0
}

// stubPlatform runs one queued frame of events per PollEvents call
type stubPlatform struct {
	monitors      []rcore.Monitor
	windowMonitor rcore.Monitor

	pos       glm.Point
	size      glm.Size
	decorated bool

	frames [][]func()
	now    float64
}

func (p *stubPlatform) Monitors() []rcore.Monitor {
	return p.monitors
}

func (p *stubPlatform) WindowMonitor() rcore.Monitor {
	return p.windowMonitor
}

func (p *stubPlatform) SetWindowMonitor(monitor rcore.Monitor, x, y, width, height, refreshRate int) {
	p.windowMonitor = monitor
	if monitor == nil {
		p.pos = glm.Point{X: x, Y: y}
	}

	p.size = glm.Size{Width: width, Height: height}
}

func (p *stubPlatform) WindowPosition() (x, y int) {
	return p.pos.X, p.pos.Y
}

func (p *stubPlatform) SetWindowPosition(x, y int) {
	p.pos = glm.Point{X: x, Y: y}
}

func (p *stubPlatform) SetWindowSize(width, height int) {
	p.size = glm.Size{Width: width, Height: height}
}

func (p *stubPlatform) SetWindowSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) {}

func (p *stubPlatform) SetWindowTitle(title string) {}

func (p *stubPlatform) SetWindowDecorated(decorated bool) {
	p.decorated = decorated
}

func (p *stubPlatform) SetCursorVisible(visible bool) {}

func (p *stubPlatform) PollEvents(wait bool) {
	if len(p.frames) == 0 {
		return
	}

	events := p.frames[0]
	p.frames = p.frames[1:]

	for _, event := range events {
		event()
	}
}

func (p *stubPlatform) GamepadState(index int) (rcore.GamepadState, bool) {
	return rcore.GamepadState{}, false
}

func (p *stubPlatform) Time() float64 {
	p.now += 0.001
	return p.now
}

func newTestCore() (*rcore.CoreData, *stubPlatform) {
	platform := &stubPlatform{
		monitors: []rcore.Monitor{
			&stubMonitor{name: "Primary", bounds: glm.RectOf(0, 0, 1920, 1080)},
		},
		pos:       glm.Point{X: 100, Y: 50},
		size:      glm.Size{Width: 800, Height: 600},
		decorated: true,
	}

	core := rcore.NewCoreData("test", 800, 600)
	core.SetTargetFPS(0)
	core.Attach(platform)

	return core, platform
}

type funcGame struct {
	initialized int
	updates     int
	update      func() error
}

func (g *funcGame) Initialize() error {
	g.initialized++
	return nil
}

func (g *funcGame) Update() error {
	g.updates++

	if g.update != nil {
		return g.update()
	}

	return nil
}
