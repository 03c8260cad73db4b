package orion

import (
	"testing"

	"github.com/oliverbestmann/rcore/glm"
)

func TestDefaultScreenTransform(t *testing.T) {
	tests := []struct {
		name     string
		surface  glm.Vec2f
		screen   glm.Vec2f
		expected ScreenTransform
	}{
		{"same size", glm.Vec2f{800, 600}, glm.Vec2f{800, 600}, ScreenTransform{1, glm.Vec2f{0, 0}}},
		{"scaled", glm.Vec2f{1600, 1200}, glm.Vec2f{800, 600}, ScreenTransform{2, glm.Vec2f{0, 0}}},
		{"pillarbox", glm.Vec2f{1000, 600}, glm.Vec2f{800, 600}, ScreenTransform{1, glm.Vec2f{100, 0}}},
		{"letterbox", glm.Vec2f{800, 800}, glm.Vec2f{800, 600}, ScreenTransform{1, glm.Vec2f{0, 100}}},
		{"empty surface", glm.Vec2f{0, 0}, glm.Vec2f{800, 600}, ScreenTransform{Scale: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := DefaultScreenTransform(tc.surface, tc.screen)
			if actual != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, actual)
			}
		})
	}
}

func TestScreenTransformToScreen(t *testing.T) {
	transform := DefaultScreenTransform(glm.Vec2f{1000, 600}, glm.Vec2f{400, 300})

	// scale 2, 100 pixels of border left and right
	actual := transform.ToScreen(glm.Vec2f{500, 300})
	if actual != (glm.Vec2f{200, 150}) {
		t.Fatalf("expected center of the virtual screen, got %v", actual)
	}
}

type fixedLayout struct {
	funcGame
	width, height int
}

func (g *fixedLayout) Layout(screenWidth, screenHeight int) (int, int) {
	return g.width, g.height
}

func TestLayoutMapsMousePosition(t *testing.T) {
	core, platform := newTestCore()

	// window is 800x600, the virtual screen half the size
	game := &fixedLayout{width: 400, height: 300}
	state := &LoopState{Core: core, Game: game}

	platform.frames = [][]func(){
		{func() { core.OnCursorPos(400, 300) }},
	}

	mustLoopOnce(t, state)

	actual := core.GetMousePosition()
	if actual != (glm.Vec2f{200, 150}) {
		t.Fatalf("expected mouse in virtual screen coordinates, got %v", actual)
	}

	expected := DefaultScreenTransform(glm.Vec2f{800, 600}, glm.Vec2f{400, 300}).ToScreen(glm.Vec2f{400, 300})
	if actual != expected {
		t.Fatalf("expected mouse mapping to match ToScreen, got %v and %v", actual, expected)
	}
}

func TestLayoutFallsBackToWindowSize(t *testing.T) {
	core, _ := newTestCore()

	var previous layoutState
	updateLayout(core, &fixedLayout{}, &previous)

	if previous.screen != (glm.Size{Width: 800, Height: 600}) {
		t.Fatalf("expected window size as virtual screen, got %+v", previous.screen)
	}

	if core.Input.Mouse.Scale != (glm.Vec2f{1, 1}) {
		t.Fatalf("expected identity mouse scale, got %v", core.Input.Mouse.Scale)
	}
}
