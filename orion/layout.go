package orion

import (
	"log/slog"

	"github.com/oliverbestmann/rcore/glm"
	"github.com/oliverbestmann/rcore/rcore"
)

// ScreenTransform maps a virtual screen into the window. A point p on
// the virtual screen is shown at p*Scale + Offset.
type ScreenTransform struct {
	Scale  float32
	Offset glm.Vec2f
}

// DefaultScreenTransform fits screenSize into surfaceSize, keeping the
// aspect ratio and centering the result.
func DefaultScreenTransform(surfaceSize, screenSize glm.Vec2f) ScreenTransform {
	cw, ch := screenSize.XY()
	sw, sh := surfaceSize.XY()

	if cw <= 0 || ch <= 0 || sw <= 0 || sh <= 0 {
		return ScreenTransform{Scale: 1}
	}

	canvasAspect := cw / ch
	screenAspect := sw / sh

	var scale float32
	var xOffset, yOffset float32

	if canvasAspect >= screenAspect {
		scale = sw / cw
		yOffset = (sh - ch*scale) / 2
	} else {
		scale = sh / ch
		xOffset = (sw - cw*scale) / 2
	}

	return ScreenTransform{
		Scale:  scale,
		Offset: glm.Vec2f{xOffset, yOffset},
	}
}

// Inverse returns the matrix mapping window coordinates onto the virtual screen
func (t ScreenTransform) Inverse() glm.Mat4f {
	return glm.ScaleMat4(1/t.Scale, 1/t.Scale, 1).
		Translate(-t.Offset[0], -t.Offset[1], 0)
}

// ToScreen maps a point in window coordinates onto the virtual screen
func (t ScreenTransform) ToScreen(p glm.Vec2f) glm.Vec2f {
	return t.Inverse().Transform(p)
}

// applyMouseTransform configures the mouse offset and scale of the
// core so that GetMousePosition reports virtual screen coordinates.
func applyMouseTransform(core *rcore.CoreData, t ScreenTransform) {
	core.SetMouseOffset(-t.Offset[0], -t.Offset[1])
	core.SetMouseScale(1/t.Scale, 1/t.Scale)
}

type layoutState struct {
	window glm.Size
	screen glm.Size
}

// updateLayout asks the game for its virtual screen size and
// updates the mouse mapping if the layout changed.
func updateLayout(core *rcore.CoreData, layouter Layouter, previous *layoutState) {
	window := glm.Size{
		Width:  core.GetScreenWidth(),
		Height: core.GetScreenHeight(),
	}

	width, height := layouter.Layout(window.Width, window.Height)
	if width <= 0 || height <= 0 {
		width, height = window.Width, window.Height
	}

	current := layoutState{window: window, screen: glm.Size{Width: width, Height: height}}
	if current == *previous {
		return
	}

	*previous = current

	transform := DefaultScreenTransform(window.Vec2f(), current.screen.Vec2f())
	applyMouseTransform(core, transform)

	slog.Debug("Update screen layout",
		slog.Int("windowWidth", window.Width),
		slog.Int("windowHeight", window.Height),
		slog.Int("screenWidth", width),
		slog.Int("screenHeight", height),
		slog.Float64("scale", float64(transform.Scale)),
	)
}
