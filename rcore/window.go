package rcore

import (
	"log/slog"

	"github.com/oliverbestmann/rcore/glm"
)

// WindowShouldClose reports whether the user requested the window to close,
// either with the close button or the exit key. It returns false as long as
// the window was not initialized.
func (c *CoreData) WindowShouldClose() bool {
	if !c.Window.Ready {
		return false
	}

	return c.Window.ShouldClose
}

func (c *CoreData) IsWindowReady() bool {
	return c.Window.Ready
}

func (c *CoreData) IsWindowFullscreen() bool {
	return c.Window.Fullscreen()
}

func (c *CoreData) IsWindowHidden() bool {
	return c.Window.Flags.Has(FlagWindowHidden)
}

func (c *CoreData) IsWindowMinimized() bool {
	return c.Window.Flags.Has(FlagWindowMinimized)
}

func (c *CoreData) IsWindowMaximized() bool {
	return c.Window.Flags.Has(FlagWindowMaximized)
}

func (c *CoreData) IsWindowFocused() bool {
	return !c.Window.Flags.Has(FlagWindowUnfocused)
}

func (c *CoreData) IsWindowResized() bool {
	return c.Window.ResizedLastFrame
}

// IsWindowState reports whether all the given options are set
func (c *CoreData) IsWindowState(flags ConfigFlags) bool {
	return c.Window.Flags.Has(flags)
}

func (c *CoreData) GetScreenWidth() int {
	return c.Window.Screen.Width
}

func (c *CoreData) GetScreenHeight() int {
	return c.Window.Screen.Height
}

func (c *CoreData) GetRenderWidth() int {
	return c.Window.Render.Width
}

func (c *CoreData) GetRenderHeight() int {
	return c.Window.Render.Height
}

func (c *CoreData) GetWindowPosition() glm.Point {
	if c.Platform == nil {
		return c.Window.Position
	}

	x, y := c.Platform.WindowPosition()
	return glm.Point{X: x, Y: y}
}

func (c *CoreData) SetWindowTitle(title string) {
	c.Window.Title = title

	if c.Platform != nil {
		c.Platform.SetWindowTitle(title)
	}
}

func (c *CoreData) SetWindowPosition(x, y int) {
	c.Window.Position = glm.Point{X: x, Y: y}

	if c.Platform != nil {
		c.Platform.SetWindowPosition(x, y)
	}
}

func (c *CoreData) SetWindowSize(width, height int) {
	c.Window.Screen = glm.Size{Width: width, Height: height}

	if c.Platform != nil {
		c.Platform.SetWindowSize(width, height)
	}
}

// SetWindowMinSize limits the size of a resizable window. A zero size removes the limit.
func (c *CoreData) SetWindowMinSize(width, height int) {
	c.Window.ScreenMin = glm.Size{Width: width, Height: height}
	c.applySizeLimits()
}

// SetWindowMaxSize limits the size of a resizable window. A zero size removes the limit.
func (c *CoreData) SetWindowMaxSize(width, height int) {
	c.Window.ScreenMax = glm.Size{Width: width, Height: height}
	c.applySizeLimits()
}

func (c *CoreData) applySizeLimits() {
	if c.Platform == nil {
		return
	}

	limit := func(value int) int {
		if value == 0 {
			return DontCare
		}

		return value
	}

	c.Platform.SetWindowSizeLimits(
		limit(c.Window.ScreenMin.Width), limit(c.Window.ScreenMin.Height),
		limit(c.Window.ScreenMax.Width), limit(c.Window.ScreenMax.Height),
	)
}

func (c *CoreData) IsFileDropped() bool {
	return len(c.Window.DropFilepaths) > 0
}

// LoadDroppedFiles returns a copy of the paths dropped onto the window
func (c *CoreData) LoadDroppedFiles() []string {
	return append([]string(nil), c.Window.DropFilepaths...)
}

func (c *CoreData) ClearDroppedFiles() {
	if len(c.Window.DropFilepaths) > 0 {
		slog.Debug("Clear dropped files", slog.Int("count", len(c.Window.DropFilepaths)))
	}

	c.Window.DropFilepaths = nil
}
