package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/rcore/glm"
	"github.com/oliverbestmann/rcore/rcore"
	"github.com/oliverbestmann/rcore/storage"
)

// storage positions of the remembered window placement
const (
	storagePlacementSaved uint32 = iota
	storageWindowX
	storageWindowY
	storageWindowWidth
	storageWindowHeight
)

type placement struct {
	Position glm.Point
	Size     glm.Size
}

// windowedPlacement returns the placement the window has, or will get
// back, in plain windowed mode.
func windowedPlacement(core *rcore.CoreData) placement {
	switch {
	case core.Window.Flags.Has(rcore.FlagBorderlessWindowedMode):
		return placement{core.Window.PreviousPosition, core.Window.PreviousScreen}

	case core.IsWindowFullscreen():
		return placement{core.Window.Position, core.Window.Screen}

	default:
		return placement{core.GetWindowPosition(), core.Window.Screen}
	}
}

func savePlacement(store *storage.Store, core *rcore.CoreData) error {
	p := windowedPlacement(core)

	values := []struct {
		position uint32
		value    int
	}{
		{storageWindowX, p.Position.X},
		{storageWindowY, p.Position.Y},
		{storageWindowWidth, p.Size.Width},
		{storageWindowHeight, p.Size.Height},
		{storagePlacementSaved, 1},
	}

	for _, v := range values {
		if err := store.SaveStorageValue(v.position, int32(v.value)); err != nil {
			return fmt.Errorf("save window placement: %w", err)
		}
	}

	slog.Debug("Saved window placement",
		slog.Int("x", p.Position.X), slog.Int("y", p.Position.Y),
		slog.Int("width", p.Size.Width), slog.Int("height", p.Size.Height),
	)

	return nil
}

// loadPlacement reads the placement of the previous run. The result is
// false if no placement was saved.
func loadPlacement(store *storage.Store) (placement, bool, error) {
	var values [5]int32

	for idx := range values {
		value, err := store.LoadStorageValue(uint32(idx))
		if err != nil {
			return placement{}, false, fmt.Errorf("load window placement: %w", err)
		}

		values[idx] = value
	}

	if values[storagePlacementSaved] != 1 {
		return placement{}, false, nil
	}

	p := placement{
		Position: glm.Point{X: int(values[storageWindowX]), Y: int(values[storageWindowY])},
		Size:     glm.Size{Width: int(values[storageWindowWidth]), Height: int(values[storageWindowHeight])},
	}

	return p, true, nil
}

func restorePlacement(store *storage.Store, core *rcore.CoreData) error {
	p, ok, err := loadPlacement(store)
	if err != nil || !ok {
		return err
	}

	if core.IsWindowFullscreen() {
		// keep it for leaving fullscreen mode
		core.Window.Position = p.Position
		return nil
	}

	core.SetWindowPosition(p.Position.X, p.Position.Y)

	if p.Size.Width > 0 && p.Size.Height > 0 {
		core.SetWindowSize(p.Size.Width, p.Size.Height)
	}

	slog.Info("Restored window placement",
		slog.Int("x", p.Position.X), slog.Int("y", p.Position.Y),
		slog.Int("width", p.Size.Width), slog.Int("height", p.Size.Height),
	)

	return nil
}
