package orion

type Game interface {
	Initialize() error
	Update() error
}

// Layouter can be implemented by a Game to work on a virtual screen of
// a fixed size. The mouse position is then reported in virtual screen
// coordinates, letterboxed into the actual window.
type Layouter interface {
	Layout(screenWidth, screenHeight int) (width, height int)
}
