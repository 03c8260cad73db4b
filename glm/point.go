package glm

// Point is a position in integer screen coordinates
type Point struct {
	X, Y int
}

// Size is a width and height pair in screen coordinates
type Size struct {
	Width, Height int
}

func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) Vec2f() Vec2f {
	return Vec2f{float32(s.Width), float32(s.Height)}
}
