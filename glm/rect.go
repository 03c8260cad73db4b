package glm

// Rect is an axis aligned rectangle described by its top left
// corner and its size. The right and bottom edges are exclusive.
type Rect[T numeric] struct {
	X, Y          T
	Width, Height T
}

func RectOf[T numeric](x, y, width, height T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

func (r Rect[T]) Contains(x, y T) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}
