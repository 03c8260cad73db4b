package glm

type Vec2[T numeric] [2]T

// Mul multiplies both vectors component wise
func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs Vec2[T]) X() T {
	return lhs[0]
}

func (lhs Vec2[T]) Y() T {
	return lhs[1]
}
