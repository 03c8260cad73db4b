package glm

// Mat4 is a 4x4 matrix in column major order, matching the
// layout OpenGL style renderers expect.
type Mat4[T numeric] [16]T

func IdentityMat4[T numeric]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TranslationMat4[T numeric](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ScaleMat4[T numeric](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	var result Mat4[T]

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += lhs[k*4+row] * rhs[col*4+k]
			}

			result[col*4+row] = sum
		}
	}

	return result
}

func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4(x, y, z))
}

// Transform applies the matrix to the point (x, y, 0, 1)
// and returns the resulting x and y coordinates.
func (lhs Mat4[T]) Transform(v Vec2[T]) Vec2[T] {
	x, y := v.XY()

	return Vec2[T]{
		lhs[0]*x + lhs[4]*y + lhs[12],
		lhs[1]*x + lhs[5]*y + lhs[13],
	}
}
