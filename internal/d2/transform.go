package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform is a 2x2 linear map about the origin. Rotations and
// reflections are the only rigid motions an origin-centered outline
// needs, so there is no translation column.
type Transform struct {
	m00, m01 float64
	m10, m11 float64
}

// Identity returns the do-nothing transform.
func Identity() Transform {
	return Transform{1, 0, 0, 1}
}

// Rotate returns a counter-clockwise rotation by theta radians.
func Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{cos, -sin, sin, cos}
}

// Reflect returns an axis-aligned mirror. flipX negates the x
// components, flipY the y components.
func Reflect(flipX, flipY bool) Transform {
	t := Identity()
	if flipX {
		t.m00 = -1
	}
	if flipY {
		t.m11 = -1
	}
	return t
}

// Mul composes transforms: the result applies b first, then a.
func (a Transform) Mul(b Transform) Transform {
	return Transform{
		m00: a.m00*b.m00 + a.m01*b.m10,
		m01: a.m00*b.m01 + a.m01*b.m11,
		m10: a.m10*b.m00 + a.m11*b.m10,
		m11: a.m10*b.m01 + a.m11*b.m11,
	}
}

// ApplyPos transforms a single point.
func (a Transform) ApplyPos(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.m00*v.X + a.m01*v.Y,
		Y: a.m10*v.X + a.m11*v.Y,
	}
}

// ApplySet transforms a vertex set in place.
func (a Transform) ApplySet(s Set) {
	for i := range s {
		s[i] = a.ApplyPos(s[i])
	}
}
