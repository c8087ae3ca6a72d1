// SPDX-License-Identifier: MIT

package vec3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a 3-D vector. It is gonum's r3.Vec, so values interoperate with the
// rest of the gonum spatial tooling.
type Vec = r3.Vec

// Zero is the origin.
var Zero = Vec{}

// Basis vectors.
var (
	UnitX = Vec{X: 1}
	UnitY = Vec{Y: 1}
	UnitZ = Vec{Z: 1}
)

// Of builds a vector from its components.
func Of(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Cross returns u × v. Always defined for finite inputs.
func Cross(u, v Vec) Vec {
	return r3.Cross(u, v)
}

// Dot returns u · v.
func Dot(u, v Vec) float64 {
	return r3.Dot(u, v)
}

// Add returns u + v.
func Add(u, v Vec) Vec {
	return r3.Add(u, v)
}

// Scale returns f·v.
func Scale(f float64, v Vec) Vec {
	return r3.Scale(f, v)
}

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 {
	return r3.Norm(v)
}

// Unit returns v scaled to unit length. The zero vector is returned
// unchanged instead of producing NaN components.
func Unit(v Vec) Vec {
	if r3.Norm2(v) == 0 {
		return v
	}
	return r3.Unit(v)
}
