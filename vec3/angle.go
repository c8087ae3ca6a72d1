// SPDX-License-Identifier: MIT

package vec3

import "math"

// Angle is an angle in radians.
type Angle float64

// DegToAngle converts degrees to an Angle.
func DegToAngle(deg float64) Angle {
	return Angle(math.Pi / 180 * deg)
}

// Radians returns the value of the angle in radians as float64.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * (180 / math.Pi)
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Between returns the angle between u and v in [0, π].
// Zero-length inputs yield 0.
func Between(u, v Vec) Angle {
	nu, nv := Norm(u), Norm(v)
	if nu == 0 || nv == 0 {
		return 0
	}
	c := Dot(u, v) / (nu * nv)
	// rounding can push |c| slightly past 1
	c = math.Max(-1, math.Min(1, c))
	return Angle(math.Acos(c))
}
