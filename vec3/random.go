// SPDX-License-Identifier: MIT

package vec3

import (
	"math"
	"math/rand/v2"
)

// degenerateCross is the squared length below which cross(r, t) is treated
// as parallel input and the auxiliary vector is redrawn.
const degenerateCross = 1e-12

// RandomAzimuth returns φ uniformly sampled from [0, 2π).
func RandomAzimuth(rng *rand.Rand) Angle {
	return Angle(2 * math.Pi * rng.Float64())
}

// RandomPolar returns θ = arccos(1 − 2u) for u ~ U[0,1), which makes cos θ
// uniform on (−1, 1] and therefore the resulting direction uniform over the
// sphere surface. Sampling θ itself uniformly would cluster at the poles.
func RandomPolar(rng *rand.Rand) Angle {
	return Angle(math.Acos(1 - 2*rng.Float64()))
}

// RandomUnit returns a unit vector uniformly distributed over the sphere.
// The azimuth is drawn first, then the polar angle.
func RandomUnit(rng *rand.Rand) Vec {
	phi := RandomAzimuth(rng)
	theta := RandomPolar(rng)
	s := theta.Sin()
	return Vec{
		X: s * phi.Cos(),
		Y: s * phi.Sin(),
		Z: theta.Cos(),
	}
}

// ConeStep returns a unit vector making exactly the angle theta with prev,
// with the azimuth around prev drawn uniformly from [0, 2π).
//
// Construction:
//  1. r = unit(prev); draw an auxiliary direction t.
//  2. u = unit(r × t), v = r × u, so {r, u, v} is orthonormal.
//  3. bond = (u·cos φ + v·sin φ)·sin θ + r·cos θ.
//
// A t (nearly) parallel to r gives a vanishing r × t; t is redrawn until the
// cross product is well conditioned.
//
// A zero or non-finite prev has no direction to keep an angle to; the result
// is then an isotropic unit vector, as for the first bond of a chain.
func ConeStep(rng *rand.Rand, prev Vec, theta Angle) Vec {
	return coneStep(rng, prev, theta, RandomUnit)
}

// coneStep is ConeStep with the auxiliary-direction source made explicit.
func coneStep(rng *rand.Rand, prev Vec, theta Angle, aux func(*rand.Rand) Vec) Vec {
	if !usable(prev) {
		return RandomUnit(rng)
	}
	r := Unit(prev)

	var u Vec
	for {
		u = Cross(r, aux(rng))
		if Dot(u, u) > degenerateCross {
			break
		}
	}
	u = Unit(u)
	v := Cross(r, u)

	phi := RandomAzimuth(rng)
	ring := Add(Scale(phi.Cos(), u), Scale(phi.Sin(), v))
	return Add(Scale(theta.Sin(), ring), Scale(theta.Cos(), r))
}

// usable reports whether v is finite and non-zero.
func usable(v Vec) bool {
	n2 := Dot(v, v)
	return n2 > 0 && !math.IsInf(n2, 0) && !math.IsNaN(n2)
}
