// SPDX-License-Identifier: MIT

// Package vec3 provides the 3-D vector and angle primitives used by the
// chain samplers.
//
// What is inside:
//
//   - thin wrappers over gonum's r3.Vec (Cross, Dot, Norm, Unit, Add, Scale);
//   - Angle, a radian value type with Cos/Sin/Degrees helpers;
//   - random draws over the sphere: RandomAzimuth, RandomPolar, RandomUnit;
//   - ConeStep, the freely-rotating-chain construction that turns a bond by a
//     fixed polar angle around the previous bond with a random azimuth.
//
// Randomness:
//
//	Every random helper takes an explicit *rand.Rand (math/rand/v2).
//	There is no package-level generator, so a seeded source always
//	reproduces the same sequence of vectors.
//
// Usage:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	b0 := vec3.RandomUnit(rng)
//	b1 := vec3.ConeStep(rng, b0, vec3.DegToAngle(30))
//	fmt.Println(vec3.Dot(b0, b1)) // cos(30°)
package vec3
