// Package vqm64 implements the VQM composite transform in double precision.
//
// A VQM stores an affine transform as three separate parts: a rotation
// quaternion, a translation vector and a 3x3 scale/shear matrix kept as three
// unrotated axis vectors. Rotation and scale/shear do not interpolate the same
// way, and once they are mixed into the upper 3x3 of an affine matrix there is
// no unique way to pull them apart again. Keeping them apart lets rotation
// compose as a plain quaternion product while scale and shear still compose
// exactly.
//
// Composition follows the VQM-group of Aristidou and Li. For two transforms
// [v1, q1, M1] (applied first) and [v2, q2, M2] (applied second):
//
//	(R2 * M2) * (R1 * M1) = (R2 * R1) * M3
//	M3 = R1^-1 * M2 * R1 * M1
//
// Multiplying a matrix by a pure rotation rotates each of its columns, which
// a quaternion does with the sandwich product q * v * q^-1. Every identity
// above is therefore evaluated by rotating axis vectors with a quaternion and
// never by building and decomposing a full matrix.
//
// Argument order matches the rest of the module: the transform applied first
// is on the left.
//
//	localToWorld := localToObject.Mul(objectToWorld)
//	worldPoint := localToWorld.MulPoint3(localPoint)
//
// The single precision twin lives in package vqm32, package cast converts
// between them.
package vqm64
