// Package camera builds camera and view affine matrices.
//
// A camera transform moves points from camera space to world space. A view
// transform is its inverse and moves world points into camera space, usually
// right before a projection matrix.
package camera

import (
	"math"

	"github.com/akmonengine/vqm/internal/assert"
	"github.com/akmonengine/vqm/vqm64"
	"github.com/go-gl/mathgl/mgl64"
)

// LookToLH returns a left-handed camera transform located at position, looking
// towards direction. direction and up need not be normalized.
//
// In this frame X points right, Y up and Z along the look direction.
func LookToLH(position, direction, up mgl64.Vec3) mgl64.Mat3x4 {
	checkLookTo(position, direction, up)

	x, y, z := frame(direction, up)
	return mgl64.Mat3x4FromCols(x, y, z, position)
}

// LookToRH returns a right-handed camera transform. X points left.
func LookToRH(position, direction, up mgl64.Vec3) mgl64.Mat3x4 {
	// A right-handed camera is a left-handed one looking the other way.
	return LookToLH(position, direction.Mul(-1), up)
}

// ViewLookToLH returns the left-handed view transform, the inverse of
// LookToLH for the same inputs.
func ViewLookToLH(position, direction, up mgl64.Vec3) mgl64.Mat3x4 {
	checkLookTo(position, direction, up)

	x, y, z := frame(direction, up)

	// The frame is orthonormal: its inverse is its transpose.
	neg := position.Mul(-1)
	rotation := mgl64.Mat3FromCols(x, y, z).Transpose()
	return mgl64.Mat3x4FromCols(
		rotation.Col(0),
		rotation.Col(1),
		rotation.Col(2),
		mgl64.Vec3{x.Dot(neg), y.Dot(neg), z.Dot(neg)},
	)
}

// ViewLookToRH returns the right-handed view transform.
func ViewLookToRH(position, direction, up mgl64.Vec3) mgl64.Mat3x4 {
	return ViewLookToLH(position, direction.Mul(-1), up)
}

// LookTo dispatches to the left or right-handed camera transform of cs.
func (cs CoordinateSystem) LookTo(position, direction, up mgl64.Vec3) mgl64.Mat3x4 {
	if cs.Handedness == RightHanded {
		return LookToRH(position, direction, up)
	}
	return LookToLH(position, direction, up)
}

// ViewLookTo dispatches to the left or right-handed view transform of cs.
func (cs CoordinateSystem) ViewLookTo(position, direction, up mgl64.Vec3) mgl64.Mat3x4 {
	if cs.Handedness == RightHanded {
		return ViewLookToRH(position, direction, up)
	}
	return ViewLookToLH(position, direction, up)
}

// LookToVQM returns the left-handed camera transform as a VQM with unit
// scale, suitable for composing into a transform hierarchy.
func LookToVQM(position, direction, up mgl64.Vec3) vqm64.VQM {
	checkLookTo(position, direction, up)

	x, y, z := frame(direction, up)
	rotation := mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
	return vqm64.Set(position, rotation, mgl64.Vec3{1, 1, 1})
}

func frame(direction, up mgl64.Vec3) (x, y, z mgl64.Vec3) {
	z = direction.Normalize()
	x = up.Cross(z).Normalize()
	// Already normalized since z and x are orthonormal.
	y = z.Cross(x)
	return x, y, z
}

func checkLookTo(position, direction, up mgl64.Vec3) {
	assert.That(isFinite3(position), "look position %v must be finite", position)
	assert.That(direction != (mgl64.Vec3{}) && isFinite3(direction), "look direction %v must be non-zero and finite", direction)
	assert.That(up != (mgl64.Vec3{}) && isFinite3(up), "look up direction %v must be non-zero and finite", up)
}

func isFinite3(v mgl64.Vec3) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
