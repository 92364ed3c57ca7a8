// Package cast converts math values between single and double precision.
//
// Every (source, destination) pair has its own function so a precision
// change is always visible at the call site. Functions ending in d produce
// double precision values, functions ending in f produce single precision
// values.
package cast

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3d widens a single precision vector.
func Vec3d(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Vec3f narrows a double precision vector, rounding to nearest.
func Vec3f(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Vec4d widens a single precision vector.
func Vec4d(v mgl32.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// Vec4f narrows a double precision vector, rounding to nearest.
func Vec4f(v mgl64.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// Quatd widens a single precision quaternion.
func Quatd(q mgl32.Quat) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: Vec3d(q.V)}
}

// Quatf narrows a double precision quaternion. The result may need
// renormalizing before it is used as a rotation.
func Quatf(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: Vec3f(q.V)}
}

// Mat3d widens a single precision 3x3 matrix.
func Mat3d(m mgl32.Mat3) mgl64.Mat3 {
	var r mgl64.Mat3
	for i, x := range m {
		r[i] = float64(x)
	}
	return r
}

// Mat3f narrows a double precision 3x3 matrix.
func Mat3f(m mgl64.Mat3) mgl32.Mat3 {
	var r mgl32.Mat3
	for i, x := range m {
		r[i] = float32(x)
	}
	return r
}

// Mat3x4d widens a single precision affine matrix.
func Mat3x4d(m mgl32.Mat3x4) mgl64.Mat3x4 {
	var r mgl64.Mat3x4
	for i, x := range m {
		r[i] = float64(x)
	}
	return r
}

// Mat3x4f narrows a double precision affine matrix.
func Mat3x4f(m mgl64.Mat3x4) mgl32.Mat3x4 {
	var r mgl32.Mat3x4
	for i, x := range m {
		r[i] = float32(x)
	}
	return r
}

// Mat4d widens a single precision 4x4 matrix.
func Mat4d(m mgl32.Mat4) mgl64.Mat4 {
	var r mgl64.Mat4
	for i, x := range m {
		r[i] = float64(x)
	}
	return r
}

// Mat4f narrows a double precision 4x4 matrix.
func Mat4f(m mgl64.Mat4) mgl32.Mat4 {
	var r mgl32.Mat4
	for i, x := range m {
		r[i] = float32(x)
	}
	return r
}
