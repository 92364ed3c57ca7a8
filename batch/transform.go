package batch

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Selected by setScalarMode or setWideMode at init.
var (
	mulPoints3f  func(dst, src []mgl32.Vec3, m mgl32.Mat3x4)
	mulPoints3d  func(dst, src []mgl64.Vec3, m mgl64.Mat3x4)
	mulVectors3f func(dst, src []mgl32.Vec3, m mgl32.Mat3x4)
	mulVectors3d func(dst, src []mgl64.Vec3, m mgl64.Mat3x4)
)

// MulPoints3f writes src[i] transformed by m, translation included, to dst[i].
// dst and src may be the same slice. It panics if their lengths differ.
func MulPoints3f(dst, src []mgl32.Vec3, m mgl32.Mat3x4) {
	checkLen(len(dst), len(src))
	mulPoints3f(dst, src, m)
}

// MulPoints3d is the double precision variant of MulPoints3f.
func MulPoints3d(dst, src []mgl64.Vec3, m mgl64.Mat3x4) {
	checkLen(len(dst), len(src))
	mulPoints3d(dst, src, m)
}

// MulVectors3f writes src[i] transformed by the linear part of m to dst[i].
// It panics if the lengths differ.
func MulVectors3f(dst, src []mgl32.Vec3, m mgl32.Mat3x4) {
	checkLen(len(dst), len(src))
	mulVectors3f(dst, src, m)
}

// MulVectors3d is the double precision variant of MulVectors3f.
func MulVectors3d(dst, src []mgl64.Vec3, m mgl64.Mat3x4) {
	checkLen(len(dst), len(src))
	mulVectors3d(dst, src, m)
}

func checkLen(dst, src int) {
	if dst != src {
		panic(fmt.Sprintf("batch: dst length %d does not match src length %d", dst, src))
	}
}
