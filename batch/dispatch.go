// Package batch transforms slices of points and directions through affine
// matrices.
//
// Three kernel families exist: a scalar loop, a wide loop that handles four
// points per iteration with the matrix held in locals, and a fused variant of
// the wide loop built on math.FMA. The fused kernels are selected at init when
// the CPU executes FMA in hardware, the wide ones otherwise. VQM_NO_SIMD or the
// purego build tag select the scalar kernels.
package batch

import (
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Level identifies the kernel family in use.
type Level int

const (
	// LevelScalar processes one point per iteration.
	LevelScalar Level = iota

	// LevelWide processes four points per iteration.
	LevelWide

	// LevelFused processes four points per iteration with fused
	// multiply-adds.
	LevelFused
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelWide:
		return "wide"
	case LevelFused:
		return "fused"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel Level
	currentName  string
)

// CurrentLevel returns the kernel family selected for this process.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns the name of the selected kernels: "scalar", "wide" or
// "fma".
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether the VQM_NO_SIMD environment variable asks for the
// scalar kernels regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("VQM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentName = "scalar"
	mulPoints3f = mulPointsScalar[mgl32.Vec3, mgl32.Mat3x4, float32]
	mulPoints3d = mulPointsScalar[mgl64.Vec3, mgl64.Mat3x4, float64]
	mulVectors3f = mulVectorsScalar[mgl32.Vec3, mgl32.Mat3x4, float32]
	mulVectors3d = mulVectorsScalar[mgl64.Vec3, mgl64.Mat3x4, float64]
}

func setWideMode() {
	currentLevel = LevelWide
	currentName = "wide"
	mulPoints3f = mulPointsWide[mgl32.Vec3, mgl32.Mat3x4, float32]
	mulPoints3d = mulPointsWide[mgl64.Vec3, mgl64.Mat3x4, float64]
	mulVectors3f = mulVectorsWide[mgl32.Vec3, mgl32.Mat3x4, float32]
	mulVectors3d = mulVectorsWide[mgl64.Vec3, mgl64.Mat3x4, float64]
}

func setFusedMode() {
	currentLevel = LevelFused
	currentName = "fma"
	mulPoints3f = mulPointsFused[mgl32.Vec3, mgl32.Mat3x4, float32]
	mulPoints3d = mulPointsFused[mgl64.Vec3, mgl64.Mat3x4, float64]
	mulVectors3f = mulVectorsFused[mgl32.Vec3, mgl32.Mat3x4, float32]
	mulVectors3d = mulVectorsFused[mgl64.Vec3, mgl64.Mat3x4, float64]
}
