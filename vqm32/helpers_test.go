package vqm32

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	fuzz "github.com/google/gofuzz"
)

const threshold = 1e-3

// scaleCases covers every combination of negative and zero scale axes that
// an affine matrix can express.
var scaleCases = []struct {
	name       string
	scale      mgl32.Vec3
	invertible bool
}{
	{"all positive", mgl32.Vec3{4, 5, 6}, true},
	{"one negative", mgl32.Vec3{-4, 5, 6}, true},
	{"two negative", mgl32.Vec3{-4, -5, 6}, true},
	{"three negative", mgl32.Vec3{-4, -5, -6}, true},
	{"one zero", mgl32.Vec3{0, 5, 6}, false},
	{"two zero", mgl32.Vec3{0, 0, 6}, false},
	{"three zero", mgl32.Vec3{0, 0, 0}, false},
}

func testRotation() mgl32.Quat {
	return mgl32.AnglesToQuat(mgl32.DegToRad(10.1), mgl32.DegToRad(41.6), mgl32.DegToRad(-12.7), mgl32.XYZ)
}

func testTranslation() mgl32.Vec3 {
	return mgl32.Vec3{1, 2, 3}
}

func approx(tol float64) cmp.Option {
	return cmp.Options{cmp.AllowUnexported(VQM{}), cmpopts.EquateApprox(0, tol)}
}

func assertVQM(t *testing.T, got, want VQM, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(tol)); diff != "" {
		t.Errorf("VQM mismatch (-want +got):\n%s", diff)
	}
}

func assertMat3x4(t *testing.T, got, want mgl32.Mat3x4, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("Mat3x4 mismatch (-want +got):\n%s", diff)
	}
}

func assertVec3(t *testing.T, got, want mgl32.Vec3, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("Vec3 mismatch (-want +got):\n%s", diff)
	}
}

// newFuzzer generates well conditioned transforms: unit rotations,
// translations in [-10, 10] and strictly diagonally dominant scale/shear
// matrices, so every generated transform is invertible.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.New().RandSource(rand.NewSource(seed)).NilChance(0).Funcs(
		func(q *mgl32.Quat, c fuzz.Continue) {
			for {
				*q = mgl32.Quat{W: signed(c), V: mgl32.Vec3{signed(c), signed(c), signed(c)}}
				if q.Len() > 0.1 {
					break
				}
			}
			*q = q.Normalize()
		},
		func(t *VQM, c fuzz.Continue) {
			var rotation mgl32.Quat
			c.Fuzz(&rotation)

			diag := func() float32 {
				s := 0.5 + 2.5*c.Float32()
				if c.RandBool() {
					s = -s
				}
				return s
			}
			shear := func() float32 { return 0.2 * signed(c) }
			scaleShear := mgl32.Mat3FromCols(
				mgl32.Vec3{diag(), shear(), shear()},
				mgl32.Vec3{shear(), diag(), shear()},
				mgl32.Vec3{shear(), shear(), diag()},
			)
			translation := mgl32.Vec3{10 * signed(c), 10 * signed(c), 10 * signed(c)}

			*t = Set(translation, rotation, mgl32.Vec3{1, 1, 1}).WithScaleShear(scaleShear)
		},
	)
}

func signed(c fuzz.Continue) float32 {
	return 2*c.Float32() - 1
}
