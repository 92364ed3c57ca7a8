package vqm64

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	fuzz "github.com/google/gofuzz"
)

const threshold = 1e-8

// scaleCases covers every combination of negative and zero scale axes that
// an affine matrix can express.
var scaleCases = []struct {
	name       string
	scale      mgl64.Vec3
	invertible bool
}{
	{"all positive", mgl64.Vec3{4, 5, 6}, true},
	{"one negative", mgl64.Vec3{-4, 5, 6}, true},
	{"two negative", mgl64.Vec3{-4, -5, 6}, true},
	{"three negative", mgl64.Vec3{-4, -5, -6}, true},
	{"one zero", mgl64.Vec3{0, 5, 6}, false},
	{"two zero", mgl64.Vec3{0, 0, 6}, false},
	{"three zero", mgl64.Vec3{0, 0, 0}, false},
}

func testRotation() mgl64.Quat {
	return mgl64.AnglesToQuat(mgl64.DegToRad(10.1), mgl64.DegToRad(41.6), mgl64.DegToRad(-12.7), mgl64.XYZ)
}

func testTranslation() mgl64.Vec3 {
	return mgl64.Vec3{1, 2, 3}
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

func assertMat3x4(t *testing.T, got, want mgl64.Mat3x4, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("Mat3x4 mismatch (-want +got):\n%s", diff)
	}
}

func assertVec3(t *testing.T, got, want mgl64.Vec3, tol float64) {
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
		func(q *mgl64.Quat, c fuzz.Continue) {
			for {
				*q = mgl64.Quat{W: signed(c), V: mgl64.Vec3{signed(c), signed(c), signed(c)}}
				if q.Len() > 0.1 {
					break
				}
			}
			*q = q.Normalize()
		},
		func(t *VQM, c fuzz.Continue) {
			var rotation mgl64.Quat
			c.Fuzz(&rotation)

			diag := func() float64 {
				s := 0.5 + 2.5*c.Float64()
				if c.RandBool() {
					s = -s
				}
				return s
			}
			shear := func() float64 { return 0.2 * signed(c) }
			scaleShear := mgl64.Mat3FromCols(
				mgl64.Vec3{diag(), shear(), shear()},
				mgl64.Vec3{shear(), diag(), shear()},
				mgl64.Vec3{shear(), shear(), diag()},
			)
			translation := mgl64.Vec3{10 * signed(c), 10 * signed(c), 10 * signed(c)}

			*t = Set(translation, rotation, mgl64.Vec3{1, 1, 1}).WithScaleShear(scaleShear)
		},
	)
}

func signed(c fuzz.Continue) float64 {
	return 2*c.Float64() - 1
}
