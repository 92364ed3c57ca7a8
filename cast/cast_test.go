package cast

import (
	"math"
	"testing"

	"github.com/akmonengine/vqm/vqm32"
	"github.com/akmonengine/vqm/vqm64"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// =============================================================================
// Widening Tests
// =============================================================================

func TestWidenIsExact(t *testing.T) {
	v := mgl32.Vec3{1.5, -0.1, 3e7}
	if got := Vec3f(Vec3d(v)); got != v {
		t.Errorf("Vec3f(Vec3d(v)) = %v, want %v", got, v)
	}

	v4 := mgl32.Vec4{0.1, 0.2, 0.3, 0.4}
	if got := Vec4f(Vec4d(v4)); got != v4 {
		t.Errorf("Vec4f(Vec4d(v)) = %v, want %v", got, v4)
	}

	q := mgl32.AnglesToQuat(0.1, 0.2, 0.3, mgl32.XYZ)
	if got := Quatf(Quatd(q)); got != q {
		t.Errorf("Quatf(Quatd(q)) = %v, want %v", got, q)
	}

	m3 := mgl32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9.25}
	if got := Mat3f(Mat3d(m3)); got != m3 {
		t.Errorf("Mat3f(Mat3d(m)) = %v, want %v", got, m3)
	}

	m34 := mgl32.Mat3x4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0.1}
	if got := Mat3x4f(Mat3x4d(m34)); got != m34 {
		t.Errorf("Mat3x4f(Mat3x4d(m)) = %v, want %v", got, m34)
	}

	m4 := mgl32.Perspective(1, 1.5, 0.1, 100)
	if got := Mat4f(Mat4d(m4)); got != m4 {
		t.Errorf("Mat4f(Mat4d(m)) = %v, want %v", got, m4)
	}
}

func TestMat3x4d_KeepsLayout(t *testing.T) {
	m := mgl32.Mat3x4FromCols(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, mgl32.Vec3{7, 8, 9}, mgl32.Vec3{10, 11, 12})

	got := Mat3x4d(m)
	for i := 0; i < 4; i++ {
		if got.Col(i) != Vec3d(m.Col(i)) {
			t.Errorf("Col(%d) = %v, want %v", i, got.Col(i), m.Col(i))
		}
	}
}

// =============================================================================
// Narrowing Tests
// =============================================================================

func TestNarrowRounds(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float32
	}{
		{"exact", 0.5, 0.5},
		{"rounded", 0.1, 0.1},
		{"NaN", math.NaN(), float32(math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vec3f(mgl64.Vec3{tt.in, 0, 0})[0]
			if math.IsNaN(float64(tt.want)) {
				if !math.IsNaN(float64(got)) {
					t.Errorf("Vec3f() = %v, want NaN", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Vec3f() = %v, want %v", got, tt.want)
			}
		})
	}
}

// =============================================================================
// VQM Tests
// =============================================================================

func TestVQM_RoundTrip(t *testing.T) {
	rotation := mgl32.AnglesToQuat(mgl32.DegToRad(10.1), mgl32.DegToRad(41.6), mgl32.DegToRad(-12.7), mgl32.XYZ)
	single := vqm32.Set(mgl32.Vec3{1, 2, 3}, rotation, mgl32.Vec3{4, -5, 6}).
		Mul(vqm32.Set(mgl32.Vec3{-1, 0, 2}, mgl32.QuatRotate(0.4, mgl32.Vec3{0, 1, 0}), mgl32.Vec3{1, 2, 1}))

	if got := VQMf(VQMd(single)); got != single {
		t.Errorf("VQMf(VQMd(t)) = %v, want %v", got, single)
	}
}

func TestVQMd_PreservesAlgebra(t *testing.T) {
	rotation := mgl32.AnglesToQuat(mgl32.DegToRad(10.1), mgl32.DegToRad(41.6), mgl32.DegToRad(-12.7), mgl32.XYZ)
	single := vqm32.Set(mgl32.Vec3{1, 2, 3}, rotation, mgl32.Vec3{4, 5, 6})
	double := VQMd(single)

	want := Mat3x4d(single.Inverse().Mat3x4())
	got := double.Inverse().Mat3x4()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("inverse mismatch (-want +got):\n%s", diff)
	}

	point := mgl64.Vec3{12, 0, -130.033}
	wantPoint := Vec3d(single.MulPoint3(Vec3f(point)))
	gotPoint := double.MulPoint3(point)
	if diff := cmp.Diff(wantPoint, gotPoint, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("MulPoint3 mismatch (-want +got):\n%s", diff)
	}
}

func TestVQMf_Identity(t *testing.T) {
	if got := VQMf(vqm64.Identity()); got != vqm32.Identity() {
		t.Errorf("VQMf(Identity()) = %v, want %v", got, vqm32.Identity())
	}
}
