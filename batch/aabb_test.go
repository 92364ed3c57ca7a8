package batch

import (
	"math"
	"testing"

	"github.com/akmonengine/vqm/vqm64"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// =============================================================================
// AABB Utility Function Tests
// =============================================================================

func TestAABBOverlaps(t *testing.T) {
	unit := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"Separated on X axis", AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}}, false},
		{"Separated on Y axis", AABB{Min: mgl64.Vec3{0, -2, 0}, Max: mgl64.Vec3{1, -1, 1}}, false},
		{"Separated on Z axis", AABB{Min: mgl64.Vec3{0, 0, 2}, Max: mgl64.Vec3{1, 1, 3}}, false},
		{"Touching faces", AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}, true},
		{"Partial overlap", AABB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{2, 2, 2}}, true},
		{"Contained", AABB{Min: mgl64.Vec3{0.25, 0.25, 0.25}, Max: mgl64.Vec3{0.75, 0.75, 0.75}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unit.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Test symmetry
			if got := tt.other.Overlaps(unit); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v (symmetry test)", got, tt.want)
			}
		})
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 2, 3}}

	tests := []struct {
		name  string
		point mgl64.Vec3
		want  bool
	}{
		{"Center", mgl64.Vec3{0, 0, 0}, true},
		{"Corner", mgl64.Vec3{1, 2, 3}, true},
		{"Outside X", mgl64.Vec3{1.1, 0, 0}, false},
		{"Outside Y", mgl64.Vec3{0, -1.1, 0}, false},
		{"Outside Z", mgl64.Vec3{0, 0, 3.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestEmptyAABB(t *testing.T) {
	box := EmptyAABB()
	if !box.IsEmpty() {
		t.Error("EmptyAABB() is not empty")
	}
	if box.ContainsPoint(mgl64.Vec3{}) {
		t.Error("EmptyAABB() contains the origin")
	}

	box = box.Extend(mgl64.Vec3{1, 2, 3})
	if box.IsEmpty() {
		t.Error("box is still empty after Extend")
	}
	if box.Min != box.Max || box.Min != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Extend() = %v, want a single point box", box)
	}
}

// =============================================================================
// Bounds Tests
// =============================================================================

func TestBounds(t *testing.T) {
	points := []mgl64.Vec3{{1, -2, 3}, {-4, 5, 0}, {2, 2, -6}}

	got := Bounds(points)
	want := AABB{Min: mgl64.Vec3{-4, -2, -6}, Max: mgl64.Vec3{2, 5, 3}}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	for _, p := range points {
		if !got.ContainsPoint(p) {
			t.Errorf("Bounds() does not contain %v", p)
		}
	}

	if !Bounds(nil).IsEmpty() {
		t.Error("Bounds(nil) is not empty")
	}
}

func TestTransformedBounds_UnitCube(t *testing.T) {
	var cube []mgl64.Vec3
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				cube = append(cube, mgl64.Vec3{x, y, z})
			}
		}
	}

	// Quarter turn around Z, stretched on X, then moved.
	m := vqm64.MatrixFromQVV(
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
		mgl64.Vec3{10, 0, 0},
		mgl64.Vec3{3, 1, 1},
	)

	got := TransformedBounds(cube, m)
	want := AABB{Min: mgl64.Vec3{9, -3, -1}, Max: mgl64.Vec3{11, 3, 1}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("TransformedBounds() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformedBounds_MatchesBoundsOfTransformed(t *testing.T) {
	// More points than the stack buffer.
	points := randomPoints(3, 200)
	m := testMatrix()

	transformed := make([]mgl64.Vec3, len(points))
	MulPoints3d(transformed, points, m)

	if diff := cmp.Diff(Bounds(transformed), TransformedBounds(points, m)); diff != "" {
		t.Errorf("TransformedBounds() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(randomPoints(3, 200), points); diff != "" {
		t.Errorf("TransformedBounds() modified its input:\n%s", diff)
	}
}

func TestTransformedBounds_VisibilityInViewSpace(t *testing.T) {
	// Camera at z=-10 looking down +Z, view space is world space shifted by 10.
	view := vqm64.MatrixFromTranslation(mgl64.Vec3{0, 0, 10})
	visible := AABB{Min: mgl64.Vec3{-4, -3, 0.1}, Max: mgl64.Vec3{4, 3, 50}}

	tests := []struct {
		name   string
		points []mgl64.Vec3
		want   bool
	}{
		{"In front", []mgl64.Vec3{{0, 0, 0}, {1, 1, 1}}, true},
		{"Straddling the side", []mgl64.Vec3{{3, 0, 0}, {6, 0, 0}}, true},
		{"Behind the camera", []mgl64.Vec3{{0, 0, -20}, {1, 1, -15}}, false},
		{"Off to the side", []mgl64.Vec3{{10, 0, 0}, {12, 1, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := TransformedBounds(tt.points, view)
			if got := visible.Overlaps(bounds); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", bounds, got, tt.want)
			}
			first := vqm64.MatrixMulPoint3(tt.points[0], view)
			if got := bounds.ContainsPoint(first); !got {
				t.Errorf("bounds %v do not contain transformed point %v", bounds, first)
			}
		})
	}
}
