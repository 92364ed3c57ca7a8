package batch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyAABB returns a box that contains nothing and grows to fit the first
// point passed to Extend.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no point.
func (a AABB) IsEmpty() bool {
	return a.Min.X() > a.Max.X() || a.Min.Y() > a.Max.Y() || a.Min.Z() > a.Max.Z()
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Extend grows the box to include point.
func (a AABB) Extend(point mgl64.Vec3) AABB {
	for i := range 3 {
		a.Min[i] = min(a.Min[i], point[i])
		a.Max[i] = max(a.Max[i], point[i])
	}
	return a
}

// Bounds returns the smallest box containing every point. It is empty when
// points is.
func Bounds(points []mgl64.Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}

// TransformedBounds returns the bounds of points once transformed by m.
// The points are transformed in chunks on the stack, points is not modified.
func TransformedBounds(points []mgl64.Vec3, m mgl64.Mat3x4) AABB {
	var buf [64]mgl64.Vec3
	box := EmptyAABB()
	for len(points) > 0 {
		n := min(len(points), len(buf))
		MulPoints3d(buf[:n], points[:n], m)
		for _, p := range buf[:n] {
			box = box.Extend(p)
		}
		points = points[n:]
	}
	return box
}
