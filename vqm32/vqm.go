package vqm32

import (
	"fmt"

	"github.com/akmonengine/vqm/internal/assert"
	"github.com/akmonengine/vqm/swizzle"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// VQM is a rotation, a translation and a scale/shear matrix.
// The fields are opaque, use the accessors.
type VQM struct {
	rotation    mgl32.Quat
	translation mgl32.Vec3

	// Scale/shear axes, before rotation.
	xAxis mgl32.Vec3
	yAxis mgl32.Vec3
	zAxis mgl32.Vec3
}

// Identity returns the identity transform.
func Identity() VQM {
	return VQM{
		rotation: mgl32.QuatIdent(),
		xAxis:    mgl32.Vec3{1, 0, 0},
		yAxis:    mgl32.Vec3{0, 1, 0},
		zAxis:    mgl32.Vec3{0, 0, 1},
	}
}

// Set creates a transform from a translation, a rotation and a 3D scale.
// The rotation must be normalized.
func Set(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) VQM {
	assert.That(isNormalized(rotation), "rotation %v is not normalized", rotation)

	return VQM{
		rotation:    rotation,
		translation: translation,
		xAxis:       mgl32.Vec3{scale.X(), 0, 0},
		yAxis:       mgl32.Vec3{0, scale.Y(), 0},
		zAxis:       mgl32.Vec3{0, 0, scale.Z()},
	}
}

// Rotation returns the rotation part.
func (t VQM) Rotation() mgl32.Quat {
	return t.rotation
}

// WithRotation returns a copy of t with its rotation replaced.
func (t VQM) WithRotation(rotation mgl32.Quat) VQM {
	t.rotation = rotation
	return t
}

// Translation returns the translation part.
func (t VQM) Translation() mgl32.Vec3 {
	return t.translation
}

// WithTranslation returns a copy of t with its translation replaced.
func (t VQM) WithTranslation(translation mgl32.Vec3) VQM {
	t.translation = translation
	return t
}

// Scale returns the diagonal of the scale/shear matrix.
func (t VQM) Scale() mgl32.Vec3 {
	xy := swizzle.Mix4f(t.xAxis.Vec4(0), t.yAxis.Vec4(0), swizzle.X, swizzle.B, swizzle.Z, swizzle.W)
	return swizzle.Mix4f(xy, t.zAxis.Vec4(0), swizzle.X, swizzle.Y, swizzle.C, swizzle.W).Vec3()
}

// WithScale returns a copy of t with the diagonal of its scale/shear matrix
// replaced. Existing shear is preserved.
func (t VQM) WithScale(scale mgl32.Vec3) VQM {
	s := scale.Vec4(0)
	t.xAxis = swizzle.Mix4f(s, t.xAxis.Vec4(0), swizzle.X, swizzle.B, swizzle.C, swizzle.W).Vec3()
	t.yAxis = swizzle.Mix4f(s, t.yAxis.Vec4(0), swizzle.A, swizzle.Y, swizzle.C, swizzle.W).Vec3()
	t.zAxis = swizzle.Mix4f(s, t.zAxis.Vec4(0), swizzle.A, swizzle.B, swizzle.Z, swizzle.W).Vec3()
	return t
}

// ScaleShear returns the scale/shear matrix. Its columns are the unrotated
// axes.
func (t VQM) ScaleShear() mgl32.Mat3 {
	return mgl32.Mat3FromCols(t.xAxis, t.yAxis, t.zAxis)
}

// WithScaleShear returns a copy of t with its whole scale/shear matrix
// replaced.
func (t VQM) WithScaleShear(scaleShear mgl32.Mat3) VQM {
	t.xAxis = scaleShear.Col(0)
	t.yAxis = scaleShear.Col(1)
	t.zAxis = scaleShear.Col(2)
	return t
}

// Add sums every part of two transforms.
// The result is generally not a valid rigid transform, it is meant for
// weighted blending together with MulScalar.
func (t VQM) Add(rhs VQM) VQM {
	// [v2, q2, M2] + [v1, q1, M1] = [v2 + v1, q2 + q1, M2 + M1]
	return VQM{
		rotation:    t.rotation.Add(rhs.rotation),
		translation: t.translation.Add(rhs.translation),
		xAxis:       t.xAxis.Add(rhs.xAxis),
		yAxis:       t.yAxis.Add(rhs.yAxis),
		zAxis:       t.zAxis.Add(rhs.zAxis),
	}
}

// Mul composes two transforms, t is applied first and rhs second:
// localToWorld = localToObject.Mul(objectToWorld).
func (t VQM) Mul(rhs VQM) VQM {
	// [v2, q2, M2] * [v1, q1, M1] = [q2 * (M2 * v1) * q2^-1 + v2, q2 * q1, (q1^-1 * M2 * q1)(q1 * M1 * q1^-1)]
	invRotation := t.rotation.Conjugate()
	rhsScaleShear := rhs.ScaleShear()

	translation := rhs.rotation.Rotate(rhsScaleShear.Mul3x1(t.translation)).Add(rhs.translation)

	// Bring M2 into the frame of M1 then apply both.
	rhsRotated := rotateAxes(invRotation, rhs.xAxis, rhs.yAxis, rhs.zAxis)
	lhsRotated := rotateAxes(t.rotation, t.xAxis, t.yAxis, t.zAxis)
	scaleShear := rhsRotated.Mul3(lhsRotated)

	return VQM{
		rotation:    rhs.rotation.Mul(t.rotation),
		translation: translation,
		xAxis:       scaleShear.Col(0),
		yAxis:       scaleShear.Col(1),
		zAxis:       scaleShear.Col(2),
	}
}

// MulScalar scales every part of the transform by s.
func (t VQM) MulScalar(s float32) VQM {
	// s * [v, q, M] = [s * v, s * q, s * M]
	return VQM{
		rotation:    t.rotation.Scale(s),
		translation: t.translation.Mul(s),
		xAxis:       t.xAxis.Mul(s),
		yAxis:       t.yAxis.Mul(s),
		zAxis:       t.zAxis.Mul(s),
	}
}

// MulPoint3 transforms a point: scale/shear, then rotation, then translation.
func (t VQM) MulPoint3(point mgl32.Vec3) mgl32.Vec3 {
	// [v, q, M] * p = (q * (M * p) * q^-1) + v
	return t.MulVector3(point).Add(t.translation)
}

// MulVector3 transforms a direction, translation is ignored.
func (t VQM) MulVector3(vec mgl32.Vec3) mgl32.Vec3 {
	// [v, q, M] * d = q * (M * d) * q^-1
	scaled := t.xAxis.Mul(vec.X()).Add(t.yAxis.Mul(vec.Y())).Add(t.zAxis.Mul(vec.Z()))
	return t.rotation.Rotate(scaled)
}

// Inverse returns the transform undoing t, so that t.Mul(t.Inverse()) and
// t.Inverse().Mul(t) are the identity.
// A singular scale/shear matrix yields NaN or Inf components, see IsFinite.
func (t VQM) Inverse() VQM {
	// [v, q, M]^-1 = [M^-1 * (q^-1 * -v * q), q^-1, q * (q * M * q^-1)^-1 * q^-1]
	//
	// (q * M * q^-1)^-1 is not q^-1 * M^-1 * q, but in matrix form with Mq the
	// rotation matrix of q:
	//   Mq * (Mq * M)^-1 = (Mq * M^-1) * Mq^-1 = (q * M^-1 * q^-1) * Mq^-1
	// Mq^-1 multiplies on the wrong side to be a sandwich product, so it is
	// built as q^-1 * I * q. Only M needs a real 3x3 inverse.
	scaleShear := t.ScaleShear()
	assert.That(scaleShear.Det() != 0, "scale/shear %v is singular", scaleShear)

	invScaleShear := inverse3(scaleShear)
	invRotation := t.rotation.Conjugate()

	invRotated := rotateAxes(t.rotation, invScaleShear.Col(0), invScaleShear.Col(1), invScaleShear.Col(2))
	invRotationMat := rotateAxes(invRotation, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})

	// Undo the rotation first, then the rotated inverse scale/shear.
	resultScaleShear := invRotated.Mul3(invRotationMat)

	return VQM{
		rotation:    invRotation,
		translation: invScaleShear.Mul3x1(invRotation.Rotate(t.translation.Mul(-1))),
		xAxis:       resultScaleShear.Col(0),
		yAxis:       resultScaleShear.Col(1),
		zAxis:       resultScaleShear.Col(2),
	}
}

// Mat3x4 converts the transform into an affine matrix. The linear columns are
// the scale/shear axes rotated by the rotation, the last column is the
// translation.
func (t VQM) Mat3x4() mgl32.Mat3x4 {
	return mgl32.Mat3x4FromCols(
		t.rotation.Rotate(t.xAxis),
		t.rotation.Rotate(t.yAxis),
		t.rotation.Rotate(t.zAxis),
		t.translation,
	)
}

// Mat4 converts the transform into a homogeneous matrix.
func (t VQM) Mat4() mgl32.Mat4 {
	return Mat4FromMat3x4(t.Mat3x4())
}

// Normalize returns t with its rotation normalized.
func (t VQM) Normalize() VQM {
	t.rotation = t.rotation.Normalize()
	return t
}

// IsFinite reports whether t contains neither NaN nor Inf.
func (t VQM) IsFinite() bool {
	return isFinite(t.rotation.W) && isFinite3(t.rotation.V) &&
		isFinite3(t.translation) &&
		isFinite3(t.xAxis) &&
		isFinite3(t.yAxis) &&
		isFinite3(t.zAxis)
}

// ApproxEqualThreshold reports whether every component of t and rhs differ by
// at most threshold.
func (t VQM) ApproxEqualThreshold(rhs VQM, threshold float32) bool {
	return nearEqual(t.rotation.W, rhs.rotation.W, threshold) &&
		nearEqual3(t.rotation.V, rhs.rotation.V, threshold) &&
		nearEqual3(t.translation, rhs.translation, threshold) &&
		nearEqual3(t.xAxis, rhs.xAxis, threshold) &&
		nearEqual3(t.yAxis, rhs.yAxis, threshold) &&
		nearEqual3(t.zAxis, rhs.zAxis, threshold)
}

func (t VQM) String() string {
	return fmt.Sprintf("VQM{rotation: %v, translation: %v, axes: [%v %v %v]}",
		t.rotation, t.translation, t.xAxis, t.yAxis, t.zAxis)
}

// rotateAxes rotates each axis with q and returns them as matrix columns,
// which is the matrix product R(q) * [x y z].
func rotateAxes(q mgl32.Quat, x, y, z mgl32.Vec3) mgl32.Mat3 {
	return mgl32.Mat3FromCols(q.Rotate(x), q.Rotate(y), q.Rotate(z))
}

func isNormalized(q mgl32.Quat) bool {
	return math32.Abs(q.Dot(q)-1) < 1e-5
}

func isFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

func isFinite3(v mgl32.Vec3) bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

func nearEqual(a, b, threshold float32) bool {
	return math32.Abs(a-b) <= threshold
}

func nearEqual3(a, b mgl32.Vec3, threshold float32) bool {
	return nearEqual(a[0], b[0], threshold) && nearEqual(a[1], b[1], threshold) && nearEqual(a[2], b[2], threshold)
}
