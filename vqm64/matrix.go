package vqm64

import (
	"github.com/akmonengine/vqm/internal/assert"
	"github.com/go-gl/mathgl/mgl64"
)

// MatrixFromQVV builds an affine matrix from a rotation, a translation and a
// 3D scale, without going through a VQM.
func MatrixFromQVV(rotation mgl64.Quat, translation, scale mgl64.Vec3) mgl64.Mat3x4 {
	assert.That(isNormalized(rotation), "rotation %v is not normalized", rotation)

	// M = T * R * S
	m := mgl64.Translate3D(translation.X(), translation.Y(), translation.Z()).
		Mul4(rotation.Mat4()).
		Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
	return Mat3x4FromMat4(m)
}

// MatrixFromTranslation returns an affine matrix that only translates.
func MatrixFromTranslation(translation mgl64.Vec3) mgl64.Mat3x4 {
	return mgl64.Mat3x4FromCols(
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{0, 0, 1},
		translation,
	)
}

// MatrixMul composes two affine matrices, lhs is applied first:
// localToWorld = MatrixMul(localToObject, objectToWorld).
func MatrixMul(lhs, rhs mgl64.Mat3x4) mgl64.Mat3x4 {
	return mgl64.Mat3x4FromCols(
		MatrixMulVector3(lhs.Col(0), rhs),
		MatrixMulVector3(lhs.Col(1), rhs),
		MatrixMulVector3(lhs.Col(2), rhs),
		MatrixMulPoint3(lhs.Col(3), rhs),
	)
}

// MatrixMulPoint3 transforms a point by an affine matrix.
func MatrixMulPoint3(point mgl64.Vec3, m mgl64.Mat3x4) mgl64.Vec3 {
	return MatrixMulVector3(point, m).Add(m.Col(3))
}

// MatrixMulVector3 transforms a direction by an affine matrix, translation is
// ignored.
func MatrixMulVector3(vec mgl64.Vec3, m mgl64.Mat3x4) mgl64.Vec3 {
	return m.Col(0).Mul(vec.X()).Add(m.Col(1).Mul(vec.Y())).Add(m.Col(2).Mul(vec.Z()))
}

// MatrixInverse inverts an affine matrix.
// A singular linear part yields NaN or Inf components.
func MatrixInverse(m mgl64.Mat3x4) mgl64.Mat3x4 {
	linear := inverse3(Mat3FromMat3x4(m))
	translation := linear.Mul3x1(m.Col(3)).Mul(-1)
	return mgl64.Mat3x4FromCols(linear.Col(0), linear.Col(1), linear.Col(2), translation)
}

// inverse3 is the adjugate scaled by 1/det. Unlike mgl64.Mat3.Inv it does not
// return zeros for a singular matrix, the division by zero propagates.
func inverse3(m mgl64.Mat3) mgl64.Mat3 {
	a, b, c := m.Col(0), m.Col(1), m.Col(2)
	bc := b.Cross(c)
	det := a.Dot(bc)
	return mgl64.Mat3FromRows(bc, c.Cross(a), a.Cross(b)).Mul(1 / det)
}

// MatrixRemoveScale normalizes the three linear axes of an affine matrix.
// An axis with zero length is kept as is since its direction is lost.
func MatrixRemoveScale(m mgl64.Mat3x4) mgl64.Mat3x4 {
	return mgl64.Mat3x4FromCols(
		normalizeOr(m.Col(0)),
		normalizeOr(m.Col(1)),
		normalizeOr(m.Col(2)),
		m.Col(3),
	)
}

// Mat3x4FromMat3 widens a linear matrix into an affine one with no
// translation.
func Mat3x4FromMat3(m mgl64.Mat3) mgl64.Mat3x4 {
	return mgl64.Mat3x4FromCols(m.Col(0), m.Col(1), m.Col(2), mgl64.Vec3{})
}

// Mat3FromMat3x4 drops the translation of an affine matrix.
func Mat3FromMat3x4(m mgl64.Mat3x4) mgl64.Mat3 {
	return mgl64.Mat3FromCols(m.Col(0), m.Col(1), m.Col(2))
}

// Mat4FromMat3x4 adds the [0 0 0 1] homogeneous row.
func Mat4FromMat3x4(m mgl64.Mat3x4) mgl64.Mat4 {
	return mgl64.Mat4FromCols(
		m.Col(0).Vec4(0),
		m.Col(1).Vec4(0),
		m.Col(2).Vec4(0),
		m.Col(3).Vec4(1),
	)
}

// Mat3x4FromMat4 drops the homogeneous row of a 4x4 matrix, which must be
// affine.
func Mat3x4FromMat4(m mgl64.Mat4) mgl64.Mat3x4 {
	assert.That(m.At(3, 0) == 0, "x axis does not have a w component == 0, got %v", m.At(3, 0))
	assert.That(m.At(3, 1) == 0, "y axis does not have a w component == 0, got %v", m.At(3, 1))
	assert.That(m.At(3, 2) == 0, "z axis does not have a w component == 0, got %v", m.At(3, 2))
	return narrow(m)
}

func narrow(m mgl64.Mat4) mgl64.Mat3x4 {
	return mgl64.Mat3x4FromCols(m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3(), m.Col(3).Vec3())
}

func normalizeOr(v mgl64.Vec3) mgl64.Vec3 {
	if v.Dot(v) < 1e-16 {
		return v
	}
	return v.Normalize()
}
