package main

import (
	"fmt"

	"github.com/akmonengine/vqm/batch"
	"github.com/akmonengine/vqm/camera"
	"github.com/akmonengine/vqm/cast"
	"github.com/akmonengine/vqm/pose"
	"github.com/akmonengine/vqm/vqm64"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupArm creates a shoulder, an upper arm stretched along X and a forearm
// rotated under it. The stretch shears the forearm in object space.
func SetupArm() (*pose.Pose, []vqm64.VQM) {
	skeleton, err := pose.NewSkeleton([]int{-1, 0, 1, 2})
	if err != nil {
		panic(err)
	}

	arm := pose.NewPose(skeleton)
	arm.Workers = 2

	locals := []vqm64.VQM{
		vqm64.Identity().WithTranslation(mgl64.Vec3{0, 1.5, 0}),
		vqm64.Identity().
			WithTranslation(mgl64.Vec3{0.2, 0, 0}).
			WithScale(mgl64.Vec3{2, 1, 1}),
		vqm64.Identity().
			WithTranslation(mgl64.Vec3{1, 0, 0}).
			WithRotation(mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1})),
		vqm64.Identity().WithTranslation(mgl64.Vec3{1, 0, 0}),
	}
	for i, local := range locals {
		if err := arm.SetLocal(i, local); err != nil {
			panic(err)
		}
	}

	if err := arm.Update(); err != nil {
		panic(err)
	}

	inverseBind := make([]vqm64.VQM, len(arm.Object))
	for i, object := range arm.Object {
		inverseBind[i] = object.Inverse()
	}
	return arm, inverseBind
}

// PrintJoints compares each object transform with the same chain built from
// plain matrices.
func PrintJoints(arm *pose.Pose) {
	matrices := make([]mgl64.Mat3x4, len(arm.Local))
	for i, local := range arm.Local {
		matrices[i] = local.Mat3x4()
		if parent := arm.Skeleton.Parent(i); parent >= 0 {
			matrices[i] = vqm64.MatrixMul(matrices[i], matrices[parent])
		}
	}

	for i, object := range arm.Object {
		fmt.Printf("Joint %d:\n", i)
		fmt.Printf("  Translation: %v\n", object.Translation())
		fmt.Printf("  Rotation: %v\n", object.Rotation())
		fmt.Printf("  Scale/shear: %v\n", object.ScaleShear())

		diff := object.Mat3x4().Sub(matrices[i])
		fmt.Printf("  Max error vs matrix chain: %.3g\n", maxAbs(diff))
	}
}

func maxAbs(m mgl64.Mat3x4) float64 {
	var worst float64
	for _, x := range m {
		worst = max(worst, x, -x)
	}
	return worst
}

// SkinHand moves a small hand mesh attached to the last joint and reports its
// bounds as seen from a camera.
func SkinHand(arm *pose.Pose, inverseBind []vqm64.VQM) {
	hand := []mgl64.Vec3{
		{2.2, 1.5, 0}, {2.4, 1.5, 0}, {2.4, 1.7, 0}, {2.2, 1.7, 0},
	}

	// Bend the elbow further and skin with the new pose.
	if err := arm.SetLocal(2, arm.Local[2].WithRotation(mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1}))); err != nil {
		panic(err)
	}
	if err := arm.Update(); err != nil {
		panic(err)
	}

	skinning := make([]mgl64.Mat3x4, len(arm.Object))
	if err := arm.Skin(inverseBind, skinning); err != nil {
		panic(err)
	}

	skinned := make([]mgl64.Vec3, len(hand))
	pose.SkinPoints(skinned, hand, skinning[3])
	fmt.Printf("Skinned hand: %v\n", skinned)

	view := camera.Default.ViewLookTo(mgl64.Vec3{0, 2, -10}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0})
	bounds := batch.TransformedBounds(skinned, view)
	fmt.Printf("Hand bounds in view space: min=%v max=%v\n", bounds.Min, bounds.Max)

	// Box approximating what the camera sees, in view space.
	visible := batch.AABB{Min: mgl64.Vec3{-4, -3, 0.1}, Max: mgl64.Vec3{4, 3, 50}}
	fmt.Printf("Hand visible: %v\n", visible.Overlaps(bounds))

	wrist := vqm64.MatrixMulPoint3(arm.Object[3].Translation(), view)
	fmt.Printf("Wrist inside view box: %v\n", visible.ContainsPoint(wrist))

	single := cast.VQMf(arm.Object[3])
	fmt.Printf("Hand joint in single precision: %v\n", single)
}

func main() {
	fmt.Println("Skeleton evaluation")
	fmt.Println("===================")
	fmt.Printf("Batch kernels: %v (%s)\n", batch.CurrentLevel(), batch.CurrentName())
	fmt.Println()

	arm, inverseBind := SetupArm()
	PrintJoints(arm)
	fmt.Println()

	SkinHand(arm, inverseBind)
}
