package pose

import (
	"fmt"

	"github.com/akmonengine/vqm/vqm64"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose holds the animated state of a skeleton.
type Pose struct {
	Skeleton *Skeleton
	// Local transforms, relative to each parent joint
	Local []vqm64.VQM
	// Object transforms, valid after Update
	Object  []vqm64.VQM
	Workers int
}

// NewPose returns a pose of skeleton with every joint at identity.
func NewPose(skeleton *Skeleton) *Pose {
	p := &Pose{
		Skeleton: skeleton,
		Local:    make([]vqm64.VQM, skeleton.Len()),
		Object:   make([]vqm64.VQM, skeleton.Len()),
		Workers:  DEFAULT_WORKERS,
	}
	for i := range p.Local {
		p.Local[i] = vqm64.Identity()
		p.Object[i] = vqm64.Identity()
	}
	return p
}

// SetLocal replaces the local transform of a joint.
func (p *Pose) SetLocal(joint int, t vqm64.VQM) error {
	if joint < 0 || joint >= len(p.Local) {
		return fmt.Errorf("pose: joint %d out of range [0, %d)", joint, len(p.Local))
	}
	p.Local[joint] = t
	return nil
}

// Update recomputes the object transforms from the local ones.
func (p *Pose) Update() error {
	p.Workers = max(DEFAULT_WORKERS, p.Workers)
	return p.Skeleton.LocalToObject(p.Local, p.Object, p.Workers)
}

// Blend linearly blends the local transforms of p and other into p. Rotations
// are renormalized, scale and shear are blended component-wise.
func (p *Pose) Blend(other *Pose, weight float64) error {
	if len(other.Local) != len(p.Local) {
		return fmt.Errorf("pose: cannot blend %d joints with %d", len(p.Local), len(other.Local))
	}

	for i, local := range p.Local {
		to := other.Local[i]
		// Blend along the shortest arc.
		if local.Rotation().Dot(to.Rotation()) < 0 {
			to = to.WithRotation(to.Rotation().Scale(-1))
		}
		p.Local[i] = local.MulScalar(1 - weight).Add(to.MulScalar(weight)).Normalize()
	}
	return nil
}

// Skin computes the skinning matrices of the current object transforms.
func (p *Pose) Skin(inverseBind []vqm64.VQM, dst []mgl64.Mat3x4) error {
	return p.Skeleton.SkinningMatrices(p.Object, inverseBind, dst)
}
