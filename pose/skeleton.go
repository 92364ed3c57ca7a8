// Package pose evaluates joint hierarchies built from VQM transforms.
//
// Joints are stored flat, parents before children. Local transforms are
// relative to the parent joint, object transforms to the skeleton root.
// Independent root branches are evaluated in parallel.
package pose

import (
	"fmt"

	"github.com/akmonengine/vqm/batch"
	"github.com/akmonengine/vqm/vqm64"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// Skeleton describes an immutable joint hierarchy.
type Skeleton struct {
	// parents[i] is the parent of joint i, or -1 for a root.
	parents []int

	// Joint indices grouped by root, each in increasing order.
	branches [][]int
}

// NewSkeleton validates parents and returns the matching skeleton.
// Every parent index must precede its child.
func NewSkeleton(parents []int) (*Skeleton, error) {
	roots := make([]int, len(parents))
	branchOf := make(map[int]int)
	var branches [][]int

	for i, parent := range parents {
		switch {
		case parent == -1:
			roots[i] = i
			branchOf[i] = len(branches)
			branches = append(branches, nil)
		case parent < -1 || parent >= len(parents):
			return nil, fmt.Errorf("pose: joint %d has parent %d out of range [-1, %d)", i, parent, len(parents))
		case parent >= i:
			return nil, fmt.Errorf("pose: joint %d has parent %d, parents must precede their children", i, parent)
		default:
			roots[i] = roots[parent]
		}

		b := branchOf[roots[i]]
		branches[b] = append(branches[b], i)
	}

	return &Skeleton{parents: append([]int(nil), parents...), branches: branches}, nil
}

// Len returns the number of joints.
func (s *Skeleton) Len() int {
	return len(s.parents)
}

// Parent returns the parent of joint, or -1 for a root.
func (s *Skeleton) Parent(joint int) int {
	return s.parents[joint]
}

// Parents returns a copy of the parent indices.
func (s *Skeleton) Parents() []int {
	return append([]int(nil), s.parents...)
}

// Roots returns the indices of the root joints.
func (s *Skeleton) Roots() []int {
	roots := make([]int, 0, len(s.branches))
	for _, branch := range s.branches {
		roots = append(roots, branch[0])
	}
	return roots
}

// LocalToObject composes every local transform with its ancestors and writes
// the object space transforms to dst:
//
//	dst[i] = locals[i].Mul(dst[Parent(i)])
//
// Root branches are spread over workers goroutines.
func (s *Skeleton) LocalToObject(locals, dst []vqm64.VQM, workers int) error {
	if len(locals) != s.Len() || len(dst) != s.Len() {
		return fmt.Errorf("pose: got %d local and %d object transforms for %d joints", len(locals), len(dst), s.Len())
	}

	task(workers, s.branches, func(branch []int) {
		for _, joint := range branch {
			parent := s.parents[joint]
			if parent < 0 {
				dst[joint] = locals[joint]
				continue
			}
			dst[joint] = locals[joint].Mul(dst[parent])
		}
	})
	return nil
}

// SkinningMatrices writes, for every joint, the matrix moving a bind pose
// vertex to its current object space position.
func (s *Skeleton) SkinningMatrices(object, inverseBind []vqm64.VQM, dst []mgl64.Mat3x4) error {
	if len(object) != s.Len() || len(inverseBind) != s.Len() || len(dst) != s.Len() {
		return fmt.Errorf("pose: got %d object, %d inverse bind and %d matrices for %d joints",
			len(object), len(inverseBind), len(dst), s.Len())
	}

	for i := range dst {
		dst[i] = inverseBind[i].Mul(object[i]).Mat3x4()
	}
	return nil
}

// SkinPoints moves src by a single skinning matrix into dst.
func SkinPoints(dst, src []mgl64.Vec3, m mgl64.Mat3x4) {
	batch.MulPoints3d(dst, src, m)
}
