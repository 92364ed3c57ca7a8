// Package swizzle selects and mixes lanes of four-wide vectors.
//
// Lanes X, Y, Z and W read the first input, lanes A, B, C and D read the
// second one. Mixing two vectors lane by lane is the building block for
// transposes and shuffles of matrix axes.
package swizzle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Component names one lane of one of the two mixed inputs.
type Component int

const (
	X Component = iota
	Y
	Z
	W

	A
	B
	C
	D
)

// IsFirst reports whether the component reads the first input.
func (c Component) IsFirst() bool {
	return c >= X && c <= W
}

// Lane returns the lane index the component reads, whatever the input.
func (c Component) Lane() int {
	return int(c) % 4
}

func (c Component) String() string {
	switch c {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	case A:
		return "a"
	case B:
		return "b"
	case C:
		return "c"
	case D:
		return "d"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// Mix4f returns a vector whose lanes are picked from in0 and in1.
func Mix4f(in0, in1 mgl32.Vec4, c0, c1, c2, c3 Component) mgl32.Vec4 {
	return mix(in0, in1, c0, c1, c2, c3)
}

// Mix4d returns a vector whose lanes are picked from in0 and in1.
func Mix4d(in0, in1 mgl64.Vec4, c0, c1, c2, c3 Component) mgl64.Vec4 {
	return mix(in0, in1, c0, c1, c2, c3)
}

// Get4f returns the lane of v named by c. A..D read the same lanes as X..W.
func Get4f(v mgl32.Vec4, c Component) float32 {
	return v[c.Lane()]
}

// Get4d returns the lane of v named by c. A..D read the same lanes as X..W.
func Get4d(v mgl64.Vec4, c Component) float64 {
	return v[c.Lane()]
}

// Dup4f replicates one lane of v in all four lanes.
func Dup4f(v mgl32.Vec4, c Component) mgl32.Vec4 {
	x := Get4f(v, c)
	return mgl32.Vec4{x, x, x, x}
}

// Dup4d replicates one lane of v in all four lanes.
func Dup4d(v mgl64.Vec4, c Component) mgl64.Vec4 {
	x := Get4d(v, c)
	return mgl64.Vec4{x, x, x, x}
}

func mix[V ~[4]E, E float32 | float64](in0, in1 V, c0, c1, c2, c3 Component) V {
	return V{pick(in0, in1, c0), pick(in0, in1, c1), pick(in0, in1, c2), pick(in0, in1, c3)}
}

func pick[V ~[4]E, E float32 | float64](in0, in1 V, c Component) E {
	if c.IsFirst() {
		return in0[c.Lane()]
	}
	return in1[c.Lane()]
}
