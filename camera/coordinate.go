package camera

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Handedness represents the winding of a coordinate system
type Handedness int

const (
	LeftHanded Handedness = iota
	RightHanded
)

func (h Handedness) String() string {
	if h == RightHanded {
		return "right-handed"
	}
	return "left-handed"
}

// Axis represents one of the three world axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// CoordinateSystem maps the forward, cross and up directions onto world axes
type CoordinateSystem struct {
	Handedness Handedness
	Forward    Axis
	Cross      Axis
	Up         Axis
}

// Default is left handed with Z forward, X cross and Y up.
var Default = CoordinateSystem{
	Handedness: LeftHanded,
	Forward:    AxisZ,
	Cross:      AxisX,
	Up:         AxisY,
}

var ErrDuplicateAxis = errors.New("coordinate system axes must be unique")

// Validate checks that forward, cross and up name three different axes.
func (cs CoordinateSystem) Validate() error {
	for _, a := range []Axis{cs.Forward, cs.Cross, cs.Up} {
		if a < AxisX || a > AxisZ {
			return fmt.Errorf("invalid axis %v", a)
		}
	}
	if cs.Forward == cs.Cross || cs.Forward == cs.Up || cs.Cross == cs.Up {
		return fmt.Errorf("%w: forward=%v cross=%v up=%v", ErrDuplicateAxis, cs.Forward, cs.Cross, cs.Up)
	}
	return nil
}

// XAxis returns whichever of forward, cross and up lies on the world X axis.
func (cs CoordinateSystem) XAxis(forward, cross, up mgl64.Vec3) mgl64.Vec3 {
	return cs.pick(AxisX, forward, cross, up)
}

// YAxis returns whichever of forward, cross and up lies on the world Y axis.
func (cs CoordinateSystem) YAxis(forward, cross, up mgl64.Vec3) mgl64.Vec3 {
	return cs.pick(AxisY, forward, cross, up)
}

// ZAxis returns whichever of forward, cross and up lies on the world Z axis.
func (cs CoordinateSystem) ZAxis(forward, cross, up mgl64.Vec3) mgl64.Vec3 {
	return cs.pick(AxisZ, forward, cross, up)
}

func (cs CoordinateSystem) pick(axis Axis, forward, cross, up mgl64.Vec3) mgl64.Vec3 {
	switch axis {
	case cs.Forward:
		return forward
	case cs.Cross:
		return cross
	default:
		return up
	}
}
