package cast

import (
	"github.com/akmonengine/vqm/vqm32"
	"github.com/akmonengine/vqm/vqm64"
)

// VQMd widens a single precision transform. The conversion is exact.
func VQMd(t vqm32.VQM) vqm64.VQM {
	return vqm64.Identity().
		WithRotation(Quatd(t.Rotation())).
		WithTranslation(Vec3d(t.Translation())).
		WithScaleShear(Mat3d(t.ScaleShear()))
}

// VQMf narrows a double precision transform, rounding every component to the
// nearest float32.
func VQMf(t vqm64.VQM) vqm32.VQM {
	return vqm32.Identity().
		WithRotation(Quatf(t.Rotation())).
		WithTranslation(Vec3f(t.Translation())).
		WithScaleShear(Mat3f(t.ScaleShear()))
}
