//go:build arm64 && !purego

package batch

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// FMADD is part of the ARMv8-A baseline, math.FMA always compiles to it.
	setFusedMode()
}
