//go:build amd64 && !purego

package batch

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// math.FMA falls back to a slow software path without the FMA3 extension.
	if cpu.X86.HasFMA {
		setFusedMode()
	} else {
		setWideMode()
	}
}
