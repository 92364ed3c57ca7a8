//go:build !amd64 && !arm64 && !purego

package batch

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	setWideMode()
}
