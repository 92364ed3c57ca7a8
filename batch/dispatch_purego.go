//go:build purego

package batch

func init() {
	setScalarMode()
}
