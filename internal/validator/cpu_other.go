//go:build !amd64 && !arm64

package validator

// hasWideVector returns false on architectures without wide vector units;
// Validate runs the scalar path for the whole buffer. The block path yields
// bit-identical results, so this is a speed decision only.
func hasWideVector() bool {
	return false
}
