//go:build arm64

package validator

// NEON is baseline on arm64.
func hasWideVector() bool {
	return true
}
