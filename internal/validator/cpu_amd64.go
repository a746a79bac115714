//go:build amd64

package validator

import (
	"golang.org/x/sys/cpu"
)

// hasWideVector reports whether the CPU has the 128/256-bit shuffle and
// saturating-arithmetic units the block step is shaped for.
func hasWideVector() bool {
	return cpu.X86.HasAVX2 || cpu.X86.HasSSE42
}
