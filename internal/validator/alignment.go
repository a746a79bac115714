package validator

import (
	"unsafe"
)

// BlockAlignment is the alignment wide-vector loads prefer. Validate accepts
// arbitrarily aligned buffers; aligned ones simply avoid split loads.
const BlockAlignment = 32

// AlignedBuffer is a byte buffer whose first byte sits on an alignment
// boundary. The validator does not require it; tests use it to exercise both
// aligned and deliberately misaligned inputs.
type AlignedBuffer struct {
	raw     []byte
	aligned []byte
}

// NewAlignedBuffer allocates a buffer of size bytes aligned to the given
// power-of-two boundary.
func NewAlignedBuffer(size, alignment int) *AlignedBuffer {
	raw := make([]byte, size+alignment-1)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := (addr + uintptr(alignment-1))&^uintptr(alignment-1) - addr
	return &AlignedBuffer{
		raw:     raw,
		aligned: raw[offset : offset+uintptr(size)],
	}
}

// Bytes returns the aligned slice.
func (ab *AlignedBuffer) Bytes() []byte {
	return ab.aligned
}

// IsAligned reports whether ptr sits on the given power-of-two boundary.
func IsAligned(ptr unsafe.Pointer, alignment int) bool {
	return uintptr(ptr)&uintptr(alignment-1) == 0
}
