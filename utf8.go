// Package utf8valid validates that a byte buffer is well-formed UTF-8 and,
// when it is not, reports the offset of the first offending byte.
//
// Unlike unicode/utf8.Valid, which only returns a verdict, this package
// tells the caller where validation failed, which is what rejection and
// sanitization paths need. Large buffers are scanned 32 bytes at a time on
// architectures with wide vector units, with a byte-at-a-time fallback that
// produces identical results everywhere.
package utf8valid

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/biggeezerdevelopment/utf8valid-go/internal/validator"
)

// ErrInvalidUTF8 is the sentinel all validation failures unwrap to.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// InvalidError reports the position of the first ill-formed byte.
type InvalidError struct {
	Index int
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte at offset %d", e.Index)
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalidUTF8
}

// Valid reports whether p is well-formed UTF-8. The empty buffer is valid.
func Valid(p []byte) bool {
	ok, _ := validator.Validate(p)
	return ok
}

// Validate reports whether p is well-formed UTF-8. When it is not, errIndex
// is the 0-based offset of the first byte that breaks conformance; when it
// is, errIndex is -1.
func Validate(p []byte) (valid bool, errIndex int) {
	return validator.Validate(p)
}

// ValidString is Valid for strings, without copying.
func ValidString(s string) bool {
	if len(s) == 0 {
		return true
	}
	ok, _ := validator.Validate(unsafe.Slice(unsafe.StringData(s), len(s)))
	return ok
}

// Check returns nil when p is well-formed UTF-8, otherwise an *InvalidError
// naming the first offending byte.
func Check(p []byte) error {
	if ok, i := validator.Validate(p); !ok {
		return &InvalidError{Index: i}
	}
	return nil
}
