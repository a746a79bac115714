// Package validator implements UTF-8 well-formedness checking with exact
// error offsets, per the Unicode Table 3-7 byte-sequence rules.
//
// Two paths produce identical results: a scalar validator that consumes one
// code point at a time, and a wide-lane block path that classifies and
// bound-checks 32 bytes per step through range-index tables. The block path
// never pinpoints a failure itself; it narrows the search and hands the tail
// to the scalar validator, which owns offset reporting.
package validator

// Validate reports whether p is well-formed UTF-8. When it is not, the
// second result is the index of the first byte that breaks conformance;
// when it is, the second result is -1.
//
// Validate never allocates and never retains p. It is safe for concurrent
// use on distinct or shared buffers.
func Validate(p []byte) (bool, int) {
	if len(p) < blockSize || !hasWideVector() {
		return validateScalar(p)
	}
	return validateBlocks(p)
}

// validateBlocks runs the block step over every full 32-byte block, then
// reconciles the boundary and finishes with the scalar validator.
func validateBlocks(p []byte) (bool, int) {
	var st blockState
	confirmed := 0
	for len(p)-confirmed >= blockSize {
		if !st.check(vec(p[confirmed : confirmed+blockSize])) {
			break
		}
		confirmed += blockSize
	}

	// Error inside the very first block: rescan everything from the start
	// so the scalar validator is the single source of truth for the offset.
	if confirmed == 0 {
		return validateScalar(p)
	}

	// The last confirmed block may end mid-sequence. Back up to the lead
	// byte so the scalar pass never starts on a continuation byte.
	start := confirmed - st.rewind()
	if ok, i := validateScalar(p[start:]); !ok {
		return false, start + i
	}
	return true, -1
}
