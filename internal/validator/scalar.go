package validator

// isContinuation reports whether b is a UTF-8 continuation byte (80..BF).
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// validateScalar checks p one code point at a time against Table 3-7.
// It returns (true, -1) when every byte belongs to a complete, well-formed
// sequence, otherwise (false, i) where i is the index of the lead byte of
// the first ill-formed or truncated sequence.
func validateScalar(p []byte) (bool, int) {
	n := len(p)
	i := 0
	for i < n {
		c := p[i]
		switch {
		case c <= 0x7F:
			i++

		case c < 0xC2:
			// Stray continuation byte, or overlong lead C0/C1.
			return false, i

		case c <= 0xDF:
			if n-i < 2 || !isContinuation(p[i+1]) {
				return false, i
			}
			i += 2

		case c <= 0xEF:
			if n-i < 3 || !isContinuation(p[i+1]) || !isContinuation(p[i+2]) {
				return false, i
			}
			// E0 excludes overlong encodings, ED excludes surrogates.
			if (c == 0xE0 && p[i+1] < 0xA0) || (c == 0xED && p[i+1] > 0x9F) {
				return false, i
			}
			i += 3

		case c <= 0xF4:
			if n-i < 4 || !isContinuation(p[i+1]) ||
				!isContinuation(p[i+2]) || !isContinuation(p[i+3]) {
				return false, i
			}
			// F0 excludes overlong encodings, F4 caps at U+10FFFF.
			if (c == 0xF0 && p[i+1] < 0x90) || (c == 0xF4 && p[i+1] > 0x8F) {
				return false, i
			}
			i += 4

		default:
			// F5..FF can never start a sequence.
			return false, i
		}
	}
	return true, -1
}
