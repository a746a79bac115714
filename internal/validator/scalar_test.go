package validator

import (
	"bytes"
	"testing"
)

func TestScalar_Sequences(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		valid  bool
		errIdx int
	}{
		// One row per Table 3-7 boundary.
		{"ascii min", []byte{0x00}, true, -1},
		{"ascii max", []byte{0x7F}, true, -1},
		{"two byte min", []byte{0xC2, 0x80}, true, -1},
		{"two byte max", []byte{0xDF, 0xBF}, true, -1},
		{"three byte E0 min", []byte{0xE0, 0xA0, 0x80}, true, -1},
		{"three byte E1", []byte{0xE1, 0x80, 0x80}, true, -1},
		{"three byte EC", []byte{0xEC, 0xBF, 0xBF}, true, -1},
		{"three byte ED max", []byte{0xED, 0x9F, 0xBF}, true, -1},
		{"three byte EE", []byte{0xEE, 0x80, 0x80}, true, -1},
		{"three byte EF max", []byte{0xEF, 0xBF, 0xBF}, true, -1},
		{"four byte F0 min", []byte{0xF0, 0x90, 0x80, 0x80}, true, -1},
		{"four byte F3", []byte{0xF3, 0xBF, 0xBF, 0xBF}, true, -1},
		{"four byte F4 max", []byte{0xF4, 0x8F, 0xBF, 0xBF}, true, -1},

		{"stray continuation", []byte{0x80}, false, 0},
		{"overlong C0", []byte{0xC0, 0xAF}, false, 0},
		{"overlong C1", []byte{0xC1, 0x80}, false, 0},
		{"overlong E0", []byte{0xE0, 0x9F, 0x80}, false, 0},
		{"overlong F0", []byte{0xF0, 0x8F, 0x80, 0x80}, false, 0},
		{"surrogate ED A0", []byte{0xED, 0xA0, 0x80}, false, 0},
		{"above U+10FFFF", []byte{0xF4, 0x90, 0x80, 0x80}, false, 0},
		{"lead F5", []byte{0xF5, 0x80, 0x80, 0x80}, false, 0},
		{"lead FF", []byte{0xFF}, false, 0},

		{"truncated two byte", []byte{0xC2}, false, 0},
		{"truncated three byte", []byte{0xE2, 0x82}, false, 0},
		{"truncated four byte", []byte{0xF0, 0x9D, 0x84}, false, 0},
		{"two byte bad continuation", []byte{0xC2, 0x41}, false, 0},
		{"three byte bad third", []byte{0xE2, 0x82, 0x41}, false, 0},
		{"four byte bad fourth", []byte{0xF0, 0x9D, 0x84, 0x41}, false, 0},

		{"error after valid prefix", []byte("abc\xc3\xa9def\x80"), false, 8},
		{"truncation after valid prefix", []byte("hi\xe2\x82"), false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, idx := validateScalar(tt.input)
			if ok != tt.valid || idx != tt.errIdx {
				t.Errorf("validateScalar(% x) = (%v, %d), want (%v, %d)",
					tt.input, ok, idx, tt.valid, tt.errIdx)
			}
		})
	}
}

func TestScalar_ASCIIOnly(t *testing.T) {
	for _, n := range []int{0, 1, 7, 31, 32, 33, 100, 1000} {
		buf := bytes.Repeat([]byte{'a'}, n)
		if ok, idx := validateScalar(buf); !ok {
			t.Errorf("ASCII buffer of length %d reported invalid at %d", n, idx)
		}
	}
}

func TestScalar_Concatenation(t *testing.T) {
	// Any concatenation of individually legal sequences is legal.
	pieces := [][]byte{
		[]byte("a"),
		{0xC3, 0xA9},             // U+00E9
		{0xE0, 0xA0, 0x80},       // U+0800
		{0xED, 0x9F, 0xBF},       // U+D7FF
		{0xF0, 0x9D, 0x84, 0x9E}, // U+1D11E
		{0xF4, 0x8F, 0xBF, 0xBF}, // U+10FFFF
	}
	var buf []byte
	for i := 0; i < 10; i++ {
		for _, p := range pieces {
			buf = append(buf, p...)
		}
	}
	if ok, idx := validateScalar(buf); !ok {
		t.Fatalf("concatenated legal sequences reported invalid at %d", idx)
	}
}
