package validator

// Wide-lane block step of the range scan. The algorithm is shaped for
// 256-bit vector registers; this is a lane-exact software rendition, so the
// block path produces bit-identical verdicts on every architecture that
// enables it. Each helper mirrors one vector primitive: per-lane table
// shuffle (high bit clears the lane), concatenation shifts pulling bytes in
// from the previous block, and unsigned saturating add/sub.

// blockSize is the number of bytes classified and bound-checked per step.
const blockSize = 32

// vec is one block's worth of byte lanes.
type vec [blockSize]byte

// lookup shuffles tbl by idx: a set high bit yields zero, otherwise the low
// nibble of the lane selects the table slot.
func lookup(tbl *[16]byte, idx vec) vec {
	var out vec
	for i, b := range idx {
		if b&0x80 == 0 {
			out[i] = tbl[b&0x0F]
		}
	}
	return out
}

// shiftIn shifts cur right by n lanes, pulling the last n lanes of prev
// into the vacated low lanes.
func shiftIn(prev, cur *vec, n int) vec {
	var out vec
	copy(out[:n], prev[blockSize-n:])
	copy(out[n:], cur[:blockSize-n])
	return out
}

func saturateSub(v vec, k byte) vec {
	for i, b := range v {
		if b < k {
			v[i] = 0
		} else {
			v[i] = b - k
		}
	}
	return v
}

func saturateAdd(v vec, k byte) vec {
	for i, b := range v {
		if b > 0xFF-k {
			v[i] = 0xFF
		} else {
			v[i] = b + k
		}
	}
	return v
}

func orLanes(a *vec, b vec) {
	for i := range a {
		a[i] |= b[i]
	}
}

// blockState carries the classification context a block needs from its
// predecessor: a multi-byte sequence may begin near the end of one block
// and finish in the next.
type blockState struct {
	prevInput    vec
	prevFirstLen vec
}

// check classifies and bound-checks every lane of input in one pass. On
// success it absorbs the block into the carry state and returns true; on
// failure the state is left untouched and the caller falls back to the
// scalar validator for the exact offset.
func (st *blockState) check(input vec) bool {
	// Lane-wise lead-byte classification by high nibble.
	var firstLen, ranges vec
	for i, b := range input {
		hn := b >> 4
		firstLen[i] = firstLenTbl[hn]
		ranges[i] = firstRangeTbl[hn]
	}

	// Second byte: a lane one position after a lead byte of class N gets
	// range index N (1 for C0..DF, 2 for E0..EF, 3 for F0..FF).
	orLanes(&ranges, shiftIn(&st.prevFirstLen, &firstLen, 1))

	// Third byte: saturateSub keeps one- and two-byte classes at zero.
	orLanes(&ranges, saturateSub(shiftIn(&st.prevFirstLen, &firstLen, 2), 1))

	// Fourth byte.
	orLanes(&ranges, saturateSub(shiftIn(&st.prevFirstLen, &firstLen, 3), 2))

	// A lane claimed by two overlapping sequences ORs two nonzero indices
	// together and lands in the unsatisfiable 9..15 slots, e.g.
	// F1 80 C2 90 classifies as 8 3 10 2 where 10 forces failure.

	// Narrow the second-byte range after the four special leads. pos is the
	// previous byte's modular distance from 0xEF: E0/ED land in 241..255
	// (reached through saturateSub(pos,240)), F0/F4 in 1..15 (reached
	// through saturateAdd(pos,112) hitting slots 113..127).
	shift1 := shiftIn(&st.prevInput, &input, 1)
	var pos vec
	for i, b := range shift1 {
		pos[i] = b - 0xEF
	}
	adjust := lookup(&efAdjustTbl, saturateSub(pos, 240))
	f0adj := lookup(&f0AdjustTbl, saturateAdd(pos, 112))
	for i := range ranges {
		ranges[i] += adjust[i] + f0adj[i]
	}

	// Bound check: every lane must fall inside its range, compared signed.
	minv := lookup(&rangeMinTbl, ranges)
	maxv := lookup(&rangeMaxTbl, ranges)
	for i, b := range input {
		if int8(b) < int8(minv[i]) || int8(b) > int8(maxv[i]) {
			return false
		}
	}

	st.prevInput = input
	st.prevFirstLen = firstLen
	return true
}

// rewind reports how many trailing bytes of the last confirmed block (0 to 3)
// the scalar pass must revisit so that it starts at a sequence boundary: the
// distance back to the last lane that is not a continuation byte.
func (st *blockState) rewind() int {
	switch {
	case !isContinuation(st.prevInput[blockSize-1]):
		return 1
	case !isContinuation(st.prevInput[blockSize-2]):
		return 2
	case !isContinuation(st.prevInput[blockSize-3]):
		return 3
	}
	return 0
}
