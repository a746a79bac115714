package validator

// Classification tables for the range scan.
//
// Well-formed UTF-8 byte sequences (Unicode chapter 3, Table 3-7):
//
//	+--------------------+------------+-------------+------------+-------------+
//	| Code Points        | First Byte | Second Byte | Third Byte | Fourth Byte |
//	+--------------------+------------+-------------+------------+-------------+
//	| U+0000..U+007F     | 00..7F     |             |            |             |
//	| U+0080..U+07FF     | C2..DF     | 80..BF      |            |             |
//	| U+0800..U+0FFF     | E0         | A0..BF      | 80..BF     |             |
//	| U+1000..U+CFFF     | E1..EC     | 80..BF      | 80..BF     |             |
//	| U+D000..U+D7FF     | ED         | 80..9F      | 80..BF     |             |
//	| U+E000..U+FFFF     | EE..EF     | 80..BF      | 80..BF     |             |
//	| U+10000..U+3FFFF   | F0         | 90..BF      | 80..BF     | 80..BF      |
//	| U+40000..U+FFFFF   | F1..F3     | 80..BF      | 80..BF     | 80..BF      |
//	| U+100000..U+10FFFF | F4         | 80..8F      | 80..BF     | 80..BF      |
//	+--------------------+------------+-------------+------------+-------------+

// firstLenTbl maps the high nibble of a lead byte to the number of
// continuation bytes the sequence carries:
// 0 for 00..BF, 1 for C0..DF, 2 for E0..EF, 3 for F0..FF.
var firstLenTbl = [16]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 3,
}

// firstRangeTbl maps the high nibble of a lead byte to its initial range
// index: 8 (non-ASCII first byte, C2..F4) for C0..FF, 0 for everything else.
var firstRangeTbl = [16]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 8, 8, 8,
}

// rangeMinTbl and rangeMaxTbl map a range index to the legal [min,max] byte
// values, compared as signed 8-bit integers:
//
//	Index 0     : 00..7F  first byte, ASCII
//	Index 1,2,3 : 80..BF  second, third, fourth byte
//	Index 4     : A0..BF  second byte after E0
//	Index 5     : 80..9F  second byte after ED
//	Index 6     : 90..BF  second byte after F0
//	Index 7     : 80..8F  second byte after F4
//	Index 8     : C2..F4  first byte, non-ASCII
//	Index 9..15 : unsatisfiable (min 0x7F > max 0x80 signed), reached only
//	              when classification detects an illegal overlap
var rangeMinTbl = [16]byte{
	0x00, 0x80, 0x80, 0x80, 0xA0, 0x80, 0x90, 0x80,
	0xC2, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F,
}

var rangeMaxTbl = [16]byte{
	0x7F, 0xBF, 0xBF, 0xBF, 0xBF, 0x9F, 0xBF, 0x8F,
	0xF4, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
}

// Four lead bytes (E0, ED, F0, F4) constrain their second byte to a range
// narrower than the generic 80..BF. The block step detects them by the
// modular distance pos = lead - 0xEF and adds a range-index adjustment that
// redirects the second byte to range 4, 5, 6 or 7:
//
//	+------------+----------------+------------+----------------+
//	| First Byte | base range     | adjustment | adjusted range |
//	+------------+----------------+------------+----------------+
//	| E0         | 2              | 2          | 4              |
//	| ED         | 2              | 3          | 5              |
//	| F0         | 3              | 3          | 6              |
//	| F4         | 3              | 4          | 7              |
//	+------------+----------------+------------+----------------+

// efAdjustTbl is indexed by saturateSub(pos, 240): slot 1 selects E0,
// slot 14 selects ED.
var efAdjustTbl = [16]byte{
	0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0,
}

// f0AdjustTbl is indexed by saturateAdd(pos, 112): slot 1 selects F0,
// slot 5 selects F4. Sums of 128 or more fall outside the table and
// contribute zero.
var f0AdjustTbl = [16]byte{
	0, 3, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}
