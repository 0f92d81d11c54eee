package qr

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// SegmentMode describes how a Segment's data bits are to be
// interpreted.
type SegmentMode int

const (
	Numeric      SegmentMode = iota // digits 0-9
	Alphanumeric                    // digits, uppercase letters, and a few symbols
	Byte                            // arbitrary 8-bit data
	Kanji                           // Shift JIS-encodable Japanese text
	ECI                             // Extended Channel Interpretation designator
)

// modeBits returns the 4-bit mode indicator for m.
func (m SegmentMode) modeBits() uint32 {
	return [...]uint32{Numeric: 0x1, Alphanumeric: 0x2, Byte: 0x4, Kanji: 0x8, ECI: 0x7}[m]
}

// numCharCountBits returns the bit width of the character count field
// for a segment in mode m within a symbol of the given version.
func (m SegmentMode) numCharCountBits(ver Version) int {
	class := (ver.Value() + 7) / 17 // 0 for v1-9, 1 for v10-26, 2 for v27-40
	return [...][3]int{
		Numeric:      {10, 12, 14},
		Alphanumeric: {9, 11, 13},
		Byte:         {8, 16, 16},
		Kanji:        {8, 10, 12},
		ECI:          {0, 0, 0},
	}[m][class]
}

// BitBuffer is an appendable sequence of bits, most significant bit
// appended first within each value passed to AppendBits.
type BitBuffer []bool

// AppendBits appends the low-order length bits of val to b, most
// significant of those bits first. length must be between 0 and 31,
// and val must fit in length bits.
func (b *BitBuffer) AppendBits(val uint32, length int) {
	if length < 0 || length > 31 || val>>uint(length) != 0 {
		panic("qr: value out of range")
	}
	for i := length - 1; i >= 0; i-- {
		*b = append(*b, getBit(val, i))
	}
}

// Segment is a chunk of character or binary data in a QR Code symbol,
// tagged with the mode used to encode it.
//
// Segment imposes no length restriction; a symbol's capacity does.
type Segment struct {
	mode     SegmentMode
	numChars int // characters/bytes represented, not len(data)
	data     BitBuffer
}

func (s Segment) Mode() SegmentMode { return s.mode }
func (s Segment) NumChars() int     { return s.numChars }
func (s Segment) Data() BitBuffer   { return s.data }

// NewSegment returns a Segment with the given mode, character count
// and data bits. The character count must agree with mode and data,
// but this is not checked.
func NewSegment(mode SegmentMode, numChars int, data BitBuffer) Segment {
	return Segment{mode: mode, numChars: numChars, data: data}
}

// MakeBytes returns a segment representing data encoded in byte mode.
func MakeBytes(data []byte) Segment {
	var bb BitBuffer
	for _, b := range data {
		bb.AppendBits(uint32(b), 8)
	}
	return NewSegment(Byte, len(data), bb)
}

// MakeNumeric returns a segment representing text, a string of
// decimal digits, encoded in numeric mode.
//
// MakeNumeric panics if text contains a non-digit character.
func MakeNumeric(text string) Segment {
	var bb BitBuffer
	n := 0
	var chunk [3]byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			panic("qr: non-numeric string")
		}
		chunk[n] = c - '0'
		n++
		if n == 3 {
			bb.AppendBits(uint32(chunk[0])*100+uint32(chunk[1])*10+uint32(chunk[2]), 10)
			n = 0
		}
	}
	if n > 0 {
		v := uint32(0)
		for i := 0; i < n; i++ {
			v = v*10 + uint32(chunk[i])
		}
		bb.AppendBits(v, n*3+1)
	}
	return NewSegment(Numeric, len(text), bb)
}

// alphanumericCharset is the set of all legal characters in
// alphanumeric mode, where a character's index in the string is its
// encoded value.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func alphanumericValue(c byte) (int, bool) {
	i := indexByte(alphanumericCharset, c)
	return i, i >= 0
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// MakeAlphanumeric returns a segment representing text encoded in
// alphanumeric mode.
//
// MakeAlphanumeric panics if text contains a character outside the
// alphanumeric mode charset (see IsAlphanumeric).
func MakeAlphanumeric(text string) Segment {
	var bb BitBuffer
	n := 0
	var chunk [2]int
	for i := 0; i < len(text); i++ {
		v, ok := alphanumericValue(text[i])
		if !ok {
			panic("qr: string contains unencodable characters in alphanumeric mode")
		}
		chunk[n] = v
		n++
		if n == 2 {
			bb.AppendBits(uint32(chunk[0]*45+chunk[1]), 11)
			n = 0
		}
	}
	if n > 0 {
		bb.AppendBits(uint32(chunk[0]), 6)
	}
	return NewSegment(Alphanumeric, len(text), bb)
}

// MakeKanji returns a segment representing text, interpreted as
// Shift JIS-encodable Japanese text, encoded in Kanji mode.
//
// text must decode to Shift JIS cleanly, and every character must be
// a double-byte Shift JIS character: the Shift JIS bytes are packed in
// pairs, so single-byte characters (ASCII, half-width katakana) do not
// round-trip. MakeKanji panics if text cannot be transcoded or
// contains an odd number of Shift JIS bytes.
func MakeKanji(text string) Segment {
	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	if err != nil {
		panic("qr: string not encodable as Shift JIS: " + err.Error())
	}
	if len(sjis)%2 != 0 {
		panic("qr: internal error: odd Shift JIS length")
	}
	var bb BitBuffer
	numChars := 0
	for i := 0; i < len(sjis); i += 2 {
		hi, lo := sjis[i], sjis[i+1]
		v := uint32(hi&^0xc0)*0xc0 + uint32(lo) - 0x100
		bb.AppendBits(v, 13)
		numChars++
	}
	return NewSegment(Kanji, numChars, bb)
}

// MakeECI returns a segment representing an Extended Channel
// Interpretation designator with the given assignment value.
//
// MakeECI panics if assignVal is negative or >= 1_000_000.
func MakeECI(assignVal int) Segment {
	var bb BitBuffer
	switch {
	case assignVal < 0:
		panic("qr: ECI assignment value out of range")
	case assignVal < 1<<7:
		bb.AppendBits(uint32(assignVal), 8)
	case assignVal < 1<<14:
		bb.AppendBits(0b10, 2)
		bb.AppendBits(uint32(assignVal), 14)
	case assignVal < 1_000_000:
		bb.AppendBits(0b110, 3)
		bb.AppendBits(uint32(assignVal), 21)
	default:
		panic("qr: ECI assignment value out of range")
	}
	return NewSegment(ECI, 0, bb)
}

// IsNumeric reports whether every character of text is a decimal
// digit, i.e. whether text can be encoded as a segment in numeric
// mode.
func IsNumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether text can be encoded as a segment in
// alphanumeric mode.
func IsAlphanumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if _, ok := alphanumericValue(text[i]); !ok {
			return false
		}
	}
	return true
}

// getTotalBits returns the number of bits needed to encode segs
// (mode indicators, character count fields and data) at the given
// version. The second return value is false if some segment's
// character count does not fit the count field's bit width at this
// version.
func getTotalBits(segs []Segment, ver Version) (int, bool) {
	total := 0
	for _, seg := range segs {
		ccbits := seg.mode.numCharCountBits(ver)
		if ccbits < 31 && seg.numChars >= 1<<uint(ccbits) {
			return 0, false
		}
		total += 4 + ccbits + len(seg.data)
	}
	return total, true
}

// MakeSegments returns a list of segments representing text, split
// into maximal runs of a single mode by a single greedy left-to-right
// pass: each rune is classified into the narrowest mode capable of
// encoding it (Numeric, Alphanumeric or Byte, in that order of
// preference), and a new segment starts whenever that classification
// changes. This does not attempt the globally cost-optimal split
// (which can do better by absorbing short runs of a narrower mode into
// a surrounding wider one) — only the cheap single-pass greedy one.
//
// MakeSegments returns nil for an empty string.
func MakeSegments(text string) []Segment {
	if text == "" {
		return nil
	}
	var segs []Segment
	classifyRune := func(r rune) SegmentMode {
		switch {
		case r >= '0' && r <= '9':
			return Numeric
		case r < utf8.RuneSelf && indexByte(alphanumericCharset, byte(r)) >= 0:
			return Alphanumeric
		default:
			return Byte
		}
	}

	runStart := 0
	runMode := classifyRune(firstRune(text))
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		mode := classifyRune(r)
		if mode != runMode {
			segs = append(segs, makeSegmentFor(runMode, text[runStart:i]))
			runStart = i
			runMode = mode
		}
		i += size
	}
	segs = append(segs, makeSegmentFor(runMode, text[runStart:]))
	return segs
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func makeSegmentFor(mode SegmentMode, text string) Segment {
	switch mode {
	case Numeric:
		return MakeNumeric(text)
	case Alphanumeric:
		return MakeAlphanumeric(text)
	default:
		return MakeBytes([]byte(text))
	}
}

// bitsToBytes packs bb into bytes, most significant bit first, padding
// the final byte with zero bits if necessary. bb's length must be a
// multiple of 8 for the result to represent bb exactly; partial final
// bytes are zero-padded on the low end, matching AppendBits order.
func bitsToBytes(bb BitBuffer) []byte {
	out := make([]byte, (len(bb)+7)/8)
	for i, bit := range bb {
		if bit {
			out[i>>3] |= 1 << uint(7-(i&7))
		}
	}
	return out
}
