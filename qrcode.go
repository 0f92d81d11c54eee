package qr

import "github.com/vygonets-labs/qrfancy/internal/gf256"

// field is the GF(2^8) field used for QR Code error correction,
// modulo the standard primitive polynomial x^8+x^4+x^3+x^2+1 with
// generator element 2.
var field = gf256.NewField(0x11d, 2)

// Code is an immutable square grid of dark and light modules
// representing a QR Code symbol.
//
// Instances are built by the EncodeText/EncodeBinary/EncodeSegments*
// family of functions and are safe to share and read concurrently.
type Code struct {
	version Version
	size    int
	ecl     ErrorCorrectionLevel
	mask    Mask

	modules    []bool // module[y*size+x]; true = dark
	isFunction []bool // true for modules set by drawFunctionPatterns
}

func (c *Code) Version() Version { return c.version }
func (c *Code) Size() int { return c.size }
func (c *Code) ErrorCorrectionLevel() ErrorCorrectionLevel { return c.ecl }
func (c *Code) Mask() Mask { return c.mask }

// GetModule reports the color of the module at (x, y): true for dark,
// false for light. Coordinates outside [0, Size()) are treated as
// light (part of the implicit quiet zone).
func (c *Code) GetModule(x, y int) bool {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return false
	}
	return c.module(x, y)
}

func (c *Code) module(x, y int) bool { return c.modules[y*c.size+x] }

func (c *Code) setModule(x, y int, dark bool) { c.modules[y*c.size+x] = dark }

// EncodeText returns a Code representing text at the given error
// correction level, automatically segmenting text and choosing the
// smallest version that fits.
//
// The error correction level of the result may be higher than ecl if
// that can be done without increasing the version. Returns a
// *DataTooLongError if text is too long to fit in any version at ecl.
func EncodeText(text string, ecl ErrorCorrectionLevel) (*Code, error) {
	return EncodeSegments(MakeSegments(text), ecl)
}

// EncodeBinary returns a Code representing data, encoded as a single
// byte mode segment, at the given error correction level.
func EncodeBinary(data []byte, ecl ErrorCorrectionLevel) (*Code, error) {
	return EncodeSegments([]Segment{MakeBytes(data)}, ecl)
}

// EncodeSegments returns a Code representing segs at the given error
// correction level, automatically choosing the smallest version that
// fits, with error correction boost enabled. This is the mid-level
// API for callers who want to control segment mode switching
// themselves; see EncodeSegmentsAdvanced for full control.
func EncodeSegments(segs []Segment, ecl ErrorCorrectionLevel) (*Code, error) {
	return EncodeSegmentsAdvanced(segs, ecl, MinVersion, MaxVersion, nil, true)
}

// EncodeSegmentsAdvanced returns a Code representing segs with the
// given parameters.
//
// The smallest version in [minVersion, maxVersion] that fits is
// chosen. If boostECL is true, the resulting error correction level
// may exceed ecl if that is possible without increasing the version.
// If mask is non-nil, it forces that mask pattern instead of the
// 8-candidate search.
//
// EncodeSegmentsAdvanced panics if minVersion > maxVersion.
func EncodeSegmentsAdvanced(segs []Segment, ecl ErrorCorrectionLevel, minVersion, maxVersion Version, mask *Mask, boostECL bool) (*Code, error) {
	if minVersion > maxVersion {
		panic("qr: invalid version range")
	}

	var (
		ver         Version
		dataUsedBits int
	)
	for ver = minVersion; ; ver++ {
		dataCapacityBits := getNumDataCodewords(ver, ecl) * 8
		used, fits := getTotalBits(segs, ver)
		if fits && used <= dataCapacityBits {
			dataUsedBits = used
			break
		}
		if ver >= maxVersion {
			if !fits {
				return nil, &DataTooLongError{Kind: SegmentTooLong}
			}
			return nil, &DataTooLongError{
				Kind:         DataOverCapacity,
				DataBits:     used,
				CapacityBits: dataCapacityBits,
			}
		}
	}

	if boostECL {
		for _, newecl := range []ErrorCorrectionLevel{M, Q, H} {
			if dataUsedBits <= getNumDataCodewords(ver, newecl)*8 {
				ecl = newecl
			}
		}
	}

	var bb BitBuffer
	for _, seg := range segs {
		bb.AppendBits(seg.mode.modeBits(), 4)
		bb.AppendBits(uint32(seg.numChars), seg.mode.numCharCountBits(ver))
		bb = append(bb, seg.data...)
	}

	dataCapacityBits := getNumDataCodewords(ver, ecl) * 8
	numZeroBits := min(4, dataCapacityBits-len(bb))
	bb.AppendBits(0, numZeroBits)
	numZeroBits = -len(bb) & 7
	bb.AppendBits(0, numZeroBits)

	for i := 0; len(bb) < dataCapacityBits; i++ {
		padByte := [2]uint32{0xEC, 0x11}[i%2]
		bb.AppendBits(padByte, 8)
	}

	dataCodewords := bitsToBytes(bb)
	return encodeCodewords(ver, ecl, dataCodewords, mask), nil
}

// encodeCodewords builds a Code from its version, error correction
// level and already-assembled data codewords (terminator, padding and
// all, excluding error correction codewords).
//
// This is the low-level constructor; most callers want EncodeText,
// EncodeBinary or EncodeSegments.
func encodeCodewords(ver Version, ecl ErrorCorrectionLevel, dataCodewords []byte, forcedMask *Mask) *Code {
	size := ver.size()
	c := &Code{
		version:    ver,
		size:       size,
		ecl:        ecl,
		modules:    make([]bool, size*size),
		isFunction: make([]bool, size*size),
	}

	c.drawFunctionPatterns()
	allCodewords := c.addECCAndInterleave(dataCodewords)
	c.drawCodewords(allCodewords)

	var chosen Mask
	if forcedMask != nil {
		chosen = *forcedMask
		c.applyMask(chosen)
		c.drawFormatBits(chosen)
	} else {
		minPenalty := 1 << 30
		for i := 0; i < 8; i++ {
			m := Mask(i)
			c.applyMask(m)
			c.drawFormatBits(m)
			if p := c.getPenaltyScore(); p < minPenalty {
				chosen, minPenalty = m, p
			}
			c.applyMask(m) // undo; XOR is its own inverse
		}
		c.applyMask(chosen)
		c.drawFormatBits(chosen)
	}
	c.mask = chosen
	c.isFunction = nil
	return c
}

// --- function pattern drawing ---

func (c *Code) drawFunctionPatterns() {
	size := c.size
	for i := 0; i < size; i++ {
		c.setFunctionModule(6, i, i%2 == 0)
		c.setFunctionModule(i, 6, i%2 == 0)
	}

	c.drawFinderPattern(3, 3)
	c.drawFinderPattern(size-4, 3)
	c.drawFinderPattern(3, size-4)

	alignPos := getAlignmentPatternPositions(c.version)
	numAlign := len(alignPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if (i == 0 && j == 0) || (i == 0 && j == numAlign-1) || (i == numAlign-1 && j == 0) {
				continue
			}
			c.drawAlignmentPattern(alignPos[i], alignPos[j])
		}
	}

	c.drawFormatBits(Mask(0))
	c.drawVersion()
}

func (c *Code) drawFormatBits(mask Mask) {
	data := c.ecl.formatBits()<<3 | uint32(mask.Value())
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits := data<<10 | rem
	bits ^= 0x5412

	for i := 0; i < 6; i++ {
		c.setFunctionModule(8, i, getBit(bits, i))
	}
	c.setFunctionModule(8, 7, getBit(bits, 6))
	c.setFunctionModule(8, 8, getBit(bits, 7))
	c.setFunctionModule(7, 8, getBit(bits, 8))
	for i := 9; i < 15; i++ {
		c.setFunctionModule(14-i, 8, getBit(bits, i))
	}

	size := c.size
	for i := 0; i < 8; i++ {
		c.setFunctionModule(size-1-i, 8, getBit(bits, i))
	}
	for i := 8; i < 15; i++ {
		c.setFunctionModule(8, size-15+i, getBit(bits, i))
	}
	c.setFunctionModule(8, size-8, true)
}

func (c *Code) drawVersion() {
	if c.version < 7 {
		return
	}
	data := uint32(c.version.Value())
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	bits := data<<12 | rem

	for i := 0; i < 18; i++ {
		bit := getBit(bits, i)
		a := c.size - 11 + i%3
		b := i / 3
		c.setFunctionModule(a, b, bit)
		c.setFunctionModule(b, a, bit)
	}
}

func (c *Code) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= c.size || yy < 0 || yy >= c.size {
				continue
			}
			dist := max(abs(dx), abs(dy))
			c.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

func (c *Code) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

func (c *Code) setFunctionModule(x, y int, dark bool) {
	c.setModule(x, y, dark)
	c.isFunction[y*c.size+x] = true
}

// --- codewords and masking ---

func (c *Code) addECCAndInterleave(data []byte) []byte {
	ver, ecl := c.version, c.ecl
	if len(data) != getNumDataCodewords(ver, ecl) {
		panic("qr: wrong data codeword count")
	}

	numBlocks := tableGet(&numErrorCorrectionBlocks, ver, ecl)
	blockECCLen := tableGet(&eccCodewordsPerBlock, ver, ecl)
	rawCodewords := getNumRawDataModules(ver) / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	blocks := make([][]byte, numBlocks)
	rs := gf256.NewRSEncoder(field, blockECCLen)
	k := 0
	for i := 0; i < numBlocks; i++ {
		datLen := shortBlockLen - blockECCLen
		if i >= numShortBlocks {
			datLen++
		}
		dat := append([]byte{}, data[k:k+datLen]...)
		k += datLen
		ecc := make([]byte, blockECCLen)
		rs.ECC(dat, ecc)
		if i < numShortBlocks {
			dat = append(dat, 0)
		}
		dat = append(dat, ecc...)
		blocks[i] = dat
	}

	result := make([]byte, 0, rawCodewords)
	for i := 0; i <= shortBlockLen; i++ {
		for j, block := range blocks {
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result = append(result, block[i])
			}
		}
	}
	return result
}

func (c *Code) drawCodewords(data []byte) {
	if len(data) != getNumRawDataModules(c.version)/8 {
		panic("qr: wrong raw codeword count")
	}

	i := 0
	right := c.size - 1
	for right >= 1 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < c.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				y := vert
				if upward {
					y = c.size - 1 - vert
				}
				if !c.isFunction[y*c.size+x] && i < len(data)*8 {
					c.setModule(x, y, getBit(uint32(data[i>>3]), 7-(i&7)))
					i++
				}
			}
		}
		right -= 2
	}
}

func (c *Code) applyMask(mask Mask) {
	size := c.size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if c.isFunction[y*size+x] {
				continue
			}
			if maskInvert(mask, x, y) {
				c.setModule(x, y, !c.module(x, y))
			}
		}
	}
}

func maskInvert(mask Mask, x, y int) bool {
	switch mask.Value() {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qr: invalid mask")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
