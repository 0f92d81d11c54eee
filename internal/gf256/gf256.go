// Package gf256 implements GF(2^8) arithmetic and Reed-Solomon error
// correction codeword generation for QR Code symbols.
//
// The teacher's own gf256 package (github.com/unixdj/qr/gf256) is not
// present in this repository; its API shape is reconstructed here from
// its call sites (gf256.NewField(0x11d, 2), gf256.NewRSEncoder(Field,
// check), rs.ECC(data, dst)).
package gf256

// Field is a representation of GF(2^8) modulo a given irreducible
// polynomial, with arithmetic sped up by precomputed log/antilog
// tables built from a chosen generator (primitive root) element.
type Field struct {
	primitive byte
	expTable  [255]byte // exp[i] = primitive^i
	logTable  [256]byte // log[exp[i]] = i, log[0] is unused
}

// NewField returns a Field for GF(2^8) reduced modulo poly (an
// irreducible degree-8 polynomial over GF(2), given with its x^8 bit
// set; the QR standard uses 0x11d, i.e. x^8+x^4+x^3+x^2+1) using primitive as the
// generator element used to build the log/antilog tables (the QR
// standard uses 2).
func NewField(poly, primitive int) *Field {
	f := &Field{primitive: byte(primitive)}
	x := byte(1)
	for i := 0; i < 255; i++ {
		f.expTable[i] = x
		f.logTable[x] = byte(i)
		x = polMulMod(x, byte(primitive), poly)
	}
	return f
}

// polMulMod multiplies x by y in GF(2^8), reducing by poly using
// Russian-peasant multiplication with carry folded back through poly
// whenever the running product overflows 8 bits.
func polMulMod(x, y byte, poly int) byte {
	var z int
	xx := int(x)
	for i := 0; i < 8; i++ {
		if y&1 != 0 {
			z ^= xx
		}
		y >>= 1
		carry := xx & 0x80
		xx <<= 1
		if carry != 0 {
			xx ^= poly
		}
	}
	return byte(z & 0xff)
}

// multiply returns the product of x and y in f.
func (f *Field) multiply(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	sum := int(f.logTable[x]) + int(f.logTable[y])
	if sum >= 255 {
		sum -= 255
	}
	return f.expTable[sum]
}

// exp returns f's generator raised to the given non-negative power.
func (f *Field) exp(power int) byte {
	power %= 255
	if power < 0 {
		power += 255
	}
	return f.expTable[power]
}

// RSEncoder computes Reed-Solomon error correction codewords of a
// fixed degree over a Field.
type RSEncoder struct {
	field   *Field
	divisor []byte // generator polynomial coefficients, highest power first, leading 1 omitted
}

// NewRSEncoder returns an RSEncoder that appends nsym error correction
// bytes to a block of data bytes, using f for GF(2^8) arithmetic.
func NewRSEncoder(f *Field, nsym int) *RSEncoder {
	return &RSEncoder{field: f, divisor: computeDivisor(f, nsym)}
}

// computeDivisor returns the coefficients of the generator polynomial
// (x - g^0)(x - g^1)...(x - g^(degree-1)) over f, where g is f's
// generator element.
func computeDivisor(f *Field, degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("gf256: degree out of range")
	}
	result := make([]byte, degree)
	result[degree-1] = 1

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < degree; j++ {
			result[j] = f.multiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = f.multiply(root, f.primitive)
	}
	return result
}

// ECC computes the Reed-Solomon remainder of data divided by the
// generator polynomial and writes it to dst, which must be exactly
// len(rs.divisor) bytes long.
func (rs *RSEncoder) ECC(data, dst []byte) {
	n := len(rs.divisor)
	if len(dst) != n {
		panic("gf256: destination length does not match ECC degree")
	}
	rem := make([]byte, n)
	for _, b := range data {
		factor := b ^ rem[0]
		copy(rem, rem[1:])
		rem[n-1] = 0
		for i, coeff := range rs.divisor {
			rem[i] ^= rs.field.multiply(coeff, factor)
		}
	}
	copy(dst, rem)
}
