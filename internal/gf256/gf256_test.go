package gf256

import "testing"

// QR Codes fix the field polynomial at 0x11d (x^8+x^4+x^3+x^2+1) and
// the generator element at 2; reducing x^8 through that polynomial is
// a commonly-cited identity (x^8 = x^4+x^3+x^2+1 = 0x1d = 29) and
// serves as a sanity check on the log/antilog tables.
func TestFieldExpAndLogAgree(t *testing.T) {
	f := NewField(0x11d, 2)
	if got := f.exp(8); got != 29 {
		t.Errorf("exp(8) = %d, want 29", got)
	}
	if got := f.logTable[29]; got != 8 {
		t.Errorf("logTable[29] = %d, want 8", got)
	}
	if got := f.exp(0); got != 1 {
		t.Errorf("exp(0) = %d, want 1", got)
	}
}

func TestFieldMultiply(t *testing.T) {
	f := NewField(0x11d, 2)
	tests := []struct {
		x, y, want byte
	}{
		{2, 2, 4},
		{128, 2, 29},
		{0, 200, 0},
		{200, 0, 0},
		{1, 200, 200},
	}
	for _, tt := range tests {
		if got := f.multiply(tt.x, tt.y); got != tt.want {
			t.Errorf("multiply(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFieldMultiplyCommutative(t *testing.T) {
	f := NewField(0x11d, 2)
	for x := 0; x < 256; x += 17 {
		for y := 0; y < 256; y += 23 {
			a := f.multiply(byte(x), byte(y))
			b := f.multiply(byte(y), byte(x))
			if a != b {
				t.Fatalf("multiply(%d,%d)=%d != multiply(%d,%d)=%d", x, y, a, y, x, b)
			}
		}
	}
}

func TestExpTableHasNoDuplicates(t *testing.T) {
	f := NewField(0x11d, 2)
	seen := make(map[byte]bool, 255)
	for _, v := range f.expTable {
		if v == 0 {
			t.Fatal("expTable contains 0, which is not a power of a nonzero generator")
		}
		if seen[v] {
			t.Fatalf("expTable contains duplicate value %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 255 {
		t.Errorf("expTable has %d distinct nonzero values, want 255", len(seen))
	}
}

func TestRSEncoderOutputLength(t *testing.T) {
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 10)
	dst := make([]byte, 10)
	rs.ECC([]byte("hello world"), dst)
	if len(dst) != 10 {
		t.Errorf("len(dst) = %d, want 10", len(dst))
	}
}

func TestRSEncoderZeroDataYieldsZeroRemainder(t *testing.T) {
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 7)
	dst := make([]byte, 7)
	rs.ECC(make([]byte, 16), dst)
	for i, b := range dst {
		if b != 0 {
			t.Errorf("dst[%d] = %d, want 0 for all-zero input", i, b)
		}
	}
}

func TestRSEncoderNonZeroDataYieldsNonTrivialRemainder(t *testing.T) {
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 7)
	dst := make([]byte, 7)
	rs.ECC([]byte{1, 2, 3, 4, 5, 6, 7, 8}, dst)
	allZero := true
	for _, b := range dst {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("ECC of non-zero data produced an all-zero remainder")
	}
}

func TestRSEncoderDeterministic(t *testing.T) {
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 5)
	data := []byte("determinism check")
	a := make([]byte, 5)
	b := make([]byte, 5)
	rs.ECC(data, a)
	rs.ECC(data, b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ECC not deterministic: a[%d]=%d b[%d]=%d", i, a[i], i, b[i])
		}
	}
}

func TestRSEncoderPanicsOnWrongDestLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ECC did not panic on mismatched destination length")
		}
	}()
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 10)
	rs.ECC([]byte("data"), make([]byte, 9))
}
