package qr

import "testing"

func TestNewVersionRange(t *testing.T) {
	if v := NewVersion(1); v.Value() != 1 {
		t.Errorf("NewVersion(1).Value() = %d, want 1", v.Value())
	}
	if v := NewVersion(40); v.Value() != 40 {
		t.Errorf("NewVersion(40).Value() = %d, want 40", v.Value())
	}
}

func TestNewVersionPanicsOutOfRange(t *testing.T) {
	for _, v := range []int{0, -1, 41, 255} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewVersion(%d) did not panic", v)
				}
			}()
			NewVersion(v)
		}()
	}
}

func TestNewMaskPanicsOutOfRange(t *testing.T) {
	for _, m := range []int{-1, 8, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewMask(%d) did not panic", m)
				}
			}()
			NewMask(m)
		}()
	}
}

func TestErrorCorrectionLevelString(t *testing.T) {
	tests := []struct {
		l    ErrorCorrectionLevel
		want string
	}{
		{L, "L"}, {M, "M"}, {Q, "Q"}, {H, "H"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", int(tt.l), got, tt.want)
		}
	}
}

func TestDataTooLongErrorMessages(t *testing.T) {
	e1 := &DataTooLongError{Kind: SegmentTooLong}
	if e1.Error() == "" {
		t.Error("SegmentTooLong error message is empty")
	}
	e2 := &DataTooLongError{Kind: DataOverCapacity, DataBits: 200, CapacityBits: 152}
	if e2.Error() == "" {
		t.Error("DataOverCapacity error message is empty")
	}
}
