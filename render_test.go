package qr

import (
	"strings"
	"testing"
)

func TestToSVGStringWellFormed(t *testing.T) {
	c, err := EncodeText("test", L)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	svg := c.ToSVGString(4, 10)
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("ToSVGString does not start with <svg: %q", svg[:20])
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("ToSVGString does not end with </svg>")
	}
	if !strings.Contains(svg, `fill="#000000"`) {
		t.Error("ToSVGString missing dark fill")
	}
}

func TestToASCIIArtContainsBlocks(t *testing.T) {
	c, err := EncodeText("test", L)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	art := c.ToASCIIArt(2)
	if !strings.Contains(art, "██") {
		t.Error("ToASCIIArt does not contain block characters")
	}
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if len(lines) != c.Size()+2*2+1 {
		t.Errorf("ToASCIIArt produced %d lines, want %d", len(lines), c.Size()+2*2+1)
	}
}

func TestToDebugStringCharset(t *testing.T) {
	c, err := EncodeText("test", L)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	dbg := c.ToDebugString()
	for _, r := range dbg {
		switch r {
		case '0', '1', ' ', '\n':
		default:
			t.Fatalf("ToDebugString contains unexpected rune %q", r)
		}
	}
	rows := strings.Split(dbg, "\n")
	if len(rows) != c.Size() {
		t.Errorf("ToDebugString has %d rows, want %d", len(rows), c.Size())
	}
}

func TestStringMatchesToDebugString(t *testing.T) {
	c, err := EncodeText("test", L)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if c.String() != c.ToDebugString() {
		t.Error("String() does not match ToDebugString()")
	}
}
