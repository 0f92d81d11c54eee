package qr

import (
	"fmt"
	"strings"
)

// ToSVGString renders c as a standalone SVG document: border is the
// width of the quiet zone in modules, and moduleSize scales each
// module to moduleSize SVG user units.
func (c *Code) ToSVGString(border, moduleSize int) string {
	size := c.size
	fullSize := (size + border*2) * moduleSize

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %d %d" stroke="none">`+"\n", fullSize, fullSize)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#FFFFFF"/>`+"\n", fullSize, fullSize)

	b.WriteString(`<path d="`)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !c.GetModule(x, y) {
				continue
			}
			px := (x + border) * moduleSize
			py := (y + border) * moduleSize
			fmt.Fprintf(&b, "M%d,%dh%dv%dh-%dz", px, py, moduleSize, moduleSize, moduleSize)
		}
	}
	b.WriteString(`" fill="#000000"/>` + "\n</svg>")
	return b.String()
}

// ToASCIIArt renders c for terminal display, using double-wide
// Unicode block characters so that each module is roughly square in a
// typical monospace font. border is the quiet zone width in modules.
func (c *Code) ToASCIIArt(border int) string {
	size := c.size
	var b strings.Builder

	for i := 0; i < size+border*2; i++ {
		b.WriteString("██")
	}
	b.WriteByte('\n')

	for y := -border; y < size+border; y++ {
		for i := 0; i < border; i++ {
			b.WriteString("██")
		}
		for x := 0; x < size; x++ {
			if c.GetModule(x, y) {
				b.WriteString("  ")
			} else {
				b.WriteString("██")
			}
		}
		for i := 0; i < border; i++ {
			b.WriteString("██")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ToDebugString returns c's modules as a grid of '0' (light) and '1'
// (dark) characters, space-separated within a row and newline-
// separated between rows, with no quiet zone. Intended for quick
// inspection in test failure output, not for scanning.
func (c *Code) ToDebugString() string {
	size := c.size
	var b strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if c.GetModule(x, y) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			if x < size-1 {
				b.WriteByte(' ')
			}
		}
		if y < size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String implements fmt.Stringer as ToDebugString, so that
// fmt.Print(c) and "%v"/"%s" formatting produce a readable grid.
func (c *Code) String() string { return c.ToDebugString() }
