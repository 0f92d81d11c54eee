// Package fancy renders QR Code symbols as stylized SVG: custom
// module and finder shapes, and an optional safe-zone overlay for a
// center logo or text label.
package fancy

import (
	"fmt"
	"strings"

	qr "github.com/vygonets-labs/qrfancy"
)

// ModuleShapeKind selects the outline used to draw a single dark data
// module.
type ModuleShapeKind int

const (
	ModuleSquare        ModuleShapeKind = iota // standard square modules
	ModuleCircle                               // circular modules
	ModuleRoundedSquare                        // square with rounded corners
)

// ModuleShape describes how to draw a single dark data module.
// Radius applies only to ModuleRoundedSquare, in the range [0, 0.5]
// relative to the module's unit size.
type ModuleShape struct {
	Kind   ModuleShapeKind
	Radius float64
}

func SquareModule() ModuleShape              { return ModuleShape{Kind: ModuleSquare} }
func CircleModule() ModuleShape              { return ModuleShape{Kind: ModuleCircle} }
func RoundedSquareModule(radius float64) ModuleShape {
	return ModuleShape{Kind: ModuleRoundedSquare, Radius: radius}
}

// FinderShapeKind selects the outline used to draw the three 7x7
// finder patterns.
type FinderShapeKind int

const (
	FinderSquare  FinderShapeKind = iota // standard square finder patterns
	FinderRounded                        // rounded corners
)

// FinderShape describes how to draw the three finder patterns. Radius
// applies only to FinderRounded: it is the corner radius in modules of
// the outer 7x7 rectangle, and the 5x5 and 3x3 rectangles use 0.7 and
// 0.4 times it.
type FinderShape struct {
	Kind   FinderShapeKind
	Radius float64
}

func SquareFinder() FinderShape             { return FinderShape{Kind: FinderSquare} }
func RoundedFinder(radius float64) FinderShape {
	return FinderShape{Kind: FinderRounded, Radius: radius}
}

// FancyOptions configures RenderSVG's output.
type FancyOptions struct {
	ColorBackground string // hex color, e.g. "#FFFFFF"
	ColorData       string // hex color, e.g. "#000000"
	ColorFinder     string // hex color, e.g. "#000000"

	ShapeModule ModuleShape
	ShapeFinder FinderShape

	// CenterImageURL, if non-empty, is embedded as an <image> element
	// in the safe zone (a data: URL or external reference).
	CenterImageURL string
	// CenterText, if non-empty and CenterImageURL is empty, is drawn
	// as a label badge in the safe zone.
	CenterText string
	// OverlayScale is the safe zone's side length as a fraction of
	// the symbol's module width, in [0, 0.3]. High error correction
	// tolerates up to about 30% damage; this bounds the overlay
	// accordingly.
	OverlayScale float64

	// QuietZone is the white border width in modules.
	QuietZone int
}

// DefaultOptions returns the default rendering options: white
// background, black data and finder modules, square shapes, a 0.2
// overlay scale, a 4-module quiet zone, and no center overlay.
func DefaultOptions() FancyOptions {
	return FancyOptions{
		ColorBackground: "#FFFFFF",
		ColorData:       "#000000",
		ColorFinder:     "#000000",
		ShapeModule:     SquareModule(),
		ShapeFinder:     SquareFinder(),
		OverlayScale:    0.2,
		QuietZone:       4,
	}
}

// FancyQr wraps a *qr.Code with the quiet-zone width used to render
// it, and the stylized SVG rendering methods.
type FancyQr struct {
	code      *qr.Code
	quietZone int
}

// FromText returns a FancyQr encoding text at high error correction
// (recommended when a center overlay will be used, since it tolerates
// up to ~30% of the symbol being obscured).
func FromText(text string) (*FancyQr, error) {
	return FromTextWithECL(text, qr.H)
}

// FromBinary returns a FancyQr encoding data as a single byte mode
// segment, at high error correction.
func FromBinary(data []byte) (*FancyQr, error) {
	code, err := qr.EncodeBinary(data, qr.H)
	if err != nil {
		return nil, err
	}
	return FromQrCode(code), nil
}

// FromTextWithECL returns a FancyQr encoding text at the given error
// correction level, without boosting it.
func FromTextWithECL(text string, ecl qr.ErrorCorrectionLevel) (*FancyQr, error) {
	code, err := qr.EncodeSegmentsAdvanced(qr.MakeSegments(text), ecl, qr.MinVersion, qr.MaxVersion, nil, false)
	if err != nil {
		return nil, err
	}
	return FromQrCode(code), nil
}

// FromQrCode wraps an already-built *qr.Code for stylized rendering.
func FromQrCode(code *qr.Code) *FancyQr {
	return &FancyQr{code: code, quietZone: 4}
}

// WithQuietZone sets the white border width in modules and returns f
// for chaining.
func (f *FancyQr) WithQuietZone(modules int) *FancyQr {
	f.quietZone = modules
	return f
}

// QrCode returns the underlying symbol.
func (f *FancyQr) QrCode() *qr.Code { return f.code }

// RenderSVGDefault renders f with DefaultOptions.
func (f *FancyQr) RenderSVGDefault() string {
	opts := DefaultOptions()
	opts.QuietZone = f.quietZone
	return f.RenderSVG(&opts)
}

// RenderSVG renders f as a standalone SVG document using opts.
func (f *FancyQr) RenderSVG(opts *FancyOptions) string {
	matrixWidth := f.code.Size()
	quietZone := opts.QuietZone
	if quietZone == 0 {
		quietZone = f.quietZone
	}
	fullWidth := matrixWidth + quietZone*2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" shape-rendering="geometricPrecision">`,
		fullWidth, fullWidth)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s" />`,
		fullWidth, fullWidth, opts.ColorBackground)

	centerIdx := float64(matrixWidth) / 2
	safeSize := float64(matrixWidth) * opts.OverlayScale
	safeMin := centerIdx - safeSize/2
	safeMax := centerIdx + safeSize/2
	hasOverlay := opts.CenterImageURL != "" || opts.CenterText != ""

	isSafeZone := func(c, r int) bool {
		if !hasOverlay {
			return false
		}
		fx, fy := float64(c), float64(r)
		return fx >= safeMin && fx <= safeMax && fy >= safeMin && fy <= safeMax
	}

	for r := 0; r < matrixWidth; r++ {
		for c := 0; c < matrixWidth; c++ {
			if !f.code.GetModule(c, r) {
				continue
			}
			if isFinderModule(c, r, matrixWidth) {
				continue
			}
			if isSafeZone(c, r) {
				continue
			}
			x, y := c+quietZone, r+quietZone
			drawDataModule(&b, x, y, opts)
		}
	}

	renderFinderPatterns(&b, matrixWidth, quietZone, opts)
	renderCenterOverlay(&b, centerIdx, safeSize, quietZone, opts)

	b.WriteString("</svg>")
	return b.String()
}

func drawDataModule(b *strings.Builder, x, y int, opts *FancyOptions) {
	switch opts.ShapeModule.Kind {
	case ModuleCircle:
		fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="0.45" fill="%s" />`,
			float64(x)+0.5, float64(y)+0.5, opts.ColorData)
	case ModuleRoundedSquare:
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="1" height="1" rx="%g" fill="%s" />`,
			x, y, opts.ShapeModule.Radius, opts.ColorData)
	default:
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="1" height="1" fill="%s" />`,
			x, y, opts.ColorData)
	}
}

// isFinderModule reports whether (c, r) falls within one of the three
// 7x7 finder pattern corners of a width x width symbol.
func isFinderModule(c, r, width int) bool {
	return (r < 7 && c < 7) ||
		(r < 7 && c >= width-7) ||
		(r >= width-7 && c < 7)
}

// renderFinderPatterns draws the three finder patterns as three
// concentric rectangles (7x7 outer, 5x5 cutout, 3x3 center dot),
// independent of the raw module data, so their shape can diverge from
// ModuleShape.
func renderFinderPatterns(b *strings.Builder, matrixWidth, quietZone int, opts *FancyOptions) {
	positions := [3][2]int{
		{0, 0},
		{matrixWidth - 7, 0},
		{0, matrixWidth - 7},
	}

	rOuter := 0.0
	if opts.ShapeFinder.Kind == FinderRounded {
		rOuter = opts.ShapeFinder.Radius
	}
	rMid, rInner := 0.0, 0.0
	if rOuter > 0 {
		rMid = rOuter * 0.7
		rInner = rOuter * 0.4
	}

	for _, pos := range positions {
		x, y := pos[0]+quietZone, pos[1]+quietZone

		fmt.Fprintf(b, `<rect x="%d" y="%d" width="7" height="7" rx="%g" fill="%s" />`,
			x, y, rOuter, opts.ColorFinder)
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="5" height="5" rx="%g" fill="%s" />`,
			x+1, y+1, rMid, opts.ColorBackground)
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="3" height="3" rx="%g" fill="%s" />`,
			x+2, y+2, rInner, opts.ColorFinder)
	}
}

// renderCenterOverlay draws the center image or text label, if any,
// inside the safe zone.
func renderCenterOverlay(b *strings.Builder, centerIdx, safeSize float64, quietZone int, opts *FancyOptions) {
	if opts.CenterImageURL == "" && opts.CenterText == "" {
		return
	}
	centerPx := centerIdx + float64(quietZone)
	startPx := centerPx - safeSize/2

	if opts.CenterImageURL != "" {
		fmt.Fprintf(b, `<image x="%g" y="%g" width="%g" height="%g" href="%s" preserveAspectRatio="xMidYMid slice" />`,
			startPx, startPx, safeSize, safeSize, opts.CenterImageURL)
		return
	}

	fmt.Fprintf(b, `<rect x="%g" y="%g" width="%g" height="%g" rx="1" fill="%s" stroke="%s" stroke-width="0.2" />`,
		startPx-0.5, startPx+safeSize*0.25, safeSize+1.0, safeSize*0.5,
		opts.ColorBackground, opts.ColorData)
	fmt.Fprintf(b, `<text x="%g" y="%g" font-family="sans-serif" font-weight="bold" font-size="%g" text-anchor="middle" fill="%s">%s</text>`,
		centerPx, centerPx+safeSize*0.15, safeSize*0.25, opts.ColorData, opts.CenterText)
}
