package fancy

import (
	"strings"
	"testing"

	qr "github.com/vygonets-labs/qrfancy"
)

func TestFromTextSucceeds(t *testing.T) {
	f, err := FromText("https://example.com")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if f.QrCode().Size() <= 0 {
		t.Errorf("Size() = %d, want > 0", f.QrCode().Size())
	}
	if f.QrCode().ErrorCorrectionLevel() != qr.H {
		t.Errorf("ErrorCorrectionLevel() = %v, want H", f.QrCode().ErrorCorrectionLevel())
	}
}

func TestFromTextWithECL(t *testing.T) {
	f, err := FromTextWithECL("hello", qr.L)
	if err != nil {
		t.Fatalf("FromTextWithECL: %v", err)
	}
	if f.QrCode().ErrorCorrectionLevel() != qr.L {
		t.Errorf("ErrorCorrectionLevel() = %v, want L", f.QrCode().ErrorCorrectionLevel())
	}
}

func TestRenderSVGDefaultWellFormed(t *testing.T) {
	f, err := FromText("hello fancy")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	svg := f.RenderSVGDefault()
	if !strings.HasPrefix(svg, "<svg") {
		t.Error("RenderSVGDefault does not start with <svg")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("RenderSVGDefault does not end with </svg>")
	}
	if !strings.Contains(svg, `fill="#FFFFFF"`) {
		t.Error("RenderSVGDefault missing background fill")
	}
}

func TestRenderSVGCustomModuleShape(t *testing.T) {
	f, err := FromText("circle modules")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	opts := DefaultOptions()
	opts.ShapeModule = CircleModule()
	opts.ColorData = "#112233"
	svg := f.RenderSVG(&opts)
	if !strings.Contains(svg, "<circle") {
		t.Error("RenderSVG with CircleModule produced no <circle> elements")
	}
	if !strings.Contains(svg, `fill="#112233"`) {
		t.Error("RenderSVG did not apply custom ColorData")
	}
}

func TestRenderSVGCenterTextOverlay(t *testing.T) {
	f, err := FromText("overlay test")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	opts := DefaultOptions()
	opts.CenterText = "LOGO"
	opts.OverlayScale = 0.25
	svg := f.RenderSVG(&opts)
	if !strings.Contains(svg, "LOGO") {
		t.Error("RenderSVG did not render CenterText")
	}
	if !strings.Contains(svg, "<text") {
		t.Error("RenderSVG with CenterText produced no <text> element")
	}
}

func TestRenderSVGCenterImageOverlay(t *testing.T) {
	f, err := FromText("image overlay")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	opts := DefaultOptions()
	opts.CenterImageURL = "data:image/png;base64,AAAA"
	svg := f.RenderSVG(&opts)
	if !strings.Contains(svg, "<image") {
		t.Error("RenderSVG with CenterImageURL produced no <image> element")
	}
}

func TestIsFinderModule(t *testing.T) {
	width := 21
	tests := []struct {
		c, r int
		want bool
	}{
		{0, 0, true},
		{6, 6, true},
		{width - 1, 0, true},
		{0, width - 1, true},
		{width - 1, width - 1, false},
		{10, 10, false},
	}
	for _, tt := range tests {
		if got := isFinderModule(tt.c, tt.r, width); got != tt.want {
			t.Errorf("isFinderModule(%d,%d,%d) = %v, want %v", tt.c, tt.r, width, got, tt.want)
		}
	}
}

func TestFromQrCodeWithQuietZone(t *testing.T) {
	code, err := qr.EncodeText("wrapped", qr.M)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	f := FromQrCode(code).WithQuietZone(2)
	svg := f.RenderSVGDefault()
	if !strings.HasPrefix(svg, "<svg") {
		t.Error("RenderSVGDefault does not start with <svg")
	}
}
