package ogimage

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/sarmadgardezi/portfolio/logo"
	"github.com/sarmadgardezi/portfolio/theme"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 0xff}},
		{"#FFFFFF", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#6366F1", color.NRGBA{0x63, 0x66, 0xf1, 0xff}},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{" #0f172a ", color.NRGBA{0x0f, 0x17, 0x2a, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.input)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "red", "#1234567", "#11223380", "112233", "#+12345", "#12 456", "#ff0000\"><"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) succeeded, want error", bad)
		}
	}
}

func nrgbaAt(t *testing.T, img interface{ At(x, y int) color.Color }, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRenderPaintsBackgroundAndFills(t *testing.T) {
	img, err := Render(theme.Light)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Fatalf("bounds = %v, want %dx%d", b, DefaultWidth, DefaultHeight)
	}

	bg, _ := ParseHex(theme.Light.Background)
	if got := nrgbaAt(t, img, 0, 0); got != bg {
		t.Errorf("corner pixel = %v, want background %v", got, bg)
	}

	tf := place(DefaultWidth, DefaultHeight, DefaultWidth*2/3)
	cx, cy := tf.apply(logo.Point{X: logo.AccentCircle.CX, Y: logo.AccentCircle.CY})
	accent, _ := ParseHex(theme.Light.Primary500)
	if got := nrgbaAt(t, img, int(cx), int(cy)); got != accent {
		t.Errorf("accent center pixel = %v, want %v", got, accent)
	}

	text, _ := ParseHex(theme.Light.Primary900)
	painted := 0
	for y := 0; y < DefaultHeight; y++ {
		for x := 0; x < DefaultWidth; x++ {
			if nrgbaAt(t, img, x, y) == text {
				painted++
			}
		}
	}
	if painted < 1000 {
		t.Errorf("wordmark covers %d pixels, want a visible wordmark", painted)
	}
}

func TestRenderHonoursOverrides(t *testing.T) {
	img, err := Render(theme.Dark, WithSize(600, 315), WithColors(&logo.Colors{Circle: "#FF0000"}))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	tf := place(600, 315, 400)
	cx, cy := tf.apply(logo.Point{X: logo.AccentCircle.CX, Y: logo.AccentCircle.CY})
	if got := nrgbaAt(t, img, int(cx), int(cy)); got != (color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("accent center pixel = %v, want red", got)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	if _, err := Render(theme.Light, WithSize(0, 10)); err == nil {
		t.Error("expected error for zero width")
	}
	bad := theme.Light
	bad.Primary900 = "not-a-color"
	if _, err := Render(bad); err == nil {
		t.Error("expected error for invalid wordmark color")
	}
}

func TestEncodePNG(t *testing.T) {
	img, err := Render(theme.Light, WithSize(240, 126))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
