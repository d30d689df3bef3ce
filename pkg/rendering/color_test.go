package rendering

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"00FF00FF", ColorGreen, false},
		{"#00F", ColorBlue, false},
		{"#11223344", Color(0x44112233), false},
		{"#12345", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c.Hex() != "#12345678" {
		t.Errorf("Hex() = %s", c.Hex())
	}
	back, err := ParseHex(c.Hex())
	if err != nil || back != c {
		t.Errorf("round trip = %s, %v", back, err)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		c       Color
		h, s, v float64
	}{
		{ColorRed, 0, 1, 1},
		{ColorGreen, 1.0 / 3, 1, 1},
		{ColorBlue, 2.0 / 3, 1, 1},
		{ColorWhite, 0, 0, 1},
		{ColorBlack, 0, 0, 0},
	}
	for _, tt := range tests {
		h, s, v := tt.c.HSV()
		if math.Abs(h-tt.h) > 1e-9 || math.Abs(s-tt.s) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
			t.Errorf("%s.HSV() = %g,%g,%g want %g,%g,%g", tt.c, h, s, v, tt.h, tt.s, tt.v)
		}
		if back := HSVA(h, s, v, 1); back != tt.c {
			t.Errorf("HSVA round trip of %s = %s", tt.c, back)
		}
	}
}

func TestRGBAFClamps(t *testing.T) {
	if got := RGBAF(2, -1, math.NaN(), 1); got != ColorRed {
		t.Errorf("RGBAF clamped = %s, want red", got)
	}
}

func TestLerpColor(t *testing.T) {
	mid := LerpColor(ColorBlack, ColorWhite, 0.5)
	r, g, b, a := mid.Components()
	for _, c := range []float64{r, g, b} {
		if math.Abs(c-0.5) > 0.01 {
			t.Errorf("mid channel = %g", c)
		}
	}
	if a != 1 {
		t.Errorf("alpha = %g", a)
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	r, g, b, a := ColorRed.WithAlpha(0x80).RGBA()
	if a != 0x8080 || r != 0x8080 || g != 0 || b != 0 {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}
