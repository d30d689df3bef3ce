package rendering

import (
	"image/color"
	"testing"
)

func TestGradientPreview(t *testing.T) {
	img := GradientPreview(NewGradient(ColorBlack, ColorWhite), 64)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 1 {
		t.Fatalf("bounds = %v", b)
	}
	first := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	last := color.RGBAModel.Convert(img.At(63, 0)).(color.RGBA)
	if first.R != 0 || last.R != 0xFF {
		t.Errorf("strip ends = %v %v", first, last)
	}

	scaled := Scale(img, 300, 50)
	if b := scaled.Bounds(); b.Dx() != 300 || b.Dy() != 50 {
		t.Errorf("scaled bounds = %v", b)
	}
}

func TestCurvePreviewGuidesAndLine(t *testing.T) {
	img := CurvePreview(NewConstantCurve(0.5), 32, 33)
	isColor := func(x, y int, c Color) bool {
		got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
		want := color.RGBAModel.Convert(c).(color.RGBA)
		return got == want
	}
	// range is [0, 1] so value 1 is the top row and value 0 the bottom
	if !isColor(5, 0, PreviewGuideColor) || !isColor(5, 32, PreviewGuideColor) {
		t.Error("guide lines missing")
	}
	if !isColor(5, 16, PreviewCurveColor) {
		t.Error("curve line missing at value 0.5")
	}
}

func TestColorSwatch(t *testing.T) {
	img := ColorSwatch(ColorBlue, 4, 4)
	got := color.RGBAModel.Convert(img.At(3, 3)).(color.RGBA)
	if got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Errorf("swatch = %v", got)
	}
}
