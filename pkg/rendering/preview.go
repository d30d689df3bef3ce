package rendering

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Preview colors.
var (
	PreviewGuideColor = ColorGray
	PreviewCurveColor = ColorRed
)

// GradientPreview samples g into a width x 1 strip.
func GradientPreview(g Gradient, width int) *image.RGBA {
	width = max(width, 1)
	img := image.NewRGBA(image.Rect(0, 0, width, 1))
	for x := range width {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		img.Set(x, 0, g.Evaluate(t))
	}
	return img
}

// CurvePreview plots c into a width x height image. Guide lines mark the
// values 0 and 1; the vertical range always includes both.
func CurvePreview(c Curve, width, height int) *image.RGBA {
	width, height = max(width, 2), max(height, 2)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	t0, t1, lo, hi := c.Bounds(width)
	lo, hi = min(lo, 0), max(hi, 1)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		lo, hi = 0, 1
	}
	row := func(v float64) int {
		y := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
		return min(max(y, 0), height-1)
	}

	for _, guide := range []float64{0, 1} {
		y := row(guide)
		for x := range width {
			img.Set(x, y, PreviewGuideColor)
		}
	}

	keys := c.Sorted()
	if len(keys) == 0 {
		return img
	}
	prev := -1
	for x := range width {
		t := t0 + (t1-t0)*float64(x)/float64(width-1)
		y := row(evaluate(keys, t))
		if prev < 0 {
			prev = y
		}
		// connect to the previous column so steep segments stay visible
		for yy := min(prev, y); yy <= max(prev, y); yy++ {
			img.Set(x, yy, PreviewCurveColor)
		}
		prev = y
	}
	return img
}

// Scale resizes src to width x height with bilinear filtering.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// ColorSwatch returns a solid width x height image of c.
func ColorSwatch(c Color, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.Color(c)), image.Point{}, xdraw.Src)
	return dst
}
