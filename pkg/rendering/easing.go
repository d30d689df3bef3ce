package rendering

import "math"

// Easing maps progress t in [0, 1] to an eased value.
//
// Standard easings: [Linear], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] for custom easings matching CSS cubic-bezier().
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Ease is a general-purpose easing. Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing matching CSS cubic-bezier().
// The control points are (x1,y1) and (x2,y2); the curve runs from (0,0)
// to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleBezier(y1, y2, clampUnit(u))
			}
			dx := sampleBezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// bisection fallback keeps u in [0,1]
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleBezier(y1, y2, u)
	}
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleBezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 || math.IsNaN(value) {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// CurvePreset names a ready-made curve offered by curve editors.
type CurvePreset struct {
	Name  string
	Curve Curve
}

// CurvePresets returns the built-in presets over [0, 1].
func CurvePresets() []CurvePreset {
	return []CurvePreset{
		{Name: "Constant", Curve: NewConstantCurve(1)},
		{Name: "Linear", Curve: NewLinearCurve(0, 0, 1, 1)},
		{Name: "Ease", Curve: SampleEasing(Ease, 5)},
		{Name: "Ease In", Curve: SampleEasing(EaseIn, 5)},
		{Name: "Ease Out", Curve: SampleEasing(EaseOut, 5)},
		{Name: "Ease In Out", Curve: SampleEasing(EaseInOut, 5)},
	}
}

// SampleEasing approximates e over [0, 1] with n keyframes. Tangents are
// estimated with central differences.
func SampleEasing(e Easing, n int) Curve {
	n = max(n, 2)
	const h = 1e-4
	keys := make([]Keyframe, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		lo, hi := max(t-h, 0), min(t+h, 1)
		slope := (e(hi) - e(lo)) / (hi - lo)
		keys[i] = Keyframe{Time: t, Value: e(t), InTangent: slope, OutTangent: slope}
	}
	return Curve{Keys: keys}
}
