package rendering

import (
	"math"
	"slices"
)

// Keyframe is one key of a Curve. Tangents are slopes (dValue/dTime).
type Keyframe struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in"`
	OutTangent float64 `yaml:"out"`
}

// Curve is a piecewise cubic Hermite curve over its keyframes. Before the
// first key and after the last the curve is constant.
type Curve struct {
	Keys []Keyframe `yaml:"keys"`
}

// NewLinearCurve returns a straight line from (t0, v0) to (t1, v1).
func NewLinearCurve(t0, v0, t1, v1 float64) Curve {
	slope := 0.0
	if t1 != t0 {
		slope = (v1 - v0) / (t1 - t0)
	}
	return Curve{Keys: []Keyframe{
		{Time: t0, Value: v0, OutTangent: slope, InTangent: slope},
		{Time: t1, Value: v1, OutTangent: slope, InTangent: slope},
	}}
}

// NewConstantCurve returns a flat curve over [0, 1].
func NewConstantCurve(v float64) Curve {
	return Curve{Keys: []Keyframe{{Time: 0, Value: v}, {Time: 1, Value: v}}}
}

// SetDefaults resets c to the identity line over [0, 1].
func (c *Curve) SetDefaults() {
	*c = NewLinearCurve(0, 0, 1, 1)
}

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	c.Keys = slices.Clone(c.Keys)
	return c
}

// Sorted returns a copy of the keys ordered by time.
func (c Curve) Sorted() []Keyframe {
	keys := slices.Clone(c.Keys)
	slices.SortStableFunc(keys, func(a, b Keyframe) int { return cmpFloat(a.Time, b.Time) })
	return keys
}

// Evaluate returns the curve value at t. An empty curve evaluates to 0.
func (c Curve) Evaluate(t float64) float64 {
	keys := c.Keys
	if !slices.IsSortedFunc(keys, func(a, b Keyframe) int { return cmpFloat(a.Time, b.Time) }) {
		keys = c.Sorted()
	}
	return evaluate(keys, t)
}

func evaluate(keys []Keyframe, t float64) float64 {
	switch {
	case len(keys) == 0:
		return 0
	case t <= keys[0].Time:
		return keys[0].Value
	case t >= keys[len(keys)-1].Time:
		return keys[len(keys)-1].Value
	}
	i, _ := slices.BinarySearchFunc(keys, t, func(k Keyframe, t float64) int { return cmpFloat(k.Time, t) })
	// keys[i-1].Time < t <= keys[i].Time
	a, b := keys[i-1], keys[i]
	dt := b.Time - a.Time
	if dt == 0 {
		return b.Value
	}
	if math.IsInf(a.OutTangent, 0) || math.IsInf(b.InTangent, 0) {
		return a.Value
	}
	s := (t - a.Time) / dt
	s2, s3 := s*s, s*s*s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*a.Value + h10*dt*a.OutTangent + h01*b.Value + h11*dt*b.InTangent
}

// Bounds samples the curve and returns its time span and value range.
func (c Curve) Bounds(samples int) (t0, t1, lo, hi float64) {
	keys := c.Sorted()
	if len(keys) == 0 {
		return 0, 1, 0, 0
	}
	t0, t1 = keys[0].Time, keys[len(keys)-1].Time
	if t1 == t0 {
		t1 = t0 + 1
	}
	samples = max(samples, 2)
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range samples {
		v := evaluate(keys, t0+(t1-t0)*float64(i)/float64(samples-1))
		lo, hi = min(lo, v), max(hi, v)
	}
	return t0, t1, lo, hi
}
