package elements

import (
	"math"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
)

// Bound returns a slider limit. Computed bounds read sibling members.
type Bound func() float64

// StaticBound returns a Bound fixed at v.
func StaticBound(v float64) Bound { return func() float64 { return v } }

// FloatSlider edits a float within [Min, Max].
type FloatSlider struct {
	FieldElement[float64]
	min, max Bound
}

// NewFloatSlider binds a float slot to a bounded slider.
func NewFloatSlider(label *LabelElement, b binder.Binder, lo, hi Bound) *FloatSlider {
	s := &FloatSlider{min: lo, max: hi}
	s.bind(label, b)
	return core.Init(s)
}

// Min returns the current lower bound.
func (s *FloatSlider) Min() float64 { return s.min() }

// Max returns the current upper bound.
func (s *FloatSlider) Max() float64 { return s.max() }

// SetValueFromView clamps v to the current bounds before writing.
func (s *FloatSlider) SetValueFromView(v float64) error {
	if math.IsNaN(v) {
		v = s.Min()
	}
	return s.FieldElement.SetValueFromView(clamp(v, s.Min(), s.Max()))
}

// IntSlider edits an integer within [Min, Max].
type IntSlider struct {
	FieldElement[int]
	min, max Bound
}

// NewIntSlider binds an integer slot to a bounded slider.
func NewIntSlider(label *LabelElement, b binder.Binder, lo, hi Bound) *IntSlider {
	s := &IntSlider{min: lo, max: hi}
	s.bind(label, b)
	return core.Init(s)
}

// Min returns the current lower bound rounded up.
func (s *IntSlider) Min() int { return toInt(math.Ceil(s.min())) }

// Max returns the current upper bound rounded down.
func (s *IntSlider) Max() int { return toInt(math.Floor(s.max())) }

// SetValueFromView clamps v to the current bounds before writing.
func (s *IntSlider) SetValueFromView(v int) error {
	return s.FieldElement.SetValueFromView(clamp(v, s.Min(), s.Max()))
}

// UIntSlider edits an unsigned integer within [Min, Max].
type UIntSlider struct {
	FieldElement[uint]
	min, max Bound
}

// NewUIntSlider binds an unsigned integer slot to a bounded slider.
func NewUIntSlider(label *LabelElement, b binder.Binder, lo, hi Bound) *UIntSlider {
	s := &UIntSlider{min: lo, max: hi}
	s.bind(label, b)
	return core.Init(s)
}

// Min returns the current lower bound rounded up, at least 0.
func (s *UIntSlider) Min() uint { return toUint(math.Ceil(s.min())) }

// Max returns the current upper bound rounded down.
func (s *UIntSlider) Max() uint { return toUint(math.Floor(s.max())) }

// SetValueFromView clamps v to the current bounds before writing.
func (s *UIntSlider) SetValueFromView(v uint) error {
	return s.FieldElement.SetValueFromView(clamp(v, s.Min(), s.Max()))
}

// toInt saturates f to the int range. NaN maps to 0.
func toInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// toUint saturates f to the uint range. NaN maps to 0.
func toUint(f float64) uint {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= math.MaxUint:
		return math.MaxUint
	}
	return uint(f)
}

func clamp[N int | uint | float64](v, lo, hi N) N {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
