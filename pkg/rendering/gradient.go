package rendering

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// GradientMode selects how a gradient evaluates between keys.
type GradientMode int

const (
	// GradientBlend interpolates between neighbouring keys.
	GradientBlend GradientMode = iota
	// GradientFixed holds the color of the next key without blending.
	GradientFixed
)

// String returns a human-readable representation of the gradient mode.
func (m GradientMode) String() string {
	switch m {
	case GradientBlend:
		return "blend"
	case GradientFixed:
		return "fixed"
	default:
		return fmt.Sprintf("GradientMode(%d)", int(m))
	}
}

// EnumValues lists the modes in display order.
func (GradientMode) EnumValues() []any { return []any{GradientBlend, GradientFixed} }

// MarshalYAML implements yaml.Marshaler.
func (m GradientMode) MarshalYAML() (any, error) { return m.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *GradientMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "blend", "":
		*m = GradientBlend
	case "fixed":
		*m = GradientFixed
	default:
		return fmt.Errorf("unknown gradient mode %q", s)
	}
	return nil
}

// MaxGradientKeys bounds the number of color and alpha keys.
const MaxGradientKeys = 8

// ColorKey places an opaque color at Time in [0, 1].
type ColorKey struct {
	Color Color   `yaml:"color"`
	Time  float64 `yaml:"time" inspect:"range=0:1"`
}

// AlphaKey places an alpha value at Time in [0, 1].
type AlphaKey struct {
	Alpha float64 `yaml:"alpha" inspect:"range=0:1"`
	Time  float64 `yaml:"time" inspect:"range=0:1"`
}

// Gradient maps a position in [0, 1] to a color. Color and alpha are
// keyed separately.
type Gradient struct {
	Mode      GradientMode `yaml:"mode"`
	ColorKeys []ColorKey   `yaml:"colorKeys"`
	AlphaKeys []AlphaKey   `yaml:"alphaKeys"`
}

// NewGradient returns an opaque gradient blending from a to b.
func NewGradient(a, b Color) Gradient {
	return Gradient{
		ColorKeys: []ColorKey{{Color: a.WithAlpha(0xFF), Time: 0}, {Color: b.WithAlpha(0xFF), Time: 1}},
		AlphaKeys: []AlphaKey{{Alpha: 1, Time: 0}, {Alpha: 1, Time: 1}},
	}
}

// SetDefaults resets g to an opaque white gradient.
func (g *Gradient) SetDefaults() {
	*g = NewGradient(ColorWhite, ColorWhite)
}

// Clone returns a deep copy of g.
func (g Gradient) Clone() Gradient {
	g.ColorKeys = slices.Clone(g.ColorKeys)
	g.AlphaKeys = slices.Clone(g.AlphaKeys)
	return g
}

// Validate checks key counts and ranges.
func (g Gradient) Validate() error {
	if len(g.ColorKeys) > MaxGradientKeys || len(g.AlphaKeys) > MaxGradientKeys {
		return fmt.Errorf("gradient has more than %d keys", MaxGradientKeys)
	}
	for _, k := range g.ColorKeys {
		if k.Time < 0 || k.Time > 1 {
			return fmt.Errorf("color key time %g outside [0, 1]", k.Time)
		}
	}
	for _, k := range g.AlphaKeys {
		if k.Time < 0 || k.Time > 1 {
			return fmt.Errorf("alpha key time %g outside [0, 1]", k.Time)
		}
		if k.Alpha < 0 || k.Alpha > 1 {
			return fmt.Errorf("alpha %g outside [0, 1]", k.Alpha)
		}
	}
	return nil
}

// Evaluate returns the color at position t. A gradient without color keys
// is white; without alpha keys it is opaque.
func (g Gradient) Evaluate(t float64) Color {
	t = clampUnit(t)

	c := ColorWhite
	if keys := sortedKeys(g.ColorKeys, func(k ColorKey) float64 { return k.Time }); len(keys) > 0 {
		i, f := segment(len(keys), func(i int) float64 { return keys[i].Time }, t, g.Mode)
		if f == 0 {
			c = keys[i].Color
		} else {
			c = LerpColor(keys[i].Color, keys[i+1].Color, f)
		}
	}

	alpha := 1.0
	if keys := sortedKeys(g.AlphaKeys, func(k AlphaKey) float64 { return k.Time }); len(keys) > 0 {
		i, f := segment(len(keys), func(i int) float64 { return keys[i].Time }, t, g.Mode)
		if f == 0 {
			alpha = keys[i].Alpha
		} else {
			alpha = lerp(keys[i].Alpha, keys[i+1].Alpha, f)
		}
	}
	return c.WithAlpha(unitByte(alpha))
}

func sortedKeys[K any](keys []K, time func(K) float64) []K {
	if slices.IsSortedFunc(keys, func(a, b K) int { return cmpFloat(time(a), time(b)) }) {
		return keys
	}
	out := slices.Clone(keys)
	slices.SortStableFunc(out, func(a, b K) int { return cmpFloat(time(a), time(b)) })
	return out
}

// segment locates t among n sorted key times. It returns the left key and
// the blend factor towards key i+1; a zero factor means "use key i".
func segment(n int, time func(int) float64, t float64, mode GradientMode) (int, float64) {
	if t <= time(0) {
		return 0, 0
	}
	if t >= time(n-1) {
		return n - 1, 0
	}
	for i := 0; i < n-1; i++ {
		t0, t1 := time(i), time(i+1)
		if t > t1 {
			continue
		}
		if mode == GradientFixed || t1 == t0 {
			if t == t0 {
				return i, 0
			}
			return i + 1, 0
		}
		return i, (t - t0) / (t1 - t0)
	}
	return n - 1, 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
