package ui

import (
	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/rendering"
)

func buildColor(r *request) core.Element {
	return elements.NewColorField(r.label, r.b, ColorEditor)
}

func buildGradient(r *request) core.Element {
	return elements.NewGradientField(r.label, r.b, GradientEditor)
}

func buildCurve(r *request) core.Element {
	return elements.NewCurveField(r.label, r.b, CurveEditor)
}

// ColorChannels is the RGBA view of a colour in the colour editor.
type ColorChannels struct {
	R, G, B, A float64 `inspect:"range=0:1"`
}

// ColorHSV is the hue, saturation and value view of a colour.
type ColorHSV struct {
	H, S, V float64 `inspect:"range=0:1"`
}

// ColorEditor builds the colour window body: RGBA sliders, HSV sliders
// and the hex text, all writing back to b.
func ColorEditor(b binder.Binder) core.Element {
	c := binder.As[rendering.Color](b)
	set := func(op string, v rendering.Color) {
		if err := c.Set(v); err != nil {
			reportEdit(op, err)
		}
	}

	var (
		setRGBA func(ColorChannels)
		setHSV  func(ColorHSV)
		setHex  func(string)
	)
	if c.CanSet() {
		setRGBA = func(ch ColorChannels) {
			set("ui.ColorEditor.RGBA", rendering.RGBAF(ch.R, ch.G, ch.B, ch.A))
		}
		setHSV = func(hsv ColorHSV) {
			_, _, _, a := c.Get().Components()
			set("ui.ColorEditor.HSV", rendering.HSVA(hsv.H, hsv.S, hsv.V, a))
		}
		setHex = func(s string) {
			v, err := rendering.ParseHex(s)
			if err != nil {
				errors.Report(&errors.BindError{Op: "ui.ColorEditor.Hex", Kind: errors.KindCodec, Err: err})
				return
			}
			set("ui.ColorEditor.Hex", v)
		}
	}

	rgba := binder.FromFuncs(func() ColorChannels {
		r, g, bl, a := c.Get().Components()
		return ColorChannels{R: r, G: g, B: bl, A: a}
	}, setRGBA)
	hsv := binder.FromFuncs(func() ColorHSV {
		h, s, v := c.Get().HSV()
		return ColorHSV{H: h, S: s, V: v}
	}, setHSV)
	hex := binder.FromFuncs(func() string { return c.Get().Hex() }, setHex)

	opt := FieldOption{DelayInput: true}
	return elements.NewColumn(
		FieldWith(elements.NewLabel("RGBA"), rgba, opt),
		FieldWith(elements.NewLabel("HSV"), hsv, opt),
		FieldWith(elements.NewLabel("Hex"), hex, opt),
	)
}

// GradientEditor builds the gradient window body: the blend mode and the
// colour and alpha key lists.
func GradientEditor(b binder.Binder) core.Element {
	return elements.NewColumn(Members(b)...)
}

// CurveEditor builds the curve window body: one row per keyframe and a
// button per preset that replaces the whole curve.
func CurveEditor(b binder.Binder) core.Element {
	c := binder.As[rendering.Curve](b)
	presets := rendering.CurvePresets()
	buttons := make([]core.Element, 0, len(presets))
	for _, p := range presets {
		btn := elements.NewButton(p.Name, func() {
			if err := c.Set(p.Curve.Clone()); err != nil {
				reportEdit("ui.CurveEditor.Preset", err)
			}
		})
		if !c.CanSet() {
			btn.SetInteractable(false)
		}
		buttons = append(buttons, btn)
	}
	children := append(Members(b), elements.NewRow(buttons...))
	return elements.NewColumn(children...)
}

func reportEdit(op string, err error) {
	errors.Report(&errors.BindError{Op: op, Kind: errors.KindUnsupported, Err: err})
}
