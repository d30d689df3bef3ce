package elements

import (
	"image"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/rendering"
)

// ErrInvalidPaste is returned when pasted text does not decode.
var ErrInvalidPaste = errors.New("clipboard text is not a valid value")

// PreviewConfig sizes the bitmaps of rich value previews.
type PreviewConfig struct {
	GradientWidth int
	CurveWidth    int
	CurveHeight   int
	DisplayWidth  int
	DisplayHeight int
}

// Previews holds the preview sizes used by newly built rich fields.
var Previews = PreviewConfig{
	GradientWidth: 256,
	CurveWidth:    256,
	CurveHeight:   32,
	DisplayWidth:  300,
	DisplayHeight: 50,
}

// EditorBuilder builds the body of a rich value editor window over b.
type EditorBuilder func(b binder.Binder) core.Element

// richField is the shared layout of rich value fields: label, preview
// image and a launcher for the editor window.
type richField[T any] struct {
	FieldElement[T]
	preview  *Image
	launcher *WindowLauncher
}

func (r *richField[T]) setup(label *LabelElement, b binder.Binder, get func() T, title string, editor EditorBuilder, render func(T) image.Image) {
	var set func(T) error
	if b.CanSet() {
		t := binder.As[T](b)
		set = t.Set
	}
	r.init(label, get, set)
	r.constant = binder.IsConst(b)

	r.preview = NewImage(render(r.value.Value()), Previews.DisplayWidth, Previews.DisplayHeight)
	core.AppendChild(r, r.preview)
	core.Listen(r, r.value, func(v T) {
		r.preview.Image().Set(render(v))
	})

	if editor != nil {
		r.launcher = NewWindowLauncher(title, func() core.Element { return editor(b) })
		if !b.CanSet() {
			r.launcher.SetInteractable(false)
		}
		core.AppendChild(r, r.launcher)
	}
}

// Preview returns the preview image.
func (r *richField[T]) Preview() *Image { return r.preview }

// Launcher returns the editor launcher, or nil.
func (r *richField[T]) Launcher() *WindowLauncher { return r.launcher }

// ColorField edits a rendering.Color.
type ColorField struct {
	richField[rendering.Color]
}

// NewColorField binds a color slot.
func NewColorField(label *LabelElement, b binder.Binder, editor EditorBuilder) *ColorField {
	f := &ColorField{}
	f.setup(label, b, binder.As[rendering.Color](b).Get, "Color", editor, func(c rendering.Color) image.Image {
		return rendering.ColorSwatch(c, 1, 1)
	})
	return core.Init(f)
}

// DisplayValue returns the hex form.
func (f *ColorField) DisplayValue() string { return f.value.Value().Hex() }

// Copy returns the hex form for the clipboard.
func (f *ColorField) Copy() string { return f.value.Value().Hex() }

// Paste parses hex text into the slot.
func (f *ColorField) Paste(text string) error {
	c, err := rendering.ParseHex(text)
	if err != nil {
		return errors.Join(ErrInvalidPaste, err)
	}
	return f.SetValueFromView(c)
}

// GradientField edits a rendering.Gradient.
type GradientField struct {
	richField[rendering.Gradient]
}

// NewGradientField binds a gradient slot.
func NewGradientField(label *LabelElement, b binder.Binder, editor EditorBuilder) *GradientField {
	t := binder.As[rendering.Gradient](b)
	f := &GradientField{}
	// clone so in-place key edits register as changes
	get := func() rendering.Gradient { return t.Get().Clone() }
	f.setup(label, b, get, "Gradient", editor, func(g rendering.Gradient) image.Image {
		strip := rendering.GradientPreview(g, Previews.GradientWidth)
		return rendering.Scale(strip, Previews.DisplayWidth, Previews.DisplayHeight)
	})
	return core.Init(f)
}

// DisplayValue returns a short summary.
func (f *GradientField) DisplayValue() string {
	g := f.value.Value()
	return g.Mode.String() + " " + itoa(len(g.ColorKeys)) + "/" + itoa(len(g.AlphaKeys))
}

// Copy encodes the gradient for the clipboard.
func (f *GradientField) Copy() string { return rendering.EncodeGradient(f.value.Value()) }

// Paste decodes text into the slot. Decoding problems are reported by the
// codec and yield ErrInvalidPaste.
func (f *GradientField) Paste(text string) error {
	g := rendering.DecodeGradient(text)
	if g == nil {
		return ErrInvalidPaste
	}
	return f.SetValueFromView(*g)
}

// CurveField edits a rendering.Curve.
type CurveField struct {
	richField[rendering.Curve]
}

// NewCurveField binds a curve slot.
func NewCurveField(label *LabelElement, b binder.Binder, editor EditorBuilder) *CurveField {
	t := binder.As[rendering.Curve](b)
	f := &CurveField{}
	get := func() rendering.Curve { return t.Get().Clone() }
	f.setup(label, b, get, "Curve", editor, func(c rendering.Curve) image.Image {
		plot := rendering.CurvePreview(c, Previews.CurveWidth, Previews.CurveHeight)
		return rendering.Scale(plot, Previews.DisplayWidth, Previews.DisplayHeight)
	})
	return core.Init(f)
}

// DisplayValue returns a short summary.
func (f *CurveField) DisplayValue() string {
	return itoa(len(f.value.Value().Keys)) + " keys"
}

// Copy encodes the curve for the clipboard.
func (f *CurveField) Copy() string { return rendering.EncodeCurve(f.value.Value()) }

// Paste decodes text into the slot.
func (f *CurveField) Paste(text string) error {
	c := rendering.DecodeCurve(text)
	if c == nil {
		return ErrInvalidPaste
	}
	return f.SetValueFromView(*c)
}
