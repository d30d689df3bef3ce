package ui

import (
	"reflect"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
)

// Build starts a fresh build pass over the value root points to.
// root must be a non-nil pointer.
func Build(root any) core.Element {
	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic("ui: Build needs a non-nil pointer")
	}
	return BuildBinder(binder.FromReflectPointer(v))
}

// BuildBinder starts a fresh build pass over b without a label.
func BuildBinder(b binder.Binder) core.Element {
	return resume(buildState{}, func() core.Element {
		return FieldWith(nil, b, DefaultFieldOption())
	})
}

// Label returns a label element for text, or nil for an empty text.
func Label(text string) *elements.LabelElement {
	if text == "" {
		return nil
	}
	return elements.NewLabel(text)
}

// Field builds the slot b with the default field option.
func Field(label string, b binder.Binder) core.Element {
	return FieldWith(Label(label), b, DefaultFieldOption())
}

// FieldPtr builds the slot p points to.
func FieldPtr[T any](label string, p *T) core.Element {
	return Field(label, binder.FromPointer(p))
}

// FieldFunc builds a slot read through get and written through set. A nil
// set makes the slot read-only.
func FieldFunc[T any](label string, get func() T, set func(T)) core.Element {
	return Field(label, binder.FromFuncs(get, set))
}

// FieldReadOnly shows the value returned by get. It is read every tick.
func FieldReadOnly[T any](label string, get func() T) core.Element {
	return elements.NewReadOnlyField(Label(label), get)
}

// Members builds the member subtrees of the struct held by b without a
// group around them.
func Members(b binder.Binder) []core.Element {
	return members(b, DefaultFieldOption())
}

// List builds a list view over the slice or array held by b.
func List(label string, b binder.Binder, opt ListViewOption) *elements.ListView {
	return listView(Label(label), b, DefaultFieldOption(), opt)
}

// Slider builds a slider over p clamped to [lo, hi].
func Slider[N int | float64](label string, p *N, lo, hi float64) core.Element {
	b := binder.FromPointer(p)
	if _, ok := any(p).(*int); ok {
		return elements.NewIntSlider(Label(label), b, elements.StaticBound(lo), elements.StaticBound(hi))
	}
	return elements.NewFloatSlider(Label(label), b, elements.StaticBound(lo), elements.StaticBound(hi))
}

// Row lays children out horizontally.
func Row(children ...core.Element) *elements.Row { return elements.NewRow(children...) }

// Column lays children out vertically.
func Column(children ...core.Element) *elements.Column { return elements.NewColumn(children...) }

// Fold groups children under a collapsible label.
func Fold(label string, children ...core.Element) *elements.Fold {
	return elements.NewFold(Label(label), children...)
}

// Button calls onClick when clicked.
func Button(text string, onClick func()) *elements.Button {
	return elements.NewButton(text, onClick)
}

// HelpBox shows a message.
func HelpBox(message string, typ elements.MessageType) *elements.HelpBox {
	return elements.NewHelpBox(message, typ)
}

// Text shows a fixed string.
func Text(content string) *elements.Text { return elements.NewText(content) }

// Window wraps content in a titled window.
func Window(title string, content core.Element) *elements.Window {
	return elements.NewWindow(title, content)
}

// WindowLauncher opens a window whose content is built on first open.
func WindowLauncher(title string, build func() core.Element) *elements.WindowLauncher {
	return elements.NewWindowLauncher(title, build)
}

// NullGuard guards the pointer slot b, building content while it is
// non-nil.
func NullGuard(label string, b binder.Binder, content func() core.Element) *elements.NullGuard {
	return elements.NewNullGuard(Label(label), b, content)
}

// Dynamic rebuilds build's subtree whenever fingerprint changes.
func Dynamic(fingerprint func() any, build func() core.Element) *core.DynamicElement {
	state := capture()
	return core.NewDynamicElement(fingerprint, func() core.Element {
		return resume(state, build)
	})
}
