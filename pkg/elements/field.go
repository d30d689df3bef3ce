package elements

import (
	"fmt"
	"math"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/reactive"
)

// FieldElement is a leaf bound to one slot. Each tick Sync pulls the slot
// into Value; listeners fire only when the value changed.
type FieldElement[T any] struct {
	core.ElementBase
	label    *LabelElement
	value    *reactive.Property[T]
	get      func() T
	set      func(T) error
	constant bool

	// DelayInput asks renderers to commit edits on submit or blur.
	DelayInput bool
}

// NewFieldElement binds a leaf to accessor funcs. A nil set makes the
// field read-only.
func NewFieldElement[T any](label *LabelElement, get func() T, set func(T) error) *FieldElement[T] {
	f := &FieldElement[T]{}
	f.init(label, get, set)
	return core.Init(f)
}

func (f *FieldElement[T]) init(label *LabelElement, get func() T, set func(T) error) {
	f.label = label
	f.get = get
	f.set = set
	f.value = reactive.NewProperty(get())
	attachLabel(f, label)
	if set == nil {
		f.SetInteractable(false)
	}
}

func (f *FieldElement[T]) bind(label *LabelElement, b binder.Binder) {
	t := binder.As[T](b)
	var set func(T) error
	if b.CanSet() {
		set = t.Set
	}
	f.init(label, t.Get, set)
	f.constant = binder.IsConst(b)
}

// Label returns the field label, or nil.
func (f *FieldElement[T]) Label() *LabelElement { return f.label }

// Value returns the observed value cell.
func (f *FieldElement[T]) Value() *reactive.Property[T] { return f.value }

// Sync pulls the current value. Constant sources are read once.
func (f *FieldElement[T]) Sync() {
	if f.constant {
		return
	}
	f.value.Set(f.get())
}

// SetValueFromView writes v to the bound slot and refreshes Value.
func (f *FieldElement[T]) SetValueFromView(v T) error {
	if f.set == nil || !f.Interactable() {
		return errors.ErrReadOnly
	}
	if err := f.set(v); err != nil {
		return err
	}
	f.value.Set(f.get())
	return nil
}

// DisplayValue formats the current value.
func (f *FieldElement[T]) DisplayValue() string {
	return fmt.Sprint(f.value.Value())
}

// IntField edits signed integers of any width.
type IntField struct{ FieldElement[int] }

// NewIntField binds an integer slot.
func NewIntField(label *LabelElement, b binder.Binder) *IntField {
	f := &IntField{}
	f.bind(label, b)
	return core.Init(f)
}

// UIntField edits unsigned integers of any width.
type UIntField struct{ FieldElement[uint] }

// NewUIntField binds an unsigned integer slot.
func NewUIntField(label *LabelElement, b binder.Binder) *UIntField {
	f := &UIntField{}
	f.bind(label, b)
	return core.Init(f)
}

// FloatField edits floating point numbers.
type FloatField struct{ FieldElement[float64] }

// NewFloatField binds a float slot.
func NewFloatField(label *LabelElement, b binder.Binder) *FloatField {
	f := &FloatField{}
	f.bind(label, b)
	return core.Init(f)
}

// SetValueFromView rejects NaN and infinities.
func (f *FloatField) SetValueFromView(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", errors.ErrOutOfRange, v)
	}
	return f.FieldElement.SetValueFromView(v)
}

// TextField edits strings.
type TextField struct {
	FieldElement[string]
	multiline bool
}

// NewTextField binds a string slot.
func NewTextField(label *LabelElement, b binder.Binder, multiline bool) *TextField {
	f := &TextField{multiline: multiline}
	f.bind(label, b)
	return core.Init(f)
}

// IsMultiLine reports whether the text spans several lines.
func (f *TextField) IsMultiLine() bool { return f.multiline }

// Toggle edits booleans.
type Toggle struct{ FieldElement[bool] }

// NewToggle binds a bool slot.
func NewToggle(label *LabelElement, b binder.Binder) *Toggle {
	f := &Toggle{}
	f.bind(label, b)
	return core.Init(f)
}

// Dropdown selects one of Options by position.
type Dropdown struct {
	FieldElement[int]
	Options []string
}

// NewDropdown binds an index slot, typically an enum index binder.
func NewDropdown(label *LabelElement, b binder.Binder, options []string) *Dropdown {
	f := &Dropdown{Options: options}
	f.bind(label, b)
	return core.Init(f)
}

// DisplayValue returns the selected option name.
func (d *Dropdown) DisplayValue() string {
	i := d.value.Value()
	if i < 0 || i >= len(d.Options) {
		return ""
	}
	return d.Options[i]
}

// ReadOnlyField shows a value that cannot be edited.
type ReadOnlyField[T any] struct{ FieldElement[T] }

// NewReadOnlyField shows the value returned by get.
func NewReadOnlyField[T any](label *LabelElement, get func() T) *ReadOnlyField[T] {
	f := &ReadOnlyField[T]{}
	f.init(label, get, nil)
	return core.Init(f)
}

// NewConstField shows a value that never changes.
func NewConstField[T any](label *LabelElement, v T) *ReadOnlyField[T] {
	f := NewReadOnlyField(label, func() T { return v })
	f.constant = true
	return f
}
