package ui

import (
	"reflect"
	"strconv"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/rendering"
	"github.com/go-drift/inspector/pkg/schema"
)

// request is one slot being dispatched.
type request struct {
	label *elements.LabelElement
	b     binder.Binder
	t     reflect.Type
	opt   FieldOption
	// outer is the pass state before the slot was entered. Deferred
	// builds of the slot's content resume from it.
	outer buildState
}

type rule struct {
	name  string
	match func(r *request) bool
	build func(r *request) core.Element
}

// rules is filled in init because the builders recurse into FieldWith.
var rules []rule

func init() {
	rules = []rule{
		{"custom", matchCustom, buildCustom},
		{"enum", matchEnum, buildEnum},
		{"color", matchType[rendering.Color], buildColor},
		{"gradient", matchType[rendering.Gradient], buildGradient},
		{"curve", matchType[rendering.Curve], buildCurve},
		{"int", matchKind(reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64), buildInt},
		{"uint", matchKind(reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64), buildUint},
		{"float", matchKind(reflect.Float32, reflect.Float64), buildFloat},
		{"string", matchKind(reflect.String), buildString},
		{"bool", matchKind(reflect.Bool), buildBool},
		{"interface", matchKind(reflect.Interface), buildInterface},
		{"creator-ref", matchCreatorRef, buildCreatorRef},
		{"creator-value", matchCreatorValue, buildCreatorValue},
		{"nullable", matchKind(reflect.Pointer), buildNullable},
		{"list", matchKind(reflect.Slice, reflect.Array), buildList},
		{"composite", func(*request) bool { return true }, buildComposite},
	}
}

// Rules returns the dispatch rule names in evaluation order. The cycle
// check runs before every other rule.
func Rules() []string {
	names := []string{"circular"}
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

// FieldWith builds the subtree for the slot b. The first matching rule
// decides the element kind; label may be nil.
func FieldWith(label *elements.LabelElement, b binder.Binder, opt FieldOption) core.Element {
	h := history()
	t := b.ValueType()
	r := &request{label: label, b: b, t: t, opt: opt}
	if outer, ok := takeHandOff(b); ok {
		// already entered by the custom rule that handed it back
		r.outer = outer
	} else {
		if h.IsCircular(b) {
			return circular(label, t)
		}
		r.outer = capture()
		scope, _ := h.Enter(b)
		defer scope.Release()
	}
	for _, rl := range rules {
		if rl.match(r) {
			return rl.build(r)
		}
	}
	panic("ui: no rule matched " + t.String())
}

func circular(label *elements.LabelElement, t reflect.Type) core.Element {
	msg := "[" + t.String() + "] Circular reference detected."
	c := elements.NewCompositeField(label, elements.NewHelpBox(msg, elements.MessageError))
	c.SetInteractable(false)
	return c
}

func matchKind(kinds ...reflect.Kind) func(r *request) bool {
	return func(r *request) bool {
		k := r.t.Kind()
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

func matchType[T any](r *request) bool { return r.t == reflect.TypeFor[T]() }

func matchEnum(r *request) bool { return schema.IsEnum(r.t) }

func buildEnum(r *request) core.Element {
	e, _ := schema.EnumOf(r.t)
	return elements.NewDropdown(r.label, binder.EnumIndex(r.b, e), e.Names)
}

func buildInt(r *request) core.Element {
	if lo, hi, ok := rangeOf(r.b); ok {
		return elements.NewIntSlider(r.label, r.b, lo, hi)
	}
	f := elements.NewIntField(r.label, r.b)
	f.DelayInput = r.opt.DelayInput
	return f
}

func buildUint(r *request) core.Element {
	if lo, hi, ok := rangeOf(r.b); ok {
		return elements.NewUIntSlider(r.label, r.b, lo, hi)
	}
	f := elements.NewUIntField(r.label, r.b)
	f.DelayInput = r.opt.DelayInput
	return f
}

func buildFloat(r *request) core.Element {
	if lo, hi, ok := rangeOf(r.b); ok {
		return elements.NewFloatSlider(r.label, r.b, lo, hi)
	}
	f := elements.NewFloatField(r.label, r.b)
	f.DelayInput = r.opt.DelayInput
	return f
}

func buildString(r *request) core.Element {
	m := binder.Member(r.b)
	f := elements.NewTextField(r.label, r.b, m != nil && m.Multiline)
	f.DelayInput = r.opt.DelayInput
	return f
}

func buildBool(r *request) core.Element {
	return elements.NewToggle(r.label, r.b)
}

// rangeOf returns slider bounds for a member declared with range=min:max.
// A bound naming a sibling member reads that member on every call.
func rangeOf(b binder.Binder) (lo, hi elements.Bound, ok bool) {
	m := binder.Member(b)
	if m == nil || m.Range == nil {
		return nil, nil, false
	}
	owner, _, _ := binder.Owner(b)
	return bound(owner, m.Range.Min), bound(owner, m.Range.Max), true
}

func bound(owner binder.Binder, b schema.Bound) elements.Bound {
	if !b.IsComputed() {
		return elements.StaticBound(b.Value)
	}
	return binder.As[float64](binder.Field(owner, b.Member)).Get
}

type dynamicKey struct {
	typ reflect.Type
	id  binder.ID
}

// buildInterface shows the value held by an interface slot, rebuilding
// when the dynamic type or the referenced object changes.
func buildInterface(r *request) core.Element {
	b := r.b
	d := core.NewDynamicElement(func() any {
		return dynamicKey{binder.DynamicType(b), binder.Identity(b)}
	}, func() core.Element {
		dt := binder.DynamicType(b)
		if dt == nil {
			return elements.NewConstField(r.label, "null")
		}
		return resume(r.outer, func() core.Element {
			return FieldWith(r.label, binder.Dynamic(b, dt), r.opt)
		})
	}).SetType(r.t)
	if r.label != nil {
		d.Preserve(r.label)
	}
	return d
}

// buildNullable guards a pointer slot; the content binds the pointee.
func buildNullable(r *request) core.Element {
	return elements.NewNullGuard(r.label, r.b, func() core.Element {
		return resume(r.outer, func() core.Element {
			return FieldWith(r.label, binder.Elem(r.b), r.opt)
		})
	})
}

func buildList(r *request) core.Element {
	opt := DefaultListViewOption()
	if m := binder.Member(r.b); m != nil && m.Reorderable {
		opt.Reorderable = true
	}
	return listView(r.label, r.b, r.opt, opt)
}

func listView(label *elements.LabelElement, b binder.Binder, fieldOpt FieldOption, opt ListViewOption) *elements.ListView {
	state := capture()
	build := func(i int, item binder.Binder) core.Element {
		return resume(state, func() core.Element {
			return FieldWith(elements.NewLabel(itemLabel(i)), item, fieldOpt)
		})
	}
	return elements.NewListView(label, b, build, elements.ListOption{
		Reorderable: opt.Reorderable,
		FixedSize:   opt.FixedSize,
	})
}

func itemLabel(i int) string { return "Element " + strconv.Itoa(i) }
