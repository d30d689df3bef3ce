package elements

import (
	"reflect"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/schema"
)

// NullGuard manages a nullable slot. While the slot is nil it shows a
// NullPlaceholder; otherwise it shows the content built by build. The
// child is rebuilt whenever the slot switches between nil and non-nil.
type NullGuard struct {
	*core.DynamicElement
	b     binder.Binder
	label *LabelElement
}

// NewNullGuard guards the pointer slot b.
func NewNullGuard(label *LabelElement, b binder.Binder, build func() core.Element) *NullGuard {
	return NewNullGuardWithFingerprint(label, b, func() any { return binder.IsNil(b) }, build)
}

// NewNullGuardWithFingerprint is NewNullGuard with a custom rebuild
// trigger, e.g. the identity of the referenced object.
func NewNullGuardWithFingerprint(label *LabelElement, b binder.Binder, fingerprint func() any, build func() core.Element) *NullGuard {
	g := &NullGuard{b: b, label: label}
	g.DynamicElement = core.NewDynamicElement(fingerprint, func() core.Element {
		if binder.IsNil(b) {
			return NewNullPlaceholder(label, g.Instantiate, b.CanSet())
		}
		return build()
	}).SetType(b.ValueType())
	if label != nil {
		g.Preserve(label)
	}
	return core.Init(g)
}

// Label returns the guarded slot's label, or nil.
func (g *NullGuard) Label() *LabelElement { return g.label }

// IsNull reports whether the slot is currently nil.
func (g *NullGuard) IsNull() bool { return binder.IsNil(g.b) }

// Instantiate stores a default value in the slot.
func (g *NullGuard) Instantiate() error {
	if !g.b.CanSet() {
		return errors.ErrReadOnly
	}
	return g.b.Set(schema.NewDefault(g.b.ValueType()))
}

// Clear sets the slot back to nil.
func (g *NullGuard) Clear() error {
	if !g.b.CanSet() {
		return errors.ErrReadOnly
	}
	return g.b.Set(reflect.Zero(g.b.ValueType()))
}

// NullPlaceholder is shown for nil slots: the label, a "null" text and a
// Create button.
type NullPlaceholder struct {
	core.ElementBase
	label  *LabelElement
	create *Button
}

// NewNullPlaceholder returns a placeholder whose button calls create.
func NewNullPlaceholder(label *LabelElement, create func() error, canCreate bool) *NullPlaceholder {
	p := &NullPlaceholder{label: label}
	p.create = NewButton("Create", func() {
		if err := create(); err != nil {
			errors.Report(&errors.BindError{Op: "elements.NullPlaceholder.Create", Kind: errors.KindUnsupported, Err: err})
		}
	})
	if !canCreate {
		p.create.SetInteractable(false)
	}
	attachLabel(p, label)
	core.AppendChild(p, NewText("null"))
	core.AppendChild(p, p.create)
	return p
}

// Label returns the label, or nil.
func (p *NullPlaceholder) Label() *LabelElement { return p.label }

// CreateButton returns the Create button.
func (p *NullPlaceholder) CreateButton() *Button { return p.create }
