package ui

import (
	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/schema"
)

// buildComposite expands the members of r's type and groups them: one
// row for single-line types, a fold when labelled, a column otherwise.
// Types without bindable members yield an empty group.
func buildComposite(r *request) core.Element {
	children := members(r.b, r.opt)
	switch {
	case schema.For(r.t).SingleLine:
		return elements.NewCompositeField(r.label, children...)
	case r.label != nil:
		return elements.NewFold(r.label, children...)
	default:
		return elements.NewColumn(children...)
	}
}

// members builds one subtree per bindable member of the struct held by b.
func members(b binder.Binder, opt FieldOption) []core.Element {
	pop := pushScope(nil)
	defer pop()

	s := schema.For(b.ValueType())
	children := make([]core.Element, 0, len(s.Members))
	for _, m := range s.Members {
		var mb binder.Binder = binder.Field(b, m.Name)
		if m.ReadOnly {
			mb = binder.ReadOnly(mb)
		}
		child := FieldWith(elements.NewLabel(m.Label), mb, opt)
		if m.ReadOnly {
			setInteractable(child, false)
		}
		children = append(children, child)
	}
	return children
}

func setInteractable(e core.Element, interactable bool) {
	if s, ok := e.(interface{ SetInteractable(bool) }); ok {
		s.SetInteractable(interactable)
	}
}
