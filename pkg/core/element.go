package core

import (
	"slices"
)

// Element is a node of the output tree. Renderers consume elements; the
// binding engine creates them and keeps them in sync with the bound data.
//
// Every implementation embeds ElementBase, which provides the structural
// and lifecycle behaviour.
type Element interface {
	// Parent returns the owning element, or nil for a root or an orphan.
	Parent() Element
	// Children returns the current children in construction order. The
	// returned slice must not be modified.
	Children() []Element
	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)
	// Sync pulls the current value from the element's data source.
	Sync()
	// Detach removes the element from its parent, detaches its children
	// and runs its detach hooks. Subsequent calls are no-ops.
	Detach()
	// IsDetached reports whether Detach has run.
	IsDetached() bool
	// Enabled reports whether the element and all its ancestors are
	// enabled.
	Enabled() bool
	// Interactable reports whether the element and all its ancestors
	// accept edits.
	Interactable() bool
	// OnDetach registers fn to run when the element is detached. The
	// returned func removes the registration.
	OnDetach(fn func()) (remove func())

	base() *ElementBase
}

// Rebuilder is implemented by structural elements whose children depend on
// the shape of the bound data. RebuildIfNeeded compares the current shape
// with the last observed one and replaces children when it changed.
type Rebuilder interface {
	RebuildIfNeeded() bool
}

// ElementBase provides the shared state of every element. Embed it by value.
type ElementBase struct {
	self      Element
	parent    Element
	children  []Element
	disposers []func()
	detached  bool
	disabled  bool
	readOnly  bool
	frame     uint64
}

func (e *ElementBase) base() *ElementBase { return e }

// outer returns the element that embeds e, falling back to fallback when
// Init was never called.
func (e *ElementBase) outer(fallback Element) Element {
	if e.self != nil {
		return e.self
	}
	return fallback
}

// Init records e as the element that owns its embedded ElementBase, so
// children report e as their parent. Types that embed another element
// type call it at the end of their constructor.
func Init[E Element](e E) E {
	b := e.base()
	b.self = e
	for _, c := range b.children {
		c.base().parent = e
	}
	return e
}

func (e *ElementBase) Parent() Element { return e.parent }

func (e *ElementBase) Children() []Element { return slices.Clip(e.children) }

func (e *ElementBase) VisitChildren(visitor func(Element) bool) {
	for _, c := range e.children {
		if !visitor(c) {
			return
		}
	}
}

// Sync is a no-op for elements without a data source.
func (e *ElementBase) Sync() {}

func (e *ElementBase) IsDetached() bool { return e.detached }

func (e *ElementBase) Enabled() bool {
	if e.disabled {
		return false
	}
	return e.parent == nil || e.parent.Enabled()
}

// SetEnabled toggles the element's own enabled flag.
func (e *ElementBase) SetEnabled(enabled bool) { e.disabled = !enabled }

func (e *ElementBase) Interactable() bool {
	if e.readOnly {
		return false
	}
	return e.parent == nil || e.parent.Interactable()
}

// SetInteractable toggles whether the element accepts edits.
func (e *ElementBase) SetInteractable(interactable bool) { e.readOnly = !interactable }

func (e *ElementBase) OnDetach(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	if e.detached {
		fn()
		return func() {}
	}
	index := len(e.disposers)
	e.disposers = append(e.disposers, fn)
	return func() {
		if index < len(e.disposers) {
			e.disposers[index] = nil
		}
	}
}

func (e *ElementBase) Detach() {
	if e.detached {
		return
	}
	e.detached = true
	if e.parent != nil {
		e.parent.base().removeChild(e)
		e.parent = nil
	}

	children := e.children
	e.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].base().parent = nil
		children[i].Detach()
	}

	// LIFO, like deferred calls
	for i := len(e.disposers) - 1; i >= 0; i-- {
		if e.disposers[i] != nil {
			e.disposers[i]()
		}
	}
	e.disposers = nil
}

func (e *ElementBase) removeChild(child *ElementBase) {
	i := slices.IndexFunc(e.children, func(c Element) bool { return c.base() == child })
	if i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
}

func attach(parent Element, child Element) {
	cb := child.base()
	if cb.detached {
		panic("core: attaching a detached element")
	}
	if cb.parent != nil {
		panic("core: element already has a parent")
	}
	if cb == parent.base() {
		panic("core: element cannot be its own child")
	}
	cb.parent = parent.base().outer(parent)
}
