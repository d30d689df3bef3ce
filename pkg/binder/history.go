package binder

import "reflect"

// ID identifies a reference value: the pointer (or map) and its type.
// An addressable struct is identified by its address, so a struct reached
// by value and the same struct reached through a pointer share one ID.
// Values that cannot form cycles have the zero ID.
type ID struct {
	Type reflect.Type
	Ptr  uintptr
}

// IsZero reports whether id identifies nothing.
func (id ID) IsZero() bool { return id.Type == nil }

// Identity returns the ID of the value currently held by b.
func Identity(b Binder) ID {
	return identityOf(b.Get())
}

func identityOf(v reflect.Value) ID {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ID{}
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return ID{}
		}
		return ID{Type: v.Type(), Ptr: v.Pointer()}
	case reflect.Struct:
		if v.CanAddr() {
			return ID{Type: reflect.PointerTo(v.Type()), Ptr: v.Addr().Pointer()}
		}
	}
	return ID{}
}

// History is the stack of reference identities currently being expanded
// during one build pass. It is not safe for concurrent use; each build
// pass owns its history.
type History struct {
	stack []ID
}

// NewHistory returns a history whose stack starts as a copy of snapshot.
func NewHistory(snapshot []ID) *History {
	h := &History{}
	if len(snapshot) > 0 {
		h.stack = append(make([]ID, 0, len(snapshot)+8), snapshot...)
	}
	return h
}

// Scope is returned by Enter. Release pops everything pushed since the
// matching Enter, so a deferred Release restores the stack on every exit
// path, including panics.
type Scope struct {
	h     *History
	depth int
}

// Release restores the history to its depth at Enter.
func (s Scope) Release() {
	if s.h != nil && len(s.h.stack) > s.depth {
		clear(s.h.stack[s.depth:])
		s.h.stack = s.h.stack[:s.depth]
	}
}

// Enter pushes b's identity. It returns false without pushing when the
// identity is already being expanded, which means the graph is circular.
func (h *History) Enter(b Binder) (Scope, bool) {
	scope := Scope{h: h, depth: len(h.stack)}
	id := Identity(b)
	if id.IsZero() {
		return scope, true
	}
	if h.contains(id) {
		return scope, false
	}
	h.stack = append(h.stack, id)
	return scope, true
}

// IsCircular reports whether b's identity is already being expanded.
func (h *History) IsCircular(b Binder) bool {
	id := Identity(b)
	return !id.IsZero() && h.contains(id)
}

func (h *History) contains(id ID) bool {
	for _, x := range h.stack {
		if x == id {
			return true
		}
	}
	return false
}

// Depth returns the number of identities on the stack.
func (h *History) Depth() int { return len(h.stack) }

// Snapshot returns a copy of the current stack.
func (h *History) Snapshot() []ID {
	if len(h.stack) == 0 {
		return nil
	}
	out := make([]ID, len(h.stack))
	copy(out, h.stack)
	return out
}
