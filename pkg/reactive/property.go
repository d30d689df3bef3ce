// Package reactive provides value cells that notify listeners on change.
package reactive

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Property holds a value and notifies listeners when a newly set value
// differs from the previous one.
//
// Property is NOT thread-safe. It is driven by per-tick pulls on the UI
// goroutine.
type Property[T any] struct {
	value     T
	equal     func(a, b T) bool
	listeners []listener[T]
	nextID    int
}

type listener[T any] struct {
	id int
	fn func(T)
}

// NewProperty creates a property using the default equality for T.
func NewProperty[T any](initial T) *Property[T] {
	return &Property[T]{value: initial, equal: DefaultEqual[T]()}
}

// NewPropertyWithEquality creates a property with a custom equality function.
func NewPropertyWithEquality[T any](initial T, equal func(a, b T) bool) *Property[T] {
	if equal == nil {
		equal = DefaultEqual[T]()
	}
	return &Property[T]{value: initial, equal: equal}
}

// Value returns the last observed value.
func (p *Property[T]) Value() T {
	return p.value
}

// Set stores v and notifies listeners if it differs from the current value.
// It reports whether a notification was sent.
func (p *Property[T]) Set(v T) bool {
	if p.equal(p.value, v) {
		return false
	}
	p.value = v
	if len(p.listeners) == 0 {
		return true
	}
	// Listeners may unsubscribe while being notified.
	snapshot := make([]listener[T], len(p.listeners))
	copy(snapshot, p.listeners)
	for _, l := range snapshot {
		l.fn(v)
	}
	return true
}

// AddListener registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (p *Property[T]) AddListener(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (p *Property[T]) ListenerCount() int {
	return len(p.listeners)
}

// DefaultEqual returns the equality used by NewProperty: == for comparable
// non-interface types, reflect.DeepEqual otherwise. NaNs compare equal to
// each other, so an unchanged NaN is not reported as a change.
func DefaultEqual[T any]() func(a, b T) bool {
	t := reflect.TypeFor[T]()
	nan := mayHoldFloat(t, map[reflect.Type]bool{})
	var eq func(a, b T) bool
	switch {
	case isFloat(t.Kind()):
		return func(a, b T) bool {
			x, y := any(a), any(b)
			return x == y || (x != x && y != y)
		}
	case t.Kind() != reflect.Interface && t.Comparable() && !containsInterface(t):
		eq = func(a, b T) bool { return any(a) == any(b) }
	default:
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	if !nan {
		return eq
	}
	return func(a, b T) bool { return eq(a, b) || equateNaNs(a, b) }
}

var nanOptions = cmp.Options{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// equateNaNs is the slow path for values that differ under the fast
// comparison only because of NaN members.
func equateNaNs(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return cmp.Equal(a, b, nanOptions)
}

func isFloat(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// mayHoldFloat reports whether a value of t can contain a float. Interfaces
// may hold anything.
func mayHoldFloat(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	switch k := t.Kind(); {
	case isFloat(k), k == reflect.Interface:
		return true
	case k == reflect.Array, k == reflect.Slice, k == reflect.Pointer:
		return mayHoldFloat(t.Elem(), seen)
	case k == reflect.Map:
		return mayHoldFloat(t.Key(), seen) || mayHoldFloat(t.Elem(), seen)
	case k == reflect.Struct:
		for i := range t.NumField() {
			if mayHoldFloat(t.Field(i).Type, seen) {
				return true
			}
		}
	}
	return false
}

// containsInterface reports whether comparing values of t with == could
// panic on a non-comparable dynamic value.
func containsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return containsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if containsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
