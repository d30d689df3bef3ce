// Package binder provides uniform read/write access to a single slot in an
// object graph: a root value, a struct field, a sequence element, the
// pointee of a pointer, or an enum viewed as an index.
//
// Binders never cache values. Every Get reads through the owning chain, so
// a binder created once keeps observing the live graph.
package binder

import (
	"fmt"
	"reflect"

	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/schema"
)

// Binder addresses one slot of an object graph.
type Binder interface {
	// ValueType returns the declared static type of the slot.
	ValueType() reflect.Type
	// Get returns the current value. It returns the zero value of
	// ValueType when the slot is unreachable (nil owner, index past end).
	Get() reflect.Value
	// Set writes v into the slot. It returns errors.ErrReadOnly for
	// read-only slots.
	Set(v reflect.Value) error
	// CanSet reports whether Set may succeed.
	CanSet() bool
	// GetObject returns the boxed current value, used only for identity
	// comparison.
	GetObject() any
}

// MemberBinder is implemented by binders addressing a named member of the
// value held by a parent binder.
type MemberBinder interface {
	Binder
	Parent() Binder
	MemberName() string
}

// constant is implemented by binders whose value never changes.
type constant interface {
	IsConst() bool
}

// IsConst reports whether b never changes after construction.
func IsConst(b Binder) bool {
	c, ok := b.(constant)
	return ok && c.IsConst()
}

// referencer is implemented by binders that can report whether the value
// returned by Get aliases the underlying storage.
type referencer interface {
	ref() (v reflect.Value, live bool)
}

func ref(b Binder) (reflect.Value, bool) {
	if r, ok := b.(referencer); ok {
		return r.ref()
	}
	return b.Get(), false
}

func zero(t reflect.Type) reflect.Value {
	return reflect.Zero(t)
}

func assignable(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(t), nil
	}
	if v.Type() == t {
		return v, nil
	}
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", v.Type(), t)
}

// --- root binders ---

type pointerBinder struct {
	ptr reflect.Value
}

// FromPointer binds the value p points to. p must not be nil.
func FromPointer[T any](p *T) Binder {
	if p == nil {
		panic("binder: FromPointer called with nil pointer")
	}
	return &pointerBinder{ptr: reflect.ValueOf(p)}
}

// FromReflectPointer binds the value a reflect pointer points to.
func FromReflectPointer(p reflect.Value) Binder {
	if p.Kind() != reflect.Pointer || p.IsNil() {
		panic("binder: FromReflectPointer requires a non-nil pointer")
	}
	return &pointerBinder{ptr: p}
}

func (b *pointerBinder) ValueType() reflect.Type { return b.ptr.Type().Elem() }
func (b *pointerBinder) Get() reflect.Value      { return b.ptr.Elem() }
func (b *pointerBinder) CanSet() bool            { return true }
func (b *pointerBinder) GetObject() any          { return b.ptr.Elem().Interface() }

func (b *pointerBinder) ref() (reflect.Value, bool) { return b.ptr.Elem(), true }

func (b *pointerBinder) Set(v reflect.Value) error {
	v, err := assignable(v, b.ValueType())
	if err != nil {
		return err
	}
	b.ptr.Elem().Set(v)
	return nil
}

type funcBinder[T any] struct {
	get func() T
	set func(T)
}

// FromFuncs binds a slot through accessor functions. A nil set makes the
// slot read-only.
func FromFuncs[T any](get func() T, set func(T)) Binder {
	return &funcBinder[T]{get: get, set: set}
}

func (b *funcBinder[T]) ValueType() reflect.Type { return reflect.TypeFor[T]() }
func (b *funcBinder[T]) CanSet() bool            { return b.set != nil }
func (b *funcBinder[T]) GetObject() any          { return b.get() }

func (b *funcBinder[T]) Get() reflect.Value {
	v := b.get()
	if rv := reflect.ValueOf(v); rv.IsValid() && rv.Type() == b.ValueType() {
		return rv
	}
	// interface types: keep the declared type
	out := reflect.New(b.ValueType()).Elem()
	if rv := reflect.ValueOf(v); rv.IsValid() {
		out.Set(rv)
	}
	return out
}

func (b *funcBinder[T]) Set(v reflect.Value) error {
	if b.set == nil {
		return errors.ErrReadOnly
	}
	v, err := assignable(v, b.ValueType())
	if err != nil {
		return err
	}
	var x T
	reflect.ValueOf(&x).Elem().Set(v)
	b.set(x)
	return nil
}

type constBinder[T any] struct {
	value T
}

// Const binds a constant value. It is read-only and never changes.
func Const[T any](v T) Binder {
	return &constBinder[T]{value: v}
}

func (b *constBinder[T]) ValueType() reflect.Type { return reflect.TypeFor[T]() }
func (b *constBinder[T]) CanSet() bool            { return false }
func (b *constBinder[T]) GetObject() any          { return b.value }
func (b *constBinder[T]) IsConst() bool           { return true }
func (b *constBinder[T]) Set(reflect.Value) error { return errors.ErrReadOnly }

func (b *constBinder[T]) Get() reflect.Value {
	return reflect.ValueOf(&b.value).Elem()
}

// --- read-only wrapper ---

type readOnlyBinder struct {
	Binder
}

// ReadOnly wraps b so that Set always fails.
func ReadOnly(b Binder) Binder {
	if !b.CanSet() {
		return b
	}
	return &readOnlyBinder{Binder: b}
}

func (b *readOnlyBinder) CanSet() bool            { return false }
func (b *readOnlyBinder) Set(reflect.Value) error { return errors.ErrReadOnly }

// Parent and MemberName keep metadata lookups working through the wrapper.
func (b *readOnlyBinder) Parent() Binder {
	if m, ok := b.Binder.(MemberBinder); ok {
		return m.Parent()
	}
	return nil
}

func (b *readOnlyBinder) MemberName() string {
	if m, ok := b.Binder.(MemberBinder); ok {
		return m.MemberName()
	}
	return ""
}

// Owner returns the parent binder and member name of b, if b addresses a
// named member.
func Owner(b Binder) (parent Binder, name string, ok bool) {
	m, ok := b.(MemberBinder)
	if !ok || m.Parent() == nil {
		return nil, "", false
	}
	return m.Parent(), m.MemberName(), true
}

// Member returns the schema metadata for the member b addresses, or nil.
func Member(b Binder) *schema.Member {
	parent, name, ok := Owner(b)
	if !ok {
		return nil
	}
	return schema.Lookup(parent.ValueType(), name)
}
