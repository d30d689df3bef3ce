package binder

import (
	"reflect"

	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/schema"
)

type elemBinder struct {
	parent Binder
	typ    reflect.Type
}

// Elem views a pointer slot as the value it points to. Reading a nil
// pointer yields the zero value; writing through a nil pointer allocates a
// new value and stores its address in the parent slot.
func Elem(parent Binder) Binder {
	t := parent.ValueType()
	if t.Kind() != reflect.Pointer {
		panic("binder: Elem on non-pointer type " + t.String())
	}
	return &elemBinder{parent: parent, typ: t.Elem()}
}

func (b *elemBinder) ValueType() reflect.Type { return b.typ }
func (b *elemBinder) GetObject() any          { return b.Get().Interface() }

// Parent returns the pointer binder.
func (b *elemBinder) Parent() Binder { return b.parent }

func (b *elemBinder) Get() reflect.Value {
	v, _ := b.ref()
	return v
}

func (b *elemBinder) ref() (reflect.Value, bool) {
	p := b.parent.Get()
	if !p.IsValid() || p.IsNil() {
		return zero(b.typ), false
	}
	return p.Elem(), true
}

func (b *elemBinder) CanSet() bool {
	if b.parent.CanSet() {
		return true
	}
	_, live := b.ref()
	return live
}

func (b *elemBinder) Set(v reflect.Value) error {
	v, err := assignable(v, b.typ)
	if err != nil {
		return err
	}
	if p := b.parent.Get(); p.IsValid() && !p.IsNil() {
		p.Elem().Set(v)
		return nil
	}
	if !b.parent.CanSet() {
		return errors.ErrReadOnly
	}
	p := reflect.New(b.typ)
	p.Elem().Set(v)
	return b.parent.Set(p)
}

// IsNil reports whether the slot holds a nil pointer, slice, map or
// interface.
func IsNil(b Binder) bool {
	v := b.Get()
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

type enumIndexBinder struct {
	parent Binder
	enum   *schema.Enum
}

// EnumIndex views an enum slot as the position of its value in the enum's
// declared order. Unknown values read as -1.
func EnumIndex(parent Binder, enum *schema.Enum) Binder {
	return &enumIndexBinder{parent: parent, enum: enum}
}

func (b *enumIndexBinder) ValueType() reflect.Type { return reflect.TypeFor[int]() }
func (b *enumIndexBinder) CanSet() bool            { return b.parent.CanSet() }
func (b *enumIndexBinder) GetObject() any          { return b.enum.IndexOf(b.parent.Get()) }
func (b *enumIndexBinder) IsConst() bool           { return IsConst(b.parent) }

// Parent returns the enum binder.
func (b *enumIndexBinder) Parent() Binder { return b.parent }

func (b *enumIndexBinder) Get() reflect.Value {
	return reflect.ValueOf(b.enum.IndexOf(b.parent.Get()))
}

func (b *enumIndexBinder) Set(v reflect.Value) error {
	if !b.parent.CanSet() {
		return errors.ErrReadOnly
	}
	i := int(v.Int())
	if i < 0 || i >= len(b.enum.Values) {
		return errors.ErrOutOfRange
	}
	return b.parent.Set(b.enum.Values[i])
}

type dynamicBinder struct {
	parent Binder
	typ    reflect.Type
}

// Dynamic views an interface slot as concrete type t. Reading yields the
// zero value of t when the dynamic value has another type.
func Dynamic(parent Binder, t reflect.Type) Binder {
	return &dynamicBinder{parent: parent, typ: t}
}

func (b *dynamicBinder) ValueType() reflect.Type { return b.typ }
func (b *dynamicBinder) CanSet() bool            { return b.parent.CanSet() }
func (b *dynamicBinder) GetObject() any          { return b.Get().Interface() }

// Parent returns the interface binder.
func (b *dynamicBinder) Parent() Binder { return b.parent }

func (b *dynamicBinder) Get() reflect.Value {
	v := b.parent.Get()
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() || v.Type() != b.typ {
		return zero(b.typ)
	}
	return v
}

func (b *dynamicBinder) Set(v reflect.Value) error {
	if !b.parent.CanSet() {
		return errors.ErrReadOnly
	}
	v, err := assignable(v, b.typ)
	if err != nil {
		return err
	}
	return b.parent.Set(v)
}

// DynamicType returns the type of the value currently held by an interface
// slot, or nil.
func DynamicType(b Binder) reflect.Type {
	v := b.Get()
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	return v.Type()
}
