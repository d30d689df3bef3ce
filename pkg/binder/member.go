package binder

import (
	"fmt"
	"reflect"

	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/schema"
)

type fieldBinder struct {
	parent Binder
	name   string
	index  []int
	typ    reflect.Type
	owner  reflect.Type // struct type holding the field
}

// Field binds the exported member name of the struct held by parent.
// Pointers to structs are followed. Field panics if the member does not
// exist, which indicates a programming error in the caller.
func Field(parent Binder, name string) MemberBinder {
	owner := parent.ValueType()
	for owner.Kind() == reflect.Pointer {
		owner = owner.Elem()
	}
	m, ok := schema.For(owner).Member(name)
	if !ok {
		panic(fmt.Sprintf("binder: %s has no bindable member %q", owner, name))
	}
	return &fieldBinder{parent: parent, name: name, index: m.Index, typ: m.Type, owner: owner}
}

func (b *fieldBinder) ValueType() reflect.Type { return b.typ }
func (b *fieldBinder) Parent() Binder          { return b.parent }
func (b *fieldBinder) MemberName() string      { return b.name }
func (b *fieldBinder) CanSet() bool            { return b.parent.CanSet() || b.liveParent() }
func (b *fieldBinder) GetObject() any          { return b.Get().Interface() }

func (b *fieldBinder) Get() reflect.Value {
	v, _ := b.ref()
	return v
}

// ref resolves the owning struct, following pointers. The field aliases
// storage when the struct itself is live or was reached through a pointer.
func (b *fieldBinder) ref() (reflect.Value, bool) {
	sv, live, ok := b.owningStruct()
	if !ok {
		return zero(b.typ), false
	}
	f, err := sv.FieldByIndexErr(b.index)
	if err != nil {
		return zero(b.typ), false
	}
	return f, live && f.CanSet()
}

func (b *fieldBinder) owningStruct() (reflect.Value, bool, bool) {
	v, live := ref(b.parent)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false, false
		}
		v = v.Elem()
		live = true
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false, false
	}
	return v, live, true
}

func (b *fieldBinder) liveParent() bool {
	_, live, ok := b.owningStruct()
	return ok && live
}

func (b *fieldBinder) Set(v reflect.Value) error {
	v, err := assignable(v, b.typ)
	if err != nil {
		return err
	}
	sv, live, ok := b.owningStruct()
	if !ok {
		return errors.ErrNilParent
	}
	if live {
		f, err := sv.FieldByIndexErr(b.index)
		if err != nil {
			return errors.ErrNilParent
		}
		if f.CanSet() {
			f.Set(v)
			return nil
		}
	}
	if !b.parent.CanSet() {
		return errors.ErrReadOnly
	}
	// copy, modify, write back
	cp := reflect.New(sv.Type()).Elem()
	cp.Set(sv)
	f, err := cp.FieldByIndexErr(b.index)
	if err != nil {
		return errors.ErrNilParent
	}
	f.Set(v)
	return b.parent.Set(cp)
}

type indexBinder struct {
	parent Binder
	index  int
	typ    reflect.Type
}

// Index binds element i of the slice or array held by parent. The binder
// keeps addressing position i when the sequence is resized; reading past
// the end yields the zero value and writing past it fails.
func Index(parent Binder, i int) Binder {
	t := parent.ValueType()
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		panic(fmt.Sprintf("binder: Index on non-sequence type %s", t))
	}
	return &indexBinder{parent: parent, index: i, typ: t.Elem()}
}

func (b *indexBinder) ValueType() reflect.Type { return b.typ }
func (b *indexBinder) Position() int           { return b.index }
func (b *indexBinder) GetObject() any          { return b.Get().Interface() }

// Parent returns the sequence binder.
func (b *indexBinder) Parent() Binder { return b.parent }

// MemberName returns the element position as text.
func (b *indexBinder) MemberName() string { return fmt.Sprintf("[%d]", b.index) }

func (b *indexBinder) Get() reflect.Value {
	v, _ := b.ref()
	return v
}

func (b *indexBinder) ref() (reflect.Value, bool) {
	seq, live := ref(b.parent)
	if !seq.IsValid() || b.index < 0 || b.index >= seq.Len() {
		return zero(b.typ), false
	}
	// slice elements share the backing array
	if seq.Kind() == reflect.Slice {
		return seq.Index(b.index), true
	}
	return seq.Index(b.index), live
}

func (b *indexBinder) CanSet() bool {
	if b.parent.CanSet() {
		return true
	}
	_, live := b.ref()
	return live
}

func (b *indexBinder) Set(v reflect.Value) error {
	v, err := assignable(v, b.typ)
	if err != nil {
		return err
	}
	seq, live := ref(b.parent)
	if !seq.IsValid() || b.index < 0 || b.index >= seq.Len() {
		return errors.ErrOutOfRange
	}
	if seq.Kind() == reflect.Slice || live {
		if e := seq.Index(b.index); e.CanSet() {
			e.Set(v)
			return nil
		}
	}
	if !b.parent.CanSet() {
		return errors.ErrReadOnly
	}
	cp := reflect.New(seq.Type()).Elem()
	cp.Set(seq)
	cp.Index(b.index).Set(v)
	return b.parent.Set(cp)
}

// Len returns the current length of the sequence held by b, treating nil
// slices and nil pointers to sequences as empty.
func Len(b Binder) int {
	v := b.Get()
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Len()
	}
	return 0
}
