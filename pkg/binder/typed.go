package binder

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-drift/inspector/pkg/errors"
)

// Typed gives statically typed access to a binder whose value kind can be
// converted to T, e.g. an int32 field viewed as int.
type Typed[T any] struct {
	b   Binder
	typ reflect.Type
}

// As returns a typed view of b.
func As[T any](b Binder) *Typed[T] {
	return &Typed[T]{b: b, typ: reflect.TypeFor[T]()}
}

// Binder returns the underlying binder.
func (t *Typed[T]) Binder() Binder { return t.b }

// IsConst reports whether the underlying binder never changes.
func (t *Typed[T]) IsConst() bool { return IsConst(t.b) }

// CanSet reports whether Set may succeed.
func (t *Typed[T]) CanSet() bool { return t.b.CanSet() }

// Get returns the current value converted to T.
func (t *Typed[T]) Get() T {
	var out T
	v := t.b.Get()
	if !v.IsValid() {
		return out
	}
	switch p := any(&out).(type) {
	case *int:
		switch {
		case v.CanInt():
			*p = int(v.Int())
		case v.CanUint():
			*p = int(min(v.Uint(), math.MaxInt))
		}
	case *uint:
		if v.CanUint() {
			*p = uint(v.Uint())
		}
	case *float64:
		switch {
		case v.CanFloat():
			*p = v.Float()
		case v.CanInt():
			*p = float64(v.Int())
		case v.CanUint():
			*p = float64(v.Uint())
		}
	case *string:
		if v.Kind() == reflect.String {
			*p = v.String()
		}
	case *bool:
		if v.Kind() == reflect.Bool {
			*p = v.Bool()
		}
	default:
		if v.Type() != t.typ {
			if !v.Type().ConvertibleTo(t.typ) {
				return out
			}
			v = v.Convert(t.typ)
		}
		if v.Kind() == reflect.Interface && v.IsNil() {
			return out
		}
		out = v.Interface().(T)
	}
	return out
}

// Set converts x to the slot's type and writes it. Values that do not fit
// the slot's kind fail with errors.ErrOverflow.
func (t *Typed[T]) Set(x T) error {
	if !t.b.CanSet() {
		return errors.ErrReadOnly
	}
	vt := t.b.ValueType()
	nv := reflect.New(vt).Elem()
	switch x := any(x).(type) {
	case int:
		switch {
		case nv.CanInt():
			if nv.OverflowInt(int64(x)) {
				return fmt.Errorf("%w: %d does not fit %s", errors.ErrOverflow, x, vt)
			}
			nv.SetInt(int64(x))
		case nv.CanUint():
			if x < 0 || nv.OverflowUint(uint64(x)) {
				return fmt.Errorf("%w: %d does not fit %s", errors.ErrOverflow, x, vt)
			}
			nv.SetUint(uint64(x))
		default:
			return t.setConverted(nv, reflect.ValueOf(x))
		}
	case uint:
		if !nv.CanUint() {
			return t.setConverted(nv, reflect.ValueOf(x))
		}
		if nv.OverflowUint(uint64(x)) {
			return fmt.Errorf("%w: %d does not fit %s", errors.ErrOverflow, x, vt)
		}
		nv.SetUint(uint64(x))
	case float64:
		if !nv.CanFloat() {
			return t.setConverted(nv, reflect.ValueOf(x))
		}
		if nv.OverflowFloat(x) {
			return fmt.Errorf("%w: %g does not fit %s", errors.ErrOverflow, x, vt)
		}
		nv.SetFloat(x)
	default:
		return t.setConverted(nv, reflect.ValueOf(x))
	}
	return t.b.Set(nv)
}

func (t *Typed[T]) setConverted(nv, v reflect.Value) error {
	v, err := assignable(v, nv.Type())
	if err != nil {
		return err
	}
	nv.Set(v)
	return t.b.Set(nv)
}
