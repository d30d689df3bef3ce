package ui

import (
	"fmt"
	"reflect"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/errors"
)

// ElementCreator is implemented by types that build their own subtree.
// The label belongs to the slot and may be nil; the creator decides
// where, or whether, to attach it.
type ElementCreator interface {
	CreateElement(label *elements.LabelElement) core.Element
}

var creatorType = reflect.TypeFor[ElementCreator]()

func matchCustom(r *request) bool {
	_, ok := LookupCreationFunc(r.t)
	return ok && !suspended(r.t)
}

// buildCustom runs the registered factory with the slot still entered, so
// cycles through the factory's own members are caught at the first
// re-entry. The factory may hand the same binder back to FieldWith.
func buildCustom(r *request) core.Element {
	fn, _ := LookupCreationFunc(r.t)
	pop := pushScope(r.t)
	defer pop()
	done := handOff(r.b, r.outer)
	defer done()
	return core.SafeBuild(r.t, func() core.Element {
		if e := fn(r.label, r.b); e != nil {
			return e
		}
		return creatorFailed(r.t, fmt.Errorf("creation func for %s returned nil", r.t))
	})
}

func matchCreatorRef(r *request) bool {
	return r.t.Kind() == reflect.Pointer && r.t.Implements(creatorType)
}

// buildCreatorRef delegates to the referenced object and rebuilds when the
// slot starts referencing another object.
func buildCreatorRef(r *request) core.Element {
	b := r.b
	fingerprint := func() any { return binder.Identity(b) }
	return elements.NewNullGuardWithFingerprint(r.label, b, fingerprint, func() core.Element {
		return resume(r.outer, func() core.Element {
			h := history()
			if h.IsCircular(b) {
				return circular(r.label, r.t)
			}
			scope, _ := h.Enter(b)
			defer scope.Release()
			return delegate(r.label, r.t, b.Get())
		})
	})
}

func matchCreatorValue(r *request) bool {
	switch r.t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return false
	}
	return r.t.Implements(creatorType) || reflect.PointerTo(r.t).Implements(creatorType)
}

func buildCreatorValue(r *request) core.Element {
	return core.SafeBuild(r.t, func() core.Element {
		return delegate(r.label, r.t, r.b.Get())
	})
}

func delegate(label *elements.LabelElement, t reflect.Type, v reflect.Value) core.Element {
	c, ok := creatorOf(v)
	if !ok {
		return creatorFailed(t, fmt.Errorf("%s does not implement CreateElement", valueType(v, t)))
	}
	e := c.CreateElement(label)
	if e == nil {
		return creatorFailed(t, fmt.Errorf("%s.CreateElement returned nil", t))
	}
	return e
}

// creatorOf returns the creator held by v. Addressable values use their
// pointer so the creator edits the stored value; other values that only
// have pointer methods get a copy.
func creatorOf(v reflect.Value) (ElementCreator, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		if c, ok := v.Addr().Interface().(ElementCreator); ok {
			return c, true
		}
	}
	if c, ok := v.Interface().(ElementCreator); ok {
		return c, true
	}
	if v.Kind() != reflect.Pointer && reflect.PointerTo(v.Type()).Implements(creatorType) {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p.Interface().(ElementCreator), true
	}
	return nil, false
}

func valueType(v reflect.Value, fallback reflect.Type) reflect.Type {
	if v.IsValid() {
		return v.Type()
	}
	return fallback
}

func creatorFailed(t reflect.Type, err error) core.Element {
	return core.BuildFailed(&errors.BuildError{
		Type:       t.String(),
		Kind:       errors.KindCreator,
		Err:        err,
		StackTrace: errors.CaptureStack(),
	})
}
