package schema

import (
	"fmt"
	"reflect"
	"sync"
)

// Enumerator is implemented by named types with a closed, ordered set of
// values. The method is called on the zero value.
//
//	type Mode int
//
//	const (
//	    ModeOff Mode = iota
//	    ModeOn
//	)
//
//	func (Mode) EnumValues() []any { return []any{ModeOff, ModeOn} }
type Enumerator interface {
	EnumValues() []any
}

// Enum describes the ordered values of an enum type. Positions, not the
// underlying values, index the dropdown.
type Enum struct {
	Type   reflect.Type
	Names  []string
	Values []reflect.Value
}

var (
	enumMu         sync.RWMutex
	enumRegistry   = map[reflect.Type]*Enum{}
	enumerableType = reflect.TypeFor[Enumerator]()
)

// RegisterEnum declares T as an enum with the given ordered values.
// Names come from fmt.Sprint, so a String method is honoured.
func RegisterEnum[T comparable](values ...T) {
	t := reflect.TypeFor[T]()
	e := &Enum{Type: t}
	for _, v := range values {
		e.Names = append(e.Names, fmt.Sprint(v))
		e.Values = append(e.Values, reflect.ValueOf(v))
	}
	enumMu.Lock()
	defer enumMu.Unlock()
	enumRegistry[t] = e
}

// UnregisterEnum removes a registration made by RegisterEnum.
func UnregisterEnum(t reflect.Type) {
	enumMu.Lock()
	defer enumMu.Unlock()
	delete(enumRegistry, t)
}

// IsEnum reports whether t is an enum type.
func IsEnum(t reflect.Type) bool {
	_, ok := EnumOf(t)
	return ok
}

// EnumOf returns the enum description for t.
func EnumOf(t reflect.Type) (*Enum, bool) {
	enumMu.RLock()
	e, ok := enumRegistry[t]
	enumMu.RUnlock()
	if ok {
		return e, true
	}
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface || !t.Implements(enumerableType) {
		return nil, false
	}

	e = &Enum{Type: t}
	for _, v := range reflect.Zero(t).Interface().(Enumerator).EnumValues() {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || !rv.Type().ConvertibleTo(t) {
			continue
		}
		rv = rv.Convert(t)
		e.Names = append(e.Names, fmt.Sprint(rv.Interface()))
		e.Values = append(e.Values, rv)
	}

	enumMu.Lock()
	defer enumMu.Unlock()
	enumRegistry[t] = e
	return e, true
}

// IndexOf returns the position of v, or -1.
func (e *Enum) IndexOf(v reflect.Value) int {
	if !v.IsValid() {
		return -1
	}
	x := v.Interface()
	for i, ev := range e.Values {
		if ev.Interface() == x {
			return i
		}
	}
	return -1
}
