package schema

import "reflect"

var defaulterType = reflect.TypeFor[Defaulter]()

// NewDefault returns a fresh default value of type t. Pointer types get a
// newly allocated pointee; slices and maps start empty rather than nil.
// SetDefaults is applied when the allocated type implements Defaulter.
func NewDefault(t reflect.Type) reflect.Value {
	if t.Kind() == reflect.Pointer {
		p := reflect.New(t.Elem())
		initDefault(p)
		return p
	}
	p := reflect.New(t)
	initDefault(p)
	return p.Elem()
}

func initDefault(p reflect.Value) {
	switch e := p.Elem(); e.Kind() {
	case reflect.Slice:
		e.Set(reflect.MakeSlice(e.Type(), 0, 0))
	case reflect.Map:
		e.Set(reflect.MakeMap(e.Type()))
	}
	if p.Type().Implements(defaulterType) {
		p.Interface().(Defaulter).SetDefaults()
	}
}
