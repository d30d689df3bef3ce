package ui

import (
	"reflect"
	"sync"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
)

// CreationFunc builds the subtree for a slot of a registered type.
// Calling FieldWith on the same binder from inside the func falls through
// to the default rules. Slots the func binds itself are checked for cycles
// against b.
type CreationFunc func(label *elements.LabelElement, b binder.Binder) core.Element

var creation = struct {
	sync.RWMutex
	funcs map[reflect.Type]CreationFunc
}{funcs: map[reflect.Type]CreationFunc{}}

// RegisterCreationFunc installs fn for slots declared as t, replacing any
// previous registration.
func RegisterCreationFunc(t reflect.Type, fn CreationFunc) {
	creation.Lock()
	defer creation.Unlock()
	if fn == nil {
		delete(creation.funcs, t)
		return
	}
	creation.funcs[t] = fn
}

// RegisterCreationFuncFor is RegisterCreationFunc for the type T.
func RegisterCreationFuncFor[T any](fn CreationFunc) {
	RegisterCreationFunc(reflect.TypeFor[T](), fn)
}

// UnregisterCreationFunc removes the registration for t.
func UnregisterCreationFunc(t reflect.Type) {
	RegisterCreationFunc(t, nil)
}

// LookupCreationFunc returns the func registered for t.
func LookupCreationFunc(t reflect.Type) (CreationFunc, bool) {
	creation.RLock()
	defer creation.RUnlock()
	fn, ok := creation.funcs[t]
	return fn, ok
}
