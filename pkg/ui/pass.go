package ui

import (
	"reflect"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
)

// Build-pass state. Like the rest of the element tree it is only touched
// from the UI goroutine.
var pass struct {
	history *binder.History
	// scope holds the types whose custom factory is running. A nil entry
	// marks member expansion and re-enables every factory below it.
	scope []reflect.Type
	// delegated is the slot a running custom factory may hand back to
	// FieldWith without tripping the cycle check.
	delegated *delegation
}

type delegation struct {
	b     binder.Binder
	outer buildState
}

// buildState is what a deferred build (dynamic rebuild, list growth,
// editor window) needs to resume the pass it was created in.
type buildState struct {
	history []binder.ID
	scope   []reflect.Type
}

func history() *binder.History {
	if pass.history == nil {
		pass.history = binder.NewHistory(nil)
	}
	return pass.history
}

func capture() buildState {
	return buildState{
		history: history().Snapshot(),
		scope:   append([]reflect.Type(nil), pass.scope...),
	}
}

// resume runs build with the pass state replaced by s and restores the
// current state afterwards, also when build panics.
func resume(s buildState, build func() core.Element) core.Element {
	prevHistory, prevScope, prevDelegated := pass.history, pass.scope, pass.delegated
	defer func() {
		pass.history, pass.scope, pass.delegated = prevHistory, prevScope, prevDelegated
	}()
	pass.history = binder.NewHistory(s.history)
	pass.delegated = nil
	pass.scope = append([]reflect.Type(nil), s.scope...)
	return build()
}

// pushScope suspends the custom factory of t until the returned func runs.
// A nil t is the member expansion marker.
func pushScope(t reflect.Type) (pop func()) {
	n := len(pass.scope)
	pass.scope = append(pass.scope, t)
	return func() { pass.scope = pass.scope[:n] }
}

func suspended(t reflect.Type) bool {
	n := len(pass.scope)
	return n > 0 && pass.scope[n-1] == t
}

// handOff marks b as handed to a custom factory until the returned func
// runs. outer is the state captured before b was entered.
func handOff(b binder.Binder, outer buildState) (done func()) {
	prev := pass.delegated
	pass.delegated = &delegation{b: b, outer: outer}
	return func() { pass.delegated = prev }
}

// takeHandOff reports whether b is the slot handed to the running
// factory. The hand-back is consumed, so only the first call matches.
func takeHandOff(b binder.Binder) (buildState, bool) {
	d := pass.delegated
	if d == nil || !sameBinder(d.b, b) {
		return buildState{}, false
	}
	pass.delegated = nil
	return d.outer, true
}

func sameBinder(a, b binder.Binder) bool {
	t := reflect.TypeOf(a)
	return t == reflect.TypeOf(b) && t.Comparable() && a == b
}
