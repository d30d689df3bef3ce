package core

import (
	"reflect"
)

// DynamicElement rebuilds its single child whenever a fingerprint of the
// bound data changes, e.g. the identity of a referenced object. The old
// subtree is detached before the new one is built.
type DynamicElement struct {
	ElementBase
	fingerprint func() any
	build       func() Element
	last        any
	label       Element
	typ         reflect.Type
	rebuilds    int
}

// NewDynamicElement builds the initial child immediately.
func NewDynamicElement(fingerprint func() any, build func() Element) *DynamicElement {
	d := &DynamicElement{fingerprint: fingerprint, build: build}
	d.last = fingerprint()
	d.buildChild()
	return d
}

// Preserve marks label as shared across rebuilds. It is unlinked from the
// old subtree before that subtree is detached, so the build func can
// attach it again.
func (d *DynamicElement) Preserve(label Element) *DynamicElement {
	d.label = label
	return d
}

// SetType records the bound type for build diagnostics.
func (d *DynamicElement) SetType(t reflect.Type) *DynamicElement {
	d.typ = t
	return d
}

// Rebuilds returns how many times the child was rebuilt after the initial
// build.
func (d *DynamicElement) Rebuilds() int { return d.rebuilds }

// Child returns the current child, or nil.
func (d *DynamicElement) Child() Element {
	if len(d.children) == 0 {
		return nil
	}
	return d.children[0]
}

func (d *DynamicElement) RebuildIfNeeded() bool {
	fp := d.fingerprint()
	if SameFingerprint(fp, d.last) {
		return false
	}
	d.last = fp
	if d.label != nil {
		Orphan(d.label)
	}
	DetachChildren(d)
	d.buildChild()
	d.rebuilds++
	return true
}

func (d *DynamicElement) buildChild() {
	child := SafeBuild(d.typ, d.build)
	if child == nil {
		return
	}
	if child.Parent() != nil {
		Orphan(child)
	}
	AppendChild(d, child)
}

// SameFingerprint compares two fingerprints, falling back to deep equality
// for types that are not comparable.
func SameFingerprint(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
