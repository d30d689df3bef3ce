// Package ui builds element trees for Go values.
//
// FieldWith looks at the declared type of a binder and picks the first
// matching rule:
//
//	circular       the slot refers back to an object being built
//	custom         a CreationFunc registered for the type
//	enum           a dropdown over the enum's values
//	color ...      preview plus a lazily built editor window
//	int ... bool   leaf fields and, with range=min:max, sliders
//	interface      rebuilt when the dynamic value changes
//	creator-ref    pointers to an ElementCreator, rebuilt on reassignment
//	creator-value  values whose type implements ElementCreator
//	nullable       pointers, guarded by a placeholder while nil
//	list           slices and arrays
//	composite      one subtree per struct member
//
// Members are read from schema.For, so `inspect` struct tags tune the
// result. Elements are kept current by a core.Driver; structural nodes
// rebuild only the parts of the tree whose shape changed.
//
// A build pass and every later Tick must run on the same goroutine.
package ui
