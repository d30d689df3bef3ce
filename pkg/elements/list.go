package elements

import (
	"reflect"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/schema"
)

var (
	// ErrFixedSize is returned when resizing an array-backed list.
	ErrFixedSize = errors.New("list has a fixed size")
	// ErrNotReorderable is returned by Move on lists without reordering.
	ErrNotReorderable = errors.New("list is not reorderable")
)

// ItemBuilder builds the subtree of the item at index, bound through item.
type ItemBuilder func(index int, item binder.Binder) core.Element

// ListView shows one subtree per sequence item. Each tick it compares the
// sequence length with the last observed length and appends or detaches
// trailing items; items in the unchanged range are kept.
//
// A nil slice behaves like an empty one.
type ListView struct {
	core.ElementBase
	label       *LabelElement
	b           binder.Binder
	build       ItemBuilder
	length      int
	reorderable bool
	fixed       bool
}

// ListOption configures a ListView.
type ListOption struct {
	Reorderable bool
	FixedSize   bool
}

// NewListView builds a list over the slice or array held by b.
func NewListView(label *LabelElement, b binder.Binder, build ItemBuilder, opt ListOption) *ListView {
	l := &ListView{
		label:       label,
		b:           b,
		build:       build,
		reorderable: opt.Reorderable,
		fixed:       opt.FixedSize || b.ValueType().Kind() == reflect.Array,
	}
	attachLabel(l, label)
	if !b.CanSet() {
		l.SetInteractable(false)
	}
	l.grow(binder.Len(b))
	return l
}

// Label returns the list label, or nil.
func (l *ListView) Label() *LabelElement { return l.label }

// Len returns the number of item subtrees.
func (l *ListView) Len() int { return l.length }

// Items returns the item subtrees in index order.
func (l *ListView) Items() []core.Element { return withoutLabel(l.Children(), l.label) }

// Reorderable reports whether Move is allowed.
func (l *ListView) Reorderable() bool { return l.reorderable && !l.fixed }

// FixedSize reports whether Add and Remove are disabled.
func (l *ListView) FixedSize() bool { return l.fixed }

// RebuildIfNeeded reconciles item subtrees with the current length.
func (l *ListView) RebuildIfNeeded() bool {
	n := binder.Len(l.b)
	switch {
	case n > l.length:
		l.grow(n)
	case n < l.length:
		offset := len(l.Children()) - l.length
		core.RemoveChildrenFrom(l, offset+n)
		l.length = n
	default:
		return false
	}
	return true
}

func (l *ListView) grow(n int) {
	for i := l.length; i < n; i++ {
		item := binder.Index(l.b, i)
		core.AppendChild(l, core.SafeBuild(item.ValueType(), func() core.Element {
			return l.build(i, item)
		}))
	}
	l.length = n
}

func (l *ListView) checkResize() error {
	if !l.b.CanSet() {
		return errors.ErrReadOnly
	}
	if l.fixed {
		return ErrFixedSize
	}
	return nil
}

// Add appends a default item.
func (l *ListView) Add() error {
	if err := l.checkResize(); err != nil {
		return err
	}
	seq := l.b.Get()
	item := schema.NewDefault(seq.Type().Elem())
	return l.b.Set(reflect.Append(seq, item))
}

// RemoveAt deletes the item at i.
func (l *ListView) RemoveAt(i int) error {
	if err := l.checkResize(); err != nil {
		return err
	}
	seq := l.b.Get()
	if i < 0 || i >= seq.Len() {
		return errors.ErrOutOfRange
	}
	out := reflect.MakeSlice(seq.Type(), 0, seq.Len()-1)
	out = reflect.AppendSlice(out, seq.Slice(0, i))
	out = reflect.AppendSlice(out, seq.Slice(i+1, seq.Len()))
	return l.b.Set(out)
}

// RemoveLast deletes the last item, if any.
func (l *ListView) RemoveLast() error {
	if err := l.checkResize(); err != nil {
		return err
	}
	n := binder.Len(l.b)
	if n == 0 {
		return nil
	}
	return l.RemoveAt(n - 1)
}

// Move shifts the item at from to position to.
func (l *ListView) Move(from, to int) error {
	if !l.b.CanSet() {
		return errors.ErrReadOnly
	}
	if !l.reorderable {
		return ErrNotReorderable
	}
	seq := l.b.Get()
	n := seq.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return errors.ErrOutOfRange
	}
	if from == to {
		return nil
	}
	out := reflect.New(seq.Type()).Elem()
	if seq.Kind() == reflect.Slice {
		out.Set(reflect.MakeSlice(seq.Type(), n, n))
	}
	moved := seq.Index(from)
	j := 0
	for i := range n {
		if i == from {
			continue
		}
		if j == to {
			j++
		}
		out.Index(j).Set(seq.Index(i))
		j++
	}
	out.Index(to).Set(moved)
	return l.b.Set(out)
}
