package elements

import (
	"slices"
	"testing"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
)

type item struct {
	N int
}

type tracked struct {
	built    int
	detached []int
}

func (tr *tracked) builder() ItemBuilder {
	return func(i int, b binder.Binder) core.Element {
		tr.built++
		el := NewIntField(nil, binder.Field(b, "N"))
		el.OnDetach(func() { tr.detached = append(tr.detached, i) })
		return el
	}
}

func TestListViewGrowAndShrink(t *testing.T) {
	items := []item{{1}, {2}}
	tr := &tracked{}
	l := NewListView(NewLabel("Items"), binder.FromPointer(&items), tr.builder(), ListOption{})
	if l.Len() != 2 || len(l.Items()) != 2 {
		t.Fatalf("Len = %d", l.Len())
	}
	first := l.Items()[0]

	items = append(items, item{3}, item{4}, item{5})
	if !l.RebuildIfNeeded() {
		t.Fatal("growth should rebuild")
	}
	if tr.built != 5 || len(l.Items()) != 5 {
		t.Errorf("built=%d items=%d, want 3 new subtrees", tr.built, len(l.Items()))
	}
	if l.Items()[0] != first || len(tr.detached) != 0 {
		t.Error("existing items must be left untouched")
	}

	items = items[:1]
	l.RebuildIfNeeded()
	if !slices.Equal(tr.detached, []int{4, 3, 2, 1}) {
		t.Errorf("detached = %v, want trailing items last first", tr.detached)
	}
	if l.Items()[0] != first || l.Label().Parent() != core.Element(l) {
		t.Error("shrinking must keep the first item and the label")
	}
	if l.RebuildIfNeeded() {
		t.Error("unchanged length should not rebuild")
	}
}

func TestListViewNilAndEmpty(t *testing.T) {
	items := []item{{1}, {2}}
	l := NewListView(nil, binder.FromPointer(&items), (&tracked{}).builder(), ListOption{})

	items = nil
	l.RebuildIfNeeded()
	if len(l.Items()) != 0 {
		t.Fatalf("nil slice should show no items, got %d", len(l.Items()))
	}
	items = []item{}
	l.RebuildIfNeeded()
	if len(l.Items()) != 0 {
		t.Error("empty slice should show no items")
	}

	if err := l.Add(); err != nil {
		t.Fatalf("Add on empty: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("len = %d after Add", len(items))
	}
}

func TestListViewAffordances(t *testing.T) {
	items := []item{{1}, {2}, {3}}
	l := NewListView(nil, binder.FromPointer(&items), (&tracked{}).builder(), ListOption{Reorderable: true})

	if err := l.Move(0, 2); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(items, []item{{2}, {3}, {1}}) {
		t.Errorf("after Move = %v", items)
	}
	if err := l.RemoveAt(1); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(items, []item{{2}, {1}}) {
		t.Errorf("after RemoveAt = %v", items)
	}
	if err := l.RemoveLast(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(items, []item{{2}}) {
		t.Errorf("after RemoveLast = %v", items)
	}
	if err := l.RemoveAt(5); !errors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("RemoveAt(5) = %v", err)
	}
}

func TestListViewRestrictions(t *testing.T) {
	arr := [2]item{}
	fixed := NewListView(nil, binder.FromPointer(&arr), (&tracked{}).builder(), ListOption{})
	if err := fixed.Add(); !errors.Is(err, ErrFixedSize) {
		t.Errorf("Add on array = %v", err)
	}
	if err := fixed.Move(0, 1); !errors.Is(err, ErrNotReorderable) {
		t.Errorf("Move without reordering = %v", err)
	}

	items := []item{{1}}
	ro := NewListView(nil, binder.ReadOnly(binder.FromPointer(&items)), (&tracked{}).builder(), ListOption{Reorderable: true})
	for name, op := range map[string]func() error{
		"Add":        ro.Add,
		"RemoveLast": ro.RemoveLast,
		"Move":       func() error { return ro.Move(0, 0) },
	} {
		if err := op(); !errors.Is(err, errors.ErrReadOnly) {
			t.Errorf("%s on read-only list = %v", name, err)
		}
	}
}

func TestListViewSyncedByDriver(t *testing.T) {
	items := []item{{1}}
	l := NewListView(nil, binder.FromPointer(&items), (&tracked{}).builder(), ListOption{})
	d := core.NewDriver(l)

	items = append(items, item{7})
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	f := l.Items()[1].(*IntField)
	if f.Value().Value() != 7 {
		t.Errorf("new item value = %d", f.Value().Value())
	}
}
