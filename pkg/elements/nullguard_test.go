package elements

import (
	"testing"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
)

type settings struct {
	Level int
}

func (s *settings) SetDefaults() { s.Level = 3 }

func shape(e core.Element) []string {
	var out []string
	core.Walk(e, func(e core.Element) bool {
		out = append(out, typeName(e))
		return true
	})
	return out
}

func typeName(e core.Element) string {
	switch e.(type) {
	case *NullGuard:
		return "guard"
	case *NullPlaceholder:
		return "placeholder"
	case *Text:
		return "text"
	case *Button:
		return "button"
	case *LabelElement:
		return "label"
	case *IntField:
		return "int"
	case *Column:
		return "column"
	}
	return "?"
}

func TestNullGuardRoundTrip(t *testing.T) {
	var s *settings
	ptr := binder.FromPointer(&s)
	label := NewLabel("Settings")
	g := NewNullGuard(label, ptr, func() core.Element {
		return NewColumn(label, NewIntField(nil, binder.Field(binder.Elem(ptr), "Level")))
	})
	d := core.NewDriver(g)

	absent := shape(g)
	if !g.IsNull() {
		t.Fatal("expected null")
	}

	if err := g.Instantiate(); err != nil {
		t.Fatal(err)
	}
	_ = d.Tick()
	if s == nil || s.Level != 3 {
		t.Fatalf("Instantiate should apply SetDefaults, got %+v", s)
	}
	present := shape(g)

	_ = g.Clear()
	_ = d.Tick()
	if got := shape(g); !equal(got, absent) {
		t.Errorf("cleared shape = %v, want %v", got, absent)
	}

	_ = g.Instantiate()
	_ = d.Tick()
	if got := shape(g); !equal(got, present) {
		t.Errorf("second instantiate shape = %v, want %v", got, present)
	}
	if label.IsDetached() {
		t.Error("label must survive rebuilds")
	}
}

func TestNullPlaceholderCreateButton(t *testing.T) {
	var s *settings
	ptr := binder.FromPointer(&s)
	g := NewNullGuard(nil, ptr, func() core.Element { return NewText("content") })
	p, ok := g.Child().(*NullPlaceholder)
	if !ok {
		t.Fatalf("child = %T", g.Child())
	}
	if !p.CreateButton().Click() || s == nil {
		t.Error("Create should instantiate the value")
	}
}

func TestNullGuardReadOnly(t *testing.T) {
	var s *settings
	g := NewNullGuard(nil, binder.ReadOnly(binder.FromPointer(&s)), func() core.Element { return NewText("x") })
	if err := g.Instantiate(); !errors.Is(err, errors.ErrReadOnly) {
		t.Errorf("Instantiate = %v", err)
	}
	p := g.Child().(*NullPlaceholder)
	if p.CreateButton().Interactable() {
		t.Error("Create should be disabled on read-only slots")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
