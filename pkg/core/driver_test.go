package core

import (
	"slices"
	"testing"

	"github.com/go-drift/inspector/pkg/errors"
)

type recordingHandler struct {
	errors.LogHandler
	errs   []*errors.BindError
	panics []*errors.PanicError
	builds []*errors.BuildError
}

func (h *recordingHandler) HandleError(err *errors.BindError)       { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)      { h.panics = append(h.panics, err) }
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) { h.builds = append(h.builds, err) }

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestDriverOrder(t *testing.T) {
	var trace []string
	root := newTestElement("root", &trace)
	a := newTestElement("a", &trace)
	a1 := newTestElement("a1", &trace)
	b := newTestElement("b", &trace)
	SetChildren(root, a, b)
	AppendChild(a, a1)

	d := NewDriver(root)
	if err := d.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	want := []string{"root", "a", "a1", "b"}
	if !slices.Equal(trace, want) {
		t.Errorf("order = %v, want %v", trace, want)
	}
	if d.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", d.Frame())
	}
}

// growing rebuilds its children from n.
type growing struct {
	ElementBase
	n, built int
	trace    *[]string
}

func (g *growing) RebuildIfNeeded() bool {
	if g.built == g.n {
		return false
	}
	DetachChildren(g)
	for i := range g.n {
		AppendChild(g, newTestElement(string(rune('a'+i)), g.trace))
	}
	g.built = g.n
	return true
}

func TestDriverVisitsPostRebuildChildren(t *testing.T) {
	var trace []string
	g := &growing{n: 2, trace: &trace}
	d := NewDriver(g)
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(trace, []string{"a", "b"}) {
		t.Errorf("first tick visited %v", trace)
	}

	trace = nil
	g.n = 3
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(trace, []string{"a", "b", "c"}) {
		t.Errorf("second tick visited %v", trace)
	}
}

func TestDriverRejectsReentrantTick(t *testing.T) {
	root := newTestElement("root", nil)
	d := NewDriver(root)
	var inner error
	root.onSync = func() { inner = d.Tick() }
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(inner, ErrTickInProgress) {
		t.Errorf("nested Tick error = %v, want ErrTickInProgress", inner)
	}
}

func TestDriverRecoversPanics(t *testing.T) {
	h := captureErrors(t)
	root := newTestElement("root", nil)
	root.onSync = func() { panic("sync failed") }

	d := NewDriver(root)
	if err := d.Tick(); err == nil {
		t.Fatal("Tick should return an error after a panic")
	}
	if len(h.panics) != 1 || h.panics[0].Op != "core.Driver.Tick" {
		t.Errorf("panics = %+v", h.panics)
	}

	root.onSync = nil
	if err := d.Tick(); err != nil {
		t.Errorf("driver should recover for the next tick: %v", err)
	}
}

func TestDriverSkipsSecondVisit(t *testing.T) {
	h := captureErrors(t)
	var trace []string
	root := newTestElement("root", &trace)
	shared := newTestElement("shared", &trace)
	AppendChild(root, shared)
	// corrupt the tree on purpose
	root.children = append(root.children, shared)

	if err := NewDriver(root).Tick(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(trace, []string{"root", "shared"}) {
		t.Errorf("trace = %v", trace)
	}
	if len(h.errs) != 1 || !errors.Is(h.errs[0], ErrVisitedTwice) {
		t.Errorf("errs = %v", h.errs)
	}
}

func TestDriverClose(t *testing.T) {
	root := newTestElement("root", nil)
	d := NewDriver(root)
	d.Close()
	if !root.IsDetached() {
		t.Error("Close should detach the root")
	}
	if err := d.Tick(); !errors.Is(err, ErrDriverClosed) {
		t.Errorf("Tick after Close = %v", err)
	}
}

func TestDriverSetRoot(t *testing.T) {
	old := newTestElement("old", nil)
	d := NewDriver(old)
	next := newTestElement("next", nil)
	d.SetRoot(next)
	if !old.IsDetached() || d.Root() != Element(next) {
		t.Error("SetRoot should detach the previous root")
	}
}
