package testing

import (
	"testing"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/errors"
)

type settings struct {
	Name   string
	Volume int
	Muted  bool
}

func TestBuildMountsTree(t *testing.T) {
	tester := NewTesterWithT(t)

	if err := tester.Build(&settings{Name: "main"}); err != nil {
		t.Fatal(err)
	}
	if tester.Root() == nil {
		t.Fatal("expected root element after Build")
	}
	if tester.Driver().Frame() != 1 {
		t.Errorf("expected one tick after Build, got %d", tester.Driver().Frame())
	}
}

func TestMountDetachesPrevious(t *testing.T) {
	tester := NewTesterWithT(t)

	tester.Build(&settings{})
	first := tester.Root()

	tester.Mount(elements.NewText("second"))
	if !first.IsDetached() {
		t.Error("expected previous root to be detached")
	}
	if tester.Root() == first {
		t.Error("expected a new root")
	}
}

func TestPumpSyncsValues(t *testing.T) {
	tester := NewTesterWithT(t)
	s := &settings{Volume: 1}
	tester.Build(s)

	s.Volume = 9
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	if got := tester.Find(ByLabel("Volume")).Value(); got != "9" {
		t.Errorf("expected synced volume 9, got %q", got)
	}
}

func TestPumpN(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&settings{})

	if err := tester.PumpN(3); err != nil {
		t.Fatal(err)
	}
	if got := tester.Driver().Frame(); got != 4 {
		t.Errorf("expected 4 frames, got %d", got)
	}
}

func TestCleanupRestoresHandler(t *testing.T) {
	prev := errors.Handler()
	tester := NewTester()
	if errors.Handler() == prev {
		t.Fatal("expected tester to install its recorder")
	}
	tester.Cleanup()
	if errors.Handler() != prev {
		t.Error("expected Cleanup to restore the previous handler")
	}
	if err := tester.Pump(); err != core.ErrDriverClosed {
		t.Errorf("expected ErrDriverClosed after Cleanup, got %v", err)
	}
}

func TestRecorderCollectsReports(t *testing.T) {
	tester := NewTesterWithT(t)
	errors.Report(&errors.BindError{Op: "test", Err: errors.ErrReadOnly})

	if got := tester.Errors().Len(); got != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", got)
	}
	if tester.Errors().Binds[0].Op != "test" {
		t.Errorf("unexpected op %q", tester.Errors().Binds[0].Op)
	}
}
