package testing

import (
	"testing"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/errors"
)

func TestTapButton(t *testing.T) {
	tester := NewTesterWithT(t)
	clicks := 0
	tester.Mount(elements.NewButton("Go", func() { clicks++ }))

	if err := tester.Tap(ByText("Go")); err != nil {
		t.Fatal(err)
	}
	if clicks != 1 {
		t.Errorf("expected 1 click, got %d", clicks)
	}
}

func TestTapDisabledButton(t *testing.T) {
	tester := NewTesterWithT(t)
	b := elements.NewButton("Go", func() { t.Error("disabled button clicked") })
	b.SetEnabled(false)
	tester.Mount(b)

	if err := tester.Tap(ByText("Go")); err == nil {
		t.Error("expected an error tapping a disabled button")
	}
}

func TestTapToggle(t *testing.T) {
	tester := NewTesterWithT(t)
	s := &settings{}
	tester.Build(s)

	if err := tester.Tap(ByLabel("Muted")); err != nil {
		t.Fatal(err)
	}
	if !s.Muted {
		t.Error("expected tap to flip Muted")
	}
}

func TestTapUnsupported(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Mount(elements.NewText("plain"))

	if err := tester.Tap(ByText("plain")); err == nil {
		t.Error("expected an error tapping text")
	}
	if err := tester.Tap(ByText("missing")); err == nil {
		t.Error("expected an error when nothing matches")
	}
}

func TestEnter(t *testing.T) {
	tester := NewTesterWithT(t)
	s := &settings{}
	tester.Build(s)

	if err := Enter(tester, ByLabel("Volume"), 11); err != nil {
		t.Fatal(err)
	}
	if err := tester.EnterText(ByLabel("Name"), "aux"); err != nil {
		t.Fatal(err)
	}
	if s.Volume != 11 || s.Name != "aux" {
		t.Errorf("unexpected settings %+v", *s)
	}

	if err := Enter(tester, ByLabel("Volume"), "eleven"); err == nil {
		t.Error("expected a type mismatch error")
	}
}

func TestEnterReadOnly(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Mount(elements.NewConstField[int](elements.NewLabel("Fixed"), 1))

	err := Enter(tester, ByLabel("Fixed"), 2)
	if !errors.Is(err, errors.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestTapLauncherOpensWindow(t *testing.T) {
	tester := NewTesterWithT(t)
	l := elements.NewWindowLauncher("Edit", func() core.Element { return elements.NewText("body") })
	tester.Mount(l)

	if err := tester.Tap(ByType[*elements.WindowLauncher]()); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
	if !tester.Find(ByText("body")).Exists() {
		t.Error("expected the window content after opening")
	}
}
