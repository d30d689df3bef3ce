package testing

import (
	"testing"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
)

type profile struct {
	Name  string
	Age   int
	Owner *settings
}

func TestByType(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{Name: "ada", Age: 36})

	result := tester.Find(ByType[*elements.IntField]())
	if !result.Exists() {
		t.Fatal("expected to find an IntField")
	}
	if got := result.Value(); got != "36" {
		t.Errorf("expected value '36', got %q", got)
	}
	if tester.Find(ByType[*elements.Toggle]()).Exists() {
		t.Error("should not find a Toggle")
	}
}

func TestByLabel(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{Name: "ada"})

	field, ok := tester.Find(ByLabel("Name")).First().(*elements.TextField)
	if !ok {
		t.Fatalf("expected Name to be a TextField, got %T", tester.Find(ByLabel("Name")).First())
	}
	if field.Value().Value() != "ada" {
		t.Errorf("expected 'ada', got %q", field.Value().Value())
	}
	if tester.Find(ByLabel("Missing")).Exists() {
		t.Error("should not find label 'Missing'")
	}
}

func TestByText(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{})

	if !tester.Find(ByText("null")).Exists() {
		t.Error("expected the nil Owner to show 'null'")
	}
	if !tester.Find(ByText("Create")).Exists() {
		t.Error("expected a Create button")
	}
}

func TestByTextContaining(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{Name: "grace hopper"})

	if !tester.Find(ByTextContaining("hopper")).Exists() {
		t.Error("expected to find text containing 'hopper'")
	}
	if tester.Find(ByTextContaining("lovelace")).Exists() {
		t.Error("should not find text containing 'lovelace'")
	}
}

func TestByPredicate(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{})

	labels := tester.Find(ByPredicate(func(e core.Element) bool {
		_, ok := e.(*elements.LabelElement)
		return ok
	}))
	if labels.Count() != 3 {
		t.Errorf("expected 3 labels (Name, Age, Owner), got %d", labels.Count())
	}
}

func TestDescendantAndAncestor(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{Owner: &settings{Volume: 4}})

	volume := tester.Find(Descendant(ByLabel("Owner"), ByLabel("Volume")))
	if volume.Count() != 1 {
		t.Fatalf("expected one Volume under Owner, got %d", volume.Count())
	}
	if tester.Find(Descendant(ByLabel("Owner"), ByLabel("Age"))).Exists() {
		t.Error("Age is not under Owner")
	}

	// the null guard and the fold inside it both carry the Owner label
	owners := tester.Find(Ancestor(ByLabel("Volume"), ByLabel("Owner")))
	if owners.Count() != 2 {
		t.Errorf("expected 2 Owner ancestors of Volume, got %d", owners.Count())
	}
}

func TestFinderResultPanicsOnEmpty(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Build(&profile{})
	result := tester.Find(ByLabel("Missing"))

	if result.FirstOrNil() != nil {
		t.Error("expected FirstOrNil to return nil")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected First to panic")
		}
	}()
	result.First()
}
