package ui_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/inspector/pkg/binder"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/errors"
	inspecttest "github.com/go-drift/inspector/pkg/testing"
	"github.com/go-drift/inspector/pkg/ui"
)

func TestRulesOrder(t *testing.T) {
	want := []string{
		"circular", "custom", "enum", "color", "gradient", "curve",
		"int", "uint", "float", "string", "bool", "interface",
		"creator-ref", "creator-value", "nullable", "list", "composite",
	}
	if diff := cmp.Diff(want, ui.Rules()); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}
}

type inner struct {
	X float64
	Y uint8
}

type leafy struct {
	A   int
	B   string
	In  inner
	P   *inner
	L   []inner
	Arr [2]bool
	M   map[string]int
}

func isLeaf(e core.Element) bool {
	switch e.(type) {
	case *elements.IntField, *elements.UIntField, *elements.FloatField,
		*elements.TextField, *elements.Toggle, *elements.Dropdown,
		*elements.IntSlider, *elements.UIntSlider, *elements.FloatSlider:
		return true
	}
	return false
}

func countLeaves(root core.Element) int {
	n := 0
	core.Walk(root, func(e core.Element) bool {
		if isLeaf(e) {
			n++
		}
		return true
	})
	return n
}

func TestLeafCountMatchesReachableSlots(t *testing.T) {
	tests := []struct {
		name string
		v    *leafy
		want int
	}{
		{"zero", &leafy{}, 6},
		{"pointer set", &leafy{P: &inner{}}, 8},
		{"list items", &leafy{L: make([]inner, 3)}, 12},
		{"everything", &leafy{P: &inner{}, L: make([]inner, 2), M: map[string]int{"a": 1}}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ui.Build(tt.v)
			defer root.Detach()
			if got := countLeaves(root); got != tt.want {
				t.Errorf("expected %d leaves, got %d", tt.want, got)
			}
		})
	}
}

type node struct {
	Name        string
	Left, Right *node
}

func circularLeaves(root core.Element) []string {
	var msgs []string
	core.Walk(root, func(e core.Element) bool {
		if h, ok := e.(*elements.HelpBox); ok && strings.HasSuffix(h.Message, "Circular reference detected.") {
			msgs = append(msgs, h.Message)
		}
		return true
	})
	return msgs
}

func TestCyclesProduceOneLeafPerReentry(t *testing.T) {
	self := &node{Name: "self"}
	self.Left = self

	a, b := &node{Name: "a"}, &node{Name: "b"}
	a.Left, b.Left = b, a

	r, c := &node{Name: "r"}, &node{Name: "c"}
	r.Left, r.Right = r, c
	c.Left, c.Right = r, c

	shared := &node{Name: "shared"}
	diamond := &node{Name: "diamond", Left: shared, Right: shared}

	tests := []struct {
		name string
		root *node
		want int
	}{
		{"self", self, 1},
		{"two node ring", a, 1},
		{"three re-entries", r, 3},
		{"shared but acyclic", diamond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ui.Build(tt.root)
			defer root.Detach()
			if got := circularLeaves(root); len(got) != tt.want {
				t.Errorf("expected %d circular leaves, got %d: %v", tt.want, len(got), got)
			}
		})
	}
}

type link struct {
	Name string
	Next *link
}

func TestCustomFactoryCatchesFirstReentry(t *testing.T) {
	ui.RegisterCreationFuncFor[link](func(label *elements.LabelElement, b binder.Binder) core.Element {
		return ui.Fold("link",
			ui.Field("Name", binder.Field(b, "Name")),
			ui.Field("Next", binder.Field(b, "Next")),
		)
	})
	t.Cleanup(func() { ui.UnregisterCreationFunc(reflect.TypeFor[link]()) })

	self := &link{Name: "self"}
	self.Next = self

	a, b := &link{Name: "a"}, &link{Name: "b"}
	a.Next, b.Next = b, a

	tests := []struct {
		name  string
		root  *link
		names int
	}{
		{"self", self, 1},
		{"two node ring", a, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ui.Build(tt.root)
			defer root.Detach()

			if got := len(inspecttest.ByLabel("Name").Evaluate(root)); got != tt.names {
				t.Errorf("expected %d name fields, got %d:\n%s", tt.names, got, inspecttest.Capture(root))
			}
			leaves := circularLeaves(root)
			if len(leaves) != 1 || leaves[0] != "[*ui_test.link] Circular reference detected." {
				t.Errorf("expected one circular leaf at the first re-entry, got %v", leaves)
			}
		})
	}
}

func TestSelfReferenceScenario(t *testing.T) {
	tester := inspecttest.NewTesterWithT(t)
	n := &node{Name: "root"}
	n.Right = n

	if err := tester.Build(n); err != nil {
		t.Fatal(err)
	}
	leaves := circularLeaves(tester.Root())
	if len(leaves) != 1 {
		t.Fatalf("expected a single circular leaf, got %v", leaves)
	}
	if leaves[0] != "[*ui_test.node] Circular reference detected." {
		t.Errorf("unexpected message %q", leaves[0])
	}

	right := tester.Find(inspecttest.ByLabel("Right")).First()
	if right.Interactable() {
		t.Error("circular group should not be interactable")
	}
	if _, ok := right.(*elements.CompositeField); !ok {
		t.Errorf("expected the Right slot to be the circular group, got %T", right)
	}
	if err := tester.PumpN(3); err != nil {
		t.Fatal(err)
	}
}

type quality int

const (
	qualityLow quality = iota
	qualityHigh
)

func (q quality) String() string {
	if q == qualityHigh {
		return "High"
	}
	return "Low"
}

func (quality) EnumValues() []any { return []any{qualityLow, qualityHigh} }

type tagged struct {
	Quality quality
	Max     float64
	Level   float64 `inspect:"range=0:Max"`
	Steps   int     `inspect:"range=1:10"`
	Notes   string  `inspect:"multiline"`
	ID      int     `inspect:"readonly"`
	Speed   float64 `inspect:"label=Top Speed"`
	Secret  string  `inspect:"-"`
}

func TestMemberTags(t *testing.T) {
	tester := inspecttest.NewTesterWithT(t)
	v := &tagged{Quality: qualityHigh, Max: 5, Level: 2, Steps: 3, ID: 7}
	tester.Build(v)

	d, ok := tester.Find(inspecttest.ByLabel("Quality")).First().(*elements.Dropdown)
	if !ok {
		t.Fatal("expected Quality to be a dropdown")
	}
	if d.DisplayValue() != "High" {
		t.Errorf("expected High, got %q", d.DisplayValue())
	}
	if err := d.SetValueFromView(0); err != nil || v.Quality != qualityLow {
		t.Errorf("dropdown write failed: %v, %v", err, v.Quality)
	}

	level, ok := tester.Find(inspecttest.ByLabel("Level")).First().(*elements.FloatSlider)
	if !ok {
		t.Fatal("expected Level to be a float slider")
	}
	if level.Max() != 5 {
		t.Errorf("expected max 5, got %v", level.Max())
	}
	v.Max = 8
	if level.Max() != 8 {
		t.Errorf("expected computed max to follow Max, got %v", level.Max())
	}

	steps, ok := tester.Find(inspecttest.ByLabel("Steps")).First().(*elements.IntSlider)
	if !ok {
		t.Fatal("expected Steps to be an int slider")
	}
	if steps.Min() != 1 || steps.Max() != 10 {
		t.Errorf("expected [1, 10], got [%d, %d]", steps.Min(), steps.Max())
	}

	notes := tester.Find(inspecttest.ByLabel("Notes")).First().(*elements.TextField)
	if !notes.IsMultiLine() {
		t.Error("expected Notes to be multi-line")
	}

	id := tester.Find(inspecttest.ByLabel("ID")).First().(*elements.IntField)
	if id.Interactable() {
		t.Error("readonly member should not be interactable")
	}
	if err := id.SetValueFromView(9); !errors.Is(err, errors.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}

	if !tester.Find(inspecttest.ByLabel("Top Speed")).Exists() {
		t.Error("expected the label override")
	}
	if tester.Find(inspecttest.ByLabel("Secret")).Exists() {
		t.Error("excluded member should not be built")
	}
}

type vec3 struct{ X, Y, Z float64 }

type grouped struct {
	Pos  vec3
	Info struct {
		Name string
	}
}

type counters struct {
	Hits uint64 `inspect:"range=0:2e19"`
}

func TestRangedUnsignedUsesUnsignedSlider(t *testing.T) {
	tester := inspecttest.NewTesterWithT(t)
	c := &counters{Hits: 1<<63 + 5}
	if err := tester.Build(c); err != nil {
		t.Fatal(err)
	}

	hits, ok := tester.Find(inspecttest.ByLabel("Hits")).First().(*elements.UIntSlider)
	if !ok {
		t.Fatalf("expected an unsigned slider, got %T", tester.Find(inspecttest.ByLabel("Hits")).First())
	}
	if err := inspecttest.Enter(tester, inspecttest.ByLabel("Hits"), hits.Value().Value()+1); err != nil {
		t.Fatal(err)
	}
	if c.Hits != 1<<63+6 {
		t.Errorf("Hits = %d, want the edited value", c.Hits)
	}
}

func TestGrouping(t *testing.T) {
	tests := []struct {
		name  string
		build func() core.Element
		want  reflect.Type
	}{
		{"single line", func() core.Element {
			return ui.Field("Pos", binder.FromPointer(&vec3{}))
		}, reflect.TypeFor[*elements.CompositeField]()},
		{"labelled", func() core.Element {
			return ui.Field("Info", binder.FromPointer(&grouped{}))
		}, reflect.TypeFor[*elements.Fold]()},
		{"unlabelled", func() core.Element {
			return ui.BuildBinder(binder.FromPointer(&grouped{}))
		}, reflect.TypeFor[*elements.Column]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reflect.TypeOf(tt.build()); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

type dynamicHolder struct {
	Any any
}

func TestInterfaceSlot(t *testing.T) {
	tester := inspecttest.NewTesterWithT(t)
	h := &dynamicHolder{Any: 3}
	tester.Build(h)

	if got := tester.Find(inspecttest.ByLabel("Any")).Value(); got != "3" {
		t.Errorf("expected 3, got %q", got)
	}
	if err := inspecttest.Enter(tester, inspecttest.ByLabel("Any"), 5); err != nil {
		t.Fatal(err)
	}
	if h.Any != 5 {
		t.Errorf("expected write through the interface, got %v", h.Any)
	}

	dyn := tester.Find(inspecttest.ByType[*core.DynamicElement]()).First().(*core.DynamicElement)
	h.Any = 6
	tester.Pump()
	if dyn.Rebuilds() != 0 {
		t.Error("same dynamic type should not rebuild")
	}

	h.Any = "six"
	tester.Pump()
	if dyn.Rebuilds() != 1 {
		t.Fatalf("expected one rebuild, got %d", dyn.Rebuilds())
	}
	if _, ok := tester.Find(inspecttest.ByLabel("Any")).First().(*elements.TextField); !ok {
		t.Error("expected a text field after the type changed")
	}

	h.Any = nil
	tester.Pump()
	null := tester.Find(inspecttest.ByLabel("Any")).First()
	if null.Interactable() || inspecttest.Capture(null).Root.Value != "null" {
		t.Error("expected a read-only null leaf")
	}
}
