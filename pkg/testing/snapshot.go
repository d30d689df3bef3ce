package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
)

// UpdateEnv names the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "INSPECTOR_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure of an element tree.
type Snapshot struct {
	Root *Node `yaml:"root"`
}

// Node is one element in a snapshot.
type Node struct {
	ID       string  `yaml:"id"`
	Type     string  `yaml:"type"`
	Label    string  `yaml:"label,omitempty"`
	Value    string  `yaml:"value,omitempty"`
	ReadOnly bool    `yaml:"readOnly,omitempty"`
	Disabled bool    `yaml:"disabled,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the mounted tree.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return Capture(t.Root())
}

// Capture snapshots the tree rooted at root.
func Capture(root core.Element) *Snapshot {
	snap := &Snapshot{}
	if root != nil {
		snap.Root = captureNode(root, &typeCounter{})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// INSPECTOR_UPDATE_SNAPSHOTS=1 is set, the file is silently updated
// instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a structural diff between other (expected) and this
// snapshot. Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

// String returns the YAML form of the snapshot.
func (s *Snapshot) String() string {
	data, err := marshalSnapshot(s)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// --- Internal ---

// typeCounter assigns stable IDs like "IntField#0", "IntField#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(e core.Element, counter *typeCounter) *Node {
	typeName := elementTypeName(e)
	node := &Node{
		ID:       counter.next(typeName),
		Type:     typeName,
		Value:    displayValue(e),
		ReadOnly: !e.Interactable(),
		Disabled: !e.Enabled(),
	}
	if l, ok := e.(*elements.LabelElement); ok {
		node.Label = l.Text()
	}
	for _, child := range e.Children() {
		node.Children = append(node.Children, captureNode(child, counter))
	}
	return node
}

// elementTypeName strips the package path and any type arguments, so
// ReadOnlyField[string] and ReadOnlyField[int] both read ReadOnlyField.
func elementTypeName(e core.Element) string {
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
