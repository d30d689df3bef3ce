package testing

import (
	"testing"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
	"github.com/go-drift/inspector/pkg/ui"
)

// Tester builds element trees and drives them with a core.Driver, the way
// a host view would, while recording every reported diagnostic.
type Tester struct {
	driver      *core.Driver
	prevHandler errors.ErrorHandler
	recorder    *Recorder
}

// NewTester creates a tester. Call Cleanup when done, or use
// NewTesterWithT instead.
func NewTester() *Tester {
	rec := &Recorder{}
	t := &Tester{
		driver:      core.NewDriver(nil),
		prevHandler: errors.Handler(),
		recorder:    rec,
	}
	errors.SetHandler(rec)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup detaches the tree and restores the error handler.
func (t *Tester) Cleanup() {
	t.driver.Close()
	errors.SetHandler(t.prevHandler)
}

// Build builds the tree for the value root points to, mounts it and runs
// one tick.
func (t *Tester) Build(root any) error {
	return t.Mount(ui.Build(root))
}

// Mount replaces the mounted tree with root and runs one tick. The
// previous tree is detached.
func (t *Tester) Mount(root core.Element) error {
	t.driver.SetRoot(root)
	return t.Pump()
}

// Pump runs a single tick.
func (t *Tester) Pump() error {
	return t.driver.Tick()
}

// PumpN runs n ticks, stopping at the first error.
func (t *Tester) PumpN(n int) error {
	for range n {
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the mounted tree.
func (t *Tester) Root() core.Element {
	return t.driver.Root()
}

// Driver returns the driver ticking the tree.
func (t *Tester) Driver() *core.Driver {
	return t.driver
}

// Errors returns the diagnostics reported since the tester was created.
func (t *Tester) Errors() *Recorder {
	return t.recorder
}

// Find evaluates a finder against the mounted tree.
func (t *Tester) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(root),
		finder:   finder,
	}
}

// Recorder is an errors.ErrorHandler that keeps what it receives.
type Recorder struct {
	Binds  []*errors.BindError
	Panics []*errors.PanicError
	Builds []*errors.BuildError
}

func (r *Recorder) HandleError(err *errors.BindError)       { r.Binds = append(r.Binds, err) }
func (r *Recorder) HandlePanic(err *errors.PanicError)      { r.Panics = append(r.Panics, err) }
func (r *Recorder) HandleBuildError(err *errors.BuildError) { r.Builds = append(r.Builds, err) }

// Len returns the total number of recorded diagnostics.
func (r *Recorder) Len() int {
	return len(r.Binds) + len(r.Panics) + len(r.Builds)
}
