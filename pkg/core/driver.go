package core

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/inspector/pkg/errors"
)

var (
	// ErrTickInProgress is returned by Tick when another tick is running.
	ErrTickInProgress = errors.New("core: tick already in progress")
	// ErrDriverClosed is returned by Tick after Close.
	ErrDriverClosed = errors.New("core: driver closed")
	// ErrVisitedTwice is reported when an element is reached twice in one
	// tick, which means it is linked into the tree twice.
	ErrVisitedTwice = errors.New("core: element visited twice in one tick")
)

// frameSeq stamps visits; it is shared by all drivers so that a tree moved
// between drivers never sees a stale stamp.
var frameSeq atomic.Uint64

// Driver walks an element tree once per tick. For every element it calls
// Sync, then RebuildIfNeeded when the element is a Rebuilder, then visits
// the element's children as they are after the rebuild.
//
// Tick must be called from the goroutine that owns the tree.
type Driver struct {
	mu     sync.Mutex
	root   Element
	frames uint64
	stamp  uint64
	closed bool
}

// NewDriver returns a driver for root.
func NewDriver(root Element) *Driver {
	return &Driver{root: root}
}

// Root returns the current root element.
func (d *Driver) Root() Element { return d.root }

// SetRoot replaces the root. The previous root is detached.
func (d *Driver) SetRoot(root Element) {
	if d.root != nil && d.root != root {
		d.root.Detach()
	}
	d.root = root
}

// Frame returns the number of completed ticks.
func (d *Driver) Frame() uint64 { return d.frames }

// Close detaches the root. Subsequent ticks return ErrDriverClosed.
func (d *Driver) Close() {
	if !d.mu.TryLock() {
		return
	}
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	if d.root != nil {
		d.root.Detach()
	}
}

// Tick synchronizes the whole tree. A panic raised by an element is
// recovered, reported and returned as an error.
func (d *Driver) Tick() (err error) {
	if !d.mu.TryLock() {
		return ErrTickInProgress
	}
	defer d.mu.Unlock()
	if d.closed {
		return ErrDriverClosed
	}

	d.stamp = frameSeq.Add(1)
	defer func() { d.frames++ }()
	defer errors.RecoverWithCallback("core.Driver.Tick", func(r any) {
		err = fmt.Errorf("core: tick panicked: %v", r)
	})

	if d.root != nil && !d.root.IsDetached() {
		d.visit(d.root)
	}
	return nil
}

func (d *Driver) visit(e Element) {
	b := e.base()
	if b.frame == d.stamp {
		errors.Report(&errors.BindError{
			Op:   "core.Driver.Tick",
			Kind: errors.KindUnknown,
			Type: fmt.Sprintf("%T", e),
			Err:  ErrVisitedTwice,
		})
		return
	}
	b.frame = d.stamp

	e.Sync()
	if r, ok := e.(Rebuilder); ok && !e.IsDetached() {
		r.RebuildIfNeeded()
	}

	// children may change while visiting; index the live list
	for i := 0; i < len(b.children); i++ {
		d.visit(b.children[i])
	}
}
