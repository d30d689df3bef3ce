// Package testing provides an element-tree testing harness for the
// inspector.
//
// # Quick Start
//
// Create a tester, build a tree for a value, and make assertions:
//
//	func TestSettings(t *testing.T) {
//	    tester := inspecttest.NewTesterWithT(t)
//	    s := &Settings{Volume: 3}
//	    tester.Build(s)
//
//	    // Find elements
//	    volume := tester.Find(inspecttest.ByLabel("Volume")).First()
//
//	    // Simulate input
//	    inspecttest.Enter(tester, inspecttest.ByLabel("Volume"), 7)
//	    tester.Tap(inspecttest.ByText("Reset"))
//	    tester.Pump()
//
//	    // Assert state
//	    if s.Volume != 0 {
//	        t.Error("expected Reset to clear the volume")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare element tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/settings.snapshot.yaml")
//
// Update snapshots with:
//
//	INSPECTOR_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Diagnostics
//
// The tester installs a Recorder as the error handler for its lifetime, so
// reported bind and build errors can be asserted through Errors.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import inspecttest "github.com/go-drift/inspector/pkg/testing"
package testing
