// Package core defines the element tree produced by the binding engine and
// the driver that keeps it synchronized with the bound data.
//
// # Elements
//
// An Element is a node of a declarative UI description. Renderers read the
// tree; they never build it. Every element embeds ElementBase:
//
//	type Badge struct {
//	    core.ElementBase
//	    Text string
//	}
//
// A child has exactly one parent at a time. SetChildren, AppendChild and
// RemoveChildrenFrom maintain the links, and Detach tears a subtree down,
// running each element's OnDetach hooks exactly once, children first.
//
// # Ticks
//
// A Driver walks the tree once per tick. Each element's Sync pulls the
// current value, then structural elements (Rebuilder) compare a fingerprint
// of the data shape and rebuild their children when it changed:
//
//	driver := core.NewDriver(root)
//	for range frames {
//	    if err := driver.Tick(); err != nil {
//	        log.Print(err)
//	    }
//	}
//
// # Build failures
//
// SafeBuild recovers panics raised while building a subtree, reports them
// through the errors package and substitutes an error element. The
// element used can be replaced with SetErrorElementBuilder.
package core
