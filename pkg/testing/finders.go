package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
)

// Finder locates elements in the element tree.
type Finder interface {
	// Evaluate returns the matches under root in depth-first pre-order.
	Evaluate(root core.Element) []core.Element
	// Description names the finder in failure messages.
	Description() string
}

// FinderResult holds the matches of one Find call.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if there is none.
func (r FinderResult) First() core.Element { return r.At(0) }

// FirstOrNil returns the first match, or nil.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the i-th match. Panics when i is out of range.
func (r FinderResult) At(i int) core.Element {
	if len(r.elements) == 0 {
		panic("Finder found no elements: " + r.describe())
	}
	if i < 0 || i >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", i, len(r.elements), r.describe()))
	}
	return r.elements[i]
}

// All returns every match.
func (r FinderResult) All() []core.Element { return r.elements }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.elements) }

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool { return len(r.elements) > 0 }

// Value returns the display value of the first match, or "" when it has
// none. Panics if nothing matched.
func (r FinderResult) Value() string { return displayValue(r.First()) }

// matcher is a finder over a single element predicate.
type matcher struct {
	desc  string
	match func(core.Element) bool
}

func (m matcher) Evaluate(root core.Element) []core.Element {
	var out []core.Element
	core.Walk(root, func(e core.Element) bool {
		if m.match(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

func (m matcher) Description() string { return m.desc }

// ByType matches elements of type T, usually a pointer type such as
// *elements.IntField.
func ByType[T core.Element]() Finder {
	return matcher{
		desc: fmt.Sprintf("ByType(%s)", reflect.TypeFor[T]()),
		match: func(e core.Element) bool {
			_, ok := e.(T)
			return ok
		},
	}
}

// ByLabel matches labelled elements whose label shows text. The label
// element itself is not matched.
func ByLabel(text string) Finder {
	return matcher{
		desc: fmt.Sprintf("ByLabel(%q)", text),
		match: func(e core.Element) bool {
			l, ok := e.(elements.Labeled)
			return ok && l.Label() != nil && l.Label().Text() == text
		},
	}
}

// ByText matches elements whose display value equals text: text elements,
// buttons, help boxes and fields.
func ByText(text string) Finder {
	return byValue(fmt.Sprintf("ByText(%q)", text), func(v string) bool { return v == text })
}

// ByTextContaining matches elements whose display value contains substr.
func ByTextContaining(substr string) Finder {
	return byValue(fmt.Sprintf("ByTextContaining(%q)", substr), func(v string) bool {
		return strings.Contains(v, substr)
	})
}

func byValue(desc string, ok func(string) bool) Finder {
	return matcher{desc: desc, match: func(e core.Element) bool {
		v, valued := e.(elements.Valued)
		return valued && ok(v.DisplayValue())
	}}
}

// ByPredicate matches elements satisfying fn.
func ByPredicate(fn func(core.Element) bool) Finder {
	return matcher{desc: "ByPredicate(...)", match: fn}
}

// scoped relates two finders through the tree.
type scoped struct {
	name     string
	of       Finder
	matching Finder
	collect  func(s scoped, root core.Element) []core.Element
}

func (s scoped) Evaluate(root core.Element) []core.Element { return s.collect(s, root) }

func (s scoped) Description() string {
	return fmt.Sprintf("%s(of: %s, matching: %s)", s.name, s.of.Description(), s.matching.Description())
}

// Descendant matches elements satisfying matching that lie strictly below
// an element matched by of.
func Descendant(of, matching Finder) Finder {
	return scoped{name: "Descendant", of: of, matching: matching, collect: descendants}
}

// Ancestor matches elements satisfying matching that lie strictly above
// an element matched by of.
func Ancestor(of, matching Finder) Finder {
	return scoped{name: "Ancestor", of: of, matching: matching, collect: ancestors}
}

func descendants(s scoped, root core.Element) []core.Element {
	var out []core.Element
	seen := map[core.Element]bool{}
	for _, top := range s.of.Evaluate(root) {
		top.VisitChildren(func(child core.Element) bool {
			for _, e := range s.matching.Evaluate(child) {
				if !seen[e] {
					seen[e] = true
					out = append(out, e)
				}
			}
			return true
		})
	}
	return out
}

func ancestors(s scoped, root core.Element) []core.Element {
	candidates := map[core.Element]bool{}
	for _, e := range s.matching.Evaluate(root) {
		candidates[e] = true
	}
	var out []core.Element
	seen := map[core.Element]bool{}
	for _, low := range s.of.Evaluate(root) {
		for e := low.Parent(); e != nil; e = e.Parent() {
			if candidates[e] && !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

func displayValue(e core.Element) string {
	if v, ok := e.(elements.Valued); ok {
		return v.DisplayValue()
	}
	return ""
}
