package core

// SetChildren replaces the children of parent. Previous children that are
// not in the new list are detached. Nil entries are skipped. Attaching an
// element that already belongs to another parent panics.
func SetChildren(parent Element, children ...Element) {
	pb := parent.base()
	keep := make(map[*ElementBase]bool, len(children))
	for _, c := range children {
		if c != nil {
			keep[c.base()] = true
		}
	}

	old := pb.children
	pb.children = nil
	for i := len(old) - 1; i >= 0; i-- {
		cb := old[i].base()
		cb.parent = nil
		if !keep[cb] {
			old[i].Detach()
		}
	}

	for _, c := range children {
		AppendChild(parent, c)
	}
}

// AppendChild adds child as the last child of parent. A nil child is
// ignored.
func AppendChild(parent, child Element) {
	if child == nil {
		return
	}
	attach(parent, child)
	pb := parent.base()
	pb.children = append(pb.children, child)
}

// RemoveChildrenFrom detaches the children of parent at positions i and
// above, last first.
func RemoveChildrenFrom(parent Element, i int) {
	pb := parent.base()
	if i < 0 {
		i = 0
	}
	for len(pb.children) > i {
		pb.children[len(pb.children)-1].Detach()
	}
}

// DetachChildren detaches every child of parent.
func DetachChildren(parent Element) {
	RemoveChildrenFrom(parent, 0)
}

// Orphan unlinks e from its parent without detaching it, so it can be
// attached elsewhere.
func Orphan(e Element) {
	b := e.base()
	if b.parent == nil {
		return
	}
	b.parent.base().removeChild(b)
	b.parent = nil
}

// Walk visits e and its descendants depth-first, parents before children.
// Returning false from fn skips the element's subtree.
func Walk(e Element, fn func(Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.Children() {
		Walk(c, fn)
	}
}

// FindAncestor returns the nearest ancestor of e matching predicate.
func FindAncestor(e Element, predicate func(Element) bool) Element {
	for cur := e.Parent(); cur != nil; cur = cur.Parent() {
		if predicate(cur) {
			return cur
		}
	}
	return nil
}
