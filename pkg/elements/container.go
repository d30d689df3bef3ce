package elements

import (
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/reactive"
)

// Column stacks children vertically.
type Column struct{ core.ElementBase }

// NewColumn returns a column of children.
func NewColumn(children ...core.Element) *Column {
	c := &Column{}
	core.SetChildren(c, children...)
	return c
}

// Row lays children out horizontally.
type Row struct{ core.ElementBase }

// NewRow returns a row of children.
func NewRow(children ...core.Element) *Row {
	r := &Row{}
	core.SetChildren(r, children...)
	return r
}

// Fold is a collapsible group. The header label is its first child.
type Fold struct {
	core.ElementBase
	header *LabelElement
	open   *reactive.Property[bool]
}

// NewFold returns an open fold titled by label.
func NewFold(label *LabelElement, children ...core.Element) *Fold {
	f := &Fold{header: label, open: reactive.NewProperty(true)}
	attachLabel(f, label)
	for _, c := range children {
		core.AppendChild(f, c)
	}
	return f
}

// Label returns the header.
func (f *Fold) Label() *LabelElement { return f.header }

// Open reports and observes whether the fold is expanded.
func (f *Fold) Open() *reactive.Property[bool] { return f.open }

// Content returns the children after the header.
func (f *Fold) Content() []core.Element { return withoutLabel(f.Children(), f.header) }

// CompositeField shows a label followed by its children on one line.
type CompositeField struct {
	core.ElementBase
	label *LabelElement
}

// NewCompositeField returns a single-line group.
func NewCompositeField(label *LabelElement, children ...core.Element) *CompositeField {
	c := &CompositeField{label: label}
	attachLabel(c, label)
	for _, child := range children {
		core.AppendChild(c, child)
	}
	return c
}

// Label returns the label, or nil.
func (c *CompositeField) Label() *LabelElement { return c.label }

// Content returns the children after the label.
func (c *CompositeField) Content() []core.Element { return withoutLabel(c.Children(), c.label) }

func withoutLabel(children []core.Element, label *LabelElement) []core.Element {
	if label != nil && len(children) > 0 && children[0] == core.Element(label) {
		return children[1:]
	}
	return children
}

// Button runs an action when clicked.
type Button struct {
	core.ElementBase
	Text    string
	onClick func()
}

// NewButton returns a button labelled text.
func NewButton(text string, onClick func()) *Button {
	return &Button{Text: text, onClick: onClick}
}

// Click runs the action. It reports false when the button is disabled or
// read-only.
func (b *Button) Click() bool {
	if b.onClick == nil || !b.Enabled() || !b.Interactable() || b.IsDetached() {
		return false
	}
	b.onClick()
	return true
}

// DisplayValue returns the button text.
func (b *Button) DisplayValue() string { return b.Text }

// MessageType classifies a help box.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageWarning
	MessageError
)

func (t MessageType) String() string {
	switch t {
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	}
	return "info"
}

// HelpBox shows a message.
type HelpBox struct {
	core.ElementBase
	Message string
	Type    MessageType
}

// NewHelpBox returns a help box.
func NewHelpBox(message string, typ MessageType) *HelpBox {
	return &HelpBox{Message: message, Type: typ}
}

// DisplayValue returns the message.
func (h *HelpBox) DisplayValue() string { return h.Message }
