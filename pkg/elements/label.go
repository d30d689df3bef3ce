package elements

import (
	"github.com/go-drift/inspector/pkg/core"
)

// LabelElement displays the name of a bound slot. Override replaces the
// derived name without losing it.
type LabelElement struct {
	core.ElementBase
	text     string
	override string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *LabelElement {
	return &LabelElement{text: text}
}

// Text returns the override when set, otherwise the derived name.
func (l *LabelElement) Text() string {
	if l == nil {
		return ""
	}
	if l.override != "" {
		return l.override
	}
	return l.text
}

// BaseText returns the derived name, ignoring any override.
func (l *LabelElement) BaseText() string { return l.text }

// SetOverride replaces the displayed text. An empty string clears it.
func (l *LabelElement) SetOverride(text string) { l.override = text }

// Labeled is implemented by elements that carry a label.
type Labeled interface {
	Label() *LabelElement
}

// LabelOf returns the label text of e, if any.
func LabelOf(e core.Element) string {
	switch v := e.(type) {
	case *LabelElement:
		return v.Text()
	case Labeled:
		return v.Label().Text()
	}
	return ""
}

// Text is a static text leaf.
type Text struct {
	core.ElementBase
	Content string
}

// NewText returns a text leaf.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// DisplayValue returns the content.
func (t *Text) DisplayValue() string { return t.Content }

// Valued is implemented by elements that display a value.
type Valued interface {
	DisplayValue() string
}

func attachLabel(parent core.Element, label *LabelElement) {
	if label == nil {
		return
	}
	if label.Parent() != nil {
		core.Orphan(label)
	}
	core.AppendChild(parent, label)
}
