package testing

import (
	"fmt"

	"github.com/go-drift/inspector/pkg/elements"
)

// Tap clicks the first element matched by finder. Buttons run their
// handler, toggles flip and window launchers open. The tree is not pumped.
func (t *Tester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}

	switch e := result.First().(type) {
	case *elements.Button:
		if !e.Click() {
			return fmt.Errorf("Tap: button is not interactable: %s", finder.Description())
		}
		return nil
	case *elements.Toggle:
		return e.SetValueFromView(!e.Value().Value())
	case *elements.WindowLauncher:
		if !e.Interactable() {
			return fmt.Errorf("Tap: launcher is not interactable: %s", finder.Description())
		}
		e.Open()
		return nil
	default:
		return fmt.Errorf("Tap: %T cannot be tapped: %s", e, finder.Description())
	}
}

// Enter writes v through the first element matched by finder as if the
// user had typed it. The element must edit values of type T.
func Enter[T any](t *Tester, finder Finder, v T) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Enter: finder matched no elements: %s", finder.Description())
	}
	field, ok := result.First().(interface{ SetValueFromView(T) error })
	if !ok {
		return fmt.Errorf("Enter: %T does not accept %T: %s", result.First(), v, finder.Description())
	}
	return field.SetValueFromView(v)
}

// EnterText is Enter for text fields.
func (t *Tester) EnterText(finder Finder, text string) error {
	return Enter(t, finder, text)
}
