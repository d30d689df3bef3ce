package ui

import (
	"github.com/go-drift/inspector/pkg/config"
	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/elements"
	"github.com/go-drift/inspector/pkg/errors"
)

// FieldOption tunes leaf fields.
type FieldOption struct {
	// DelayInput commits text input when editing ends instead of on every
	// keystroke.
	DelayInput bool
}

// ListViewOption tunes list views.
type ListViewOption struct {
	Reorderable bool
	FixedSize   bool
}

var defaults = struct {
	field FieldOption
	list  ListViewOption
}{
	list: ListViewOption{Reorderable: true},
}

// DefaultFieldOption returns the option used by Field.
func DefaultFieldOption() FieldOption { return defaults.field }

// DefaultListViewOption returns the option used for list members.
func DefaultListViewOption() ListViewOption { return defaults.list }

// Configure applies resolved configuration to the package defaults, the
// preview sizes, debug mode and the error handler.
func Configure(cfg *config.Resolved) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	defaults.field = FieldOption{DelayInput: cfg.DelayInput}
	defaults.list = ListViewOption{Reorderable: cfg.Reorderable}
	elements.Previews = elements.PreviewConfig{
		GradientWidth: cfg.GradientWidth,
		CurveWidth:    cfg.CurveWidth,
		CurveHeight:   cfg.CurveHeight,
		DisplayWidth:  cfg.DisplayWidth,
		DisplayHeight: cfg.DisplayHeight,
	}
	core.SetDebugMode(cfg.Debug)
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose, Color: colorMode(cfg.Color)})
}

func colorMode(s string) errors.ColorMode {
	switch s {
	case "always":
		return errors.ColorAlways
	case "never":
		return errors.ColorNever
	default:
		return errors.ColorAuto
	}
}
