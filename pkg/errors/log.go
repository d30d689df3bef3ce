package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode selects when LogHandler colours its tags.
type ColorMode int

const (
	// ColorAuto colours output only when writing to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways always colours output.
	ColorAlways
	// ColorNever never colours output.
	ColorNever
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// LogHandler is an ErrorHandler that writes diagnostics to a writer.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the output. Nil means os.Stderr.
	Out io.Writer
	// Color controls ANSI colouring of the tags.
	Color ColorMode
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

func (h *LogHandler) colored() bool {
	switch h.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := h.out().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (h *LogHandler) tag(name, color string) string {
	if h.colored() {
		return color + "[inspector " + name + "]" + ansiReset
	}
	return "[inspector " + name + "]"
}

// HandleError logs a BindError.
func (h *LogHandler) HandleError(err *BindError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "%s %s [%s]", h.tag("error", ansiRed), err.Op, err.Kind)
		if err.Type != "" {
			fmt.Fprintf(w, " type=%s", err.Type)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "%s %s: %v\n", h.tag("error", ansiRed), err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "%s %s: %v\n", h.tag("panic", ansiRed), err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "%s %v\n", h.tag("panic", ansiRed), err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "%s %s\n", h.tag("build", ansiYellow), err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
