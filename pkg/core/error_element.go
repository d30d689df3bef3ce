package core

import (
	"reflect"
	"sync"
	"time"

	"github.com/go-drift/inspector/pkg/errors"
)

// ErrorElementBuilder creates a fallback element when building a subtree
// fails. Returning nil selects the built-in ErrorElement.
type ErrorElementBuilder func(err *errors.BuildError) Element

var (
	errorElementBuilder ErrorElementBuilder = DefaultErrorElementBuilder
	errorBuilderMu      sync.RWMutex
)

// SetErrorElementBuilder configures the global error element builder.
// Pass nil to restore the default builder.
func SetErrorElementBuilder(builder ErrorElementBuilder) {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	if builder == nil {
		errorElementBuilder = DefaultErrorElementBuilder
	} else {
		errorElementBuilder = builder
	}
}

// GetErrorElementBuilder returns the current error element builder.
func GetErrorElementBuilder() ErrorElementBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorElementBuilder
}

// DefaultErrorElementBuilder returns nil so that ErrorElement is used.
// The elements package installs a richer builder.
func DefaultErrorElementBuilder(err *errors.BuildError) Element {
	return nil
}

// ErrorElement is the minimal placeholder shown in place of a subtree that
// failed to build.
type ErrorElement struct {
	ElementBase
	Err *errors.BuildError
}

// NewErrorElement returns a non-interactable placeholder for err.
func NewErrorElement(err *errors.BuildError) *ErrorElement {
	e := &ErrorElement{Err: err}
	e.SetInteractable(false)
	return e
}

// Message returns the text to display, honouring DebugMode.
func (e *ErrorElement) Message() string {
	if e.Err == nil {
		return "build failed"
	}
	if !DebugMode {
		if e.Err.Type != "" {
			return "failed to build " + e.Err.Type
		}
		return "build failed"
	}
	return e.Err.Error()
}

// BuildFailed reports err and returns the element to show in its place.
func BuildFailed(err *errors.BuildError) Element {
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.Kind == errors.KindUnknown {
		err.Kind = errors.KindBuild
	}
	errors.ReportBuildError(err)

	if builder := GetErrorElementBuilder(); builder != nil {
		if el := safeErrorElement(builder, err); el != nil {
			return el
		}
	}
	return NewErrorElement(err)
}

// safeErrorElement guards against a panicking error builder.
func safeErrorElement(builder ErrorElementBuilder, err *errors.BuildError) (el Element) {
	defer func() {
		if r := recover(); r != nil {
			el = nil
		}
	}()
	return builder(err)
}

// SafeBuild runs build and recovers a panic into an error element. t names
// the bound type for diagnostics and may be nil.
func SafeBuild(t reflect.Type, build func() Element) (built Element) {
	defer func() {
		if r := recover(); r != nil {
			built = BuildFailed(&errors.BuildError{
				Type:       typeName(t),
				Kind:       errors.KindBuild,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	return build()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
