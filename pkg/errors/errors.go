// Package errors provides structured error reporting for the inspector engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnsupported indicates an operation the binding slot does not support.
	KindUnsupported
	// KindCircular indicates a cyclic reference found while building.
	KindCircular
	// KindCreator indicates a broken element-creator contract.
	KindCreator
	// KindCodec indicates a rich value could not be encoded or decoded.
	KindCodec
	// KindConfig indicates an invalid configuration file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a build-time element error.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindCircular:
		return "circular"
	case KindCreator:
		return "creator"
	case KindCodec:
		return "codec"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

var (
	// ErrReadOnly is returned when writing to a slot that cannot be written.
	// It matches errors.ErrUnsupported from the standard library.
	ErrReadOnly = fmt.Errorf("read-only slot: %w", stderrors.ErrUnsupported)
	// ErrNilParent is returned when a member is written through a nil owner.
	ErrNilParent = stderrors.New("owner value is nil")
	// ErrOutOfRange is returned when an index slot lies past the sequence end.
	ErrOutOfRange = stderrors.New("index out of range")
	// ErrOverflow is returned when a value does not fit the slot's kind.
	ErrOverflow = stderrors.New("value overflows slot type")
)

// New returns an error that formats as the given text.
func New(text string) error { return stderrors.New(text) }

// Join returns an error that wraps the given errors.
func Join(errs ...error) error { return stderrors.Join(errs...) }

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// BindError represents a structured error raised by the binding engine.
type BindError struct {
	// Op is the operation that failed (e.g., "rendering.DecodeGradient").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Type is the Go type involved, if any.
	Type string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s [%s] type=%s: %v", e.Op, e.Kind, e.Type, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Driver.Tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure while building an element subtree.
type BuildError struct {
	// Type is the bound value type whose subtree failed.
	Type string
	// Kind categorizes the failure (KindBuild or KindCreator).
	Kind ErrorKind
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	name := e.Type
	if name == "" {
		name = "element"
	}
	if e.Recovered != nil {
		return fmt.Sprintf("panic while building %s: %v", name, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error while building %s: %v", name, e.Err)
	}
	return fmt.Sprintf("unknown error while building %s", name)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when an element subtree fails to build.
	HandleBuildError(err *BuildError)
}
