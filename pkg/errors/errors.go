// Package errors provides structured error handling for the runtime inflation engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRegistry indicates an attribute registry error.
	KindRegistry
	// KindAttribute indicates a per-attribute dispatch failure.
	KindAttribute
	// KindFactory indicates a node factory or reflective construction error.
	KindFactory
	// KindParse indicates a document parsing failure.
	KindParse
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegistry:
		return "registry"
	case KindAttribute:
		return "attribute"
	case KindFactory:
		return "factory"
	case KindParse:
		return "parse"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors for the dispatch and construction taxonomy.
// Callers match them with errors.Is.
var (
	// ErrDuplicateRegistration is returned when an attribute name is
	// registered twice. Re-registering a name is a programming error,
	// never a silent overwrite.
	ErrDuplicateRegistration = errors.New("attribute already registered")

	// ErrUnknownAttribute is reported when a batch references a name with
	// no registered handler.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrDuplicateAttribute is reported when the same attribute id is
	// applied twice within one batch. The first application wins.
	ErrDuplicateAttribute = errors.New("duplicate attribute in batch")

	// ErrTypeMismatch is reported when a node or value fails a handler's
	// declared capability or value kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrClassResolution is returned when no class is indexed under a
	// requested type name.
	ErrClassResolution = errors.New("class not found")

	// ErrNoSuitableConstructor is returned when an indexed class lacks the
	// single-argument construction shape.
	ErrNoSuitableConstructor = errors.New("no suitable constructor")
)

// InflateError represents a structured error in the inflation engine.
type InflateError struct {
	// Op is the operation that failed (e.g., "attr.Registry.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Attr is the attribute name, if applicable.
	Attr string
	// Node is the node type name, if applicable.
	Node string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InflateError) Error() string {
	switch {
	case e.Attr != "":
		return fmt.Sprintf("%s [%s] attr=%s: %v", e.Op, e.Kind, e.Attr, e.Err)
	case e.Node != "":
		return fmt.Sprintf("%s [%s] node=%s: %v", e.Op, e.Kind, e.Node, e.Err)
	default:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *InflateError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "inflater.Inflate").
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

// ErrorHandler receives errors reported by the inflation engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *InflateError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
