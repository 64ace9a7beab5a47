package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrMalformedMarkup = errors.New("malformed markup")
	ErrNormalization   = errors.New("normalization failed")
	ErrConflict        = errors.New("conflict")
	ErrInvalidPhase    = errors.New("invalid phase")
	ErrExecution       = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindMalformedMarkup ErrorKind = "malformed_markup"
	KindNormalization   ErrorKind = "normalization"
	KindConflict        ErrorKind = "conflict"
	KindInvalidPhase    ErrorKind = "invalid_phase"
	KindExecution       ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DomainError is raised by pure engine code that has no operation or path context.
type DomainError struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches the sentinel of the error's kind, so the sentinel need not be
// part of Cause.
func (e *DomainError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

var kindSentinels = map[ErrorKind]error{
	KindNotFound:        ErrNotFound,
	KindInvalidConfig:   ErrInvalidConfig,
	KindMalformedMarkup: ErrMalformedMarkup,
	KindNormalization:   ErrNormalization,
	KindConflict:        ErrConflict,
	KindInvalidPhase:    ErrInvalidPhase,
	KindExecution:       ErrExecution,
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// KindOf returns the first classified kind found in err's chain, or KindExecution.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindExecution
}
