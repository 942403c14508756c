// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package usil

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes conversion errors.
type ErrorKind uint8

const (
	// ErrSequencing indicates an operation was invoked before its required predecessor.
	ErrSequencing ErrorKind = iota

	// ErrUnsupportedFormat indicates a recognized but unimplemented input layout.
	ErrUnsupportedFormat

	// ErrUnsupportedOpcode indicates a backend opcode with no canonical mapping.
	ErrUnsupportedOpcode

	// ErrUnsupportedStage indicates a program type that is neither vertex nor fragment.
	ErrUnsupportedStage

	// ErrUnsupportedType indicates a program type the requested backend path cannot convert.
	ErrUnsupportedType

	// ErrFormat indicates malformed backend bytes or text.
	ErrFormat
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrSequencing:
		return "SequencingError"
	case ErrUnsupportedFormat:
		return "UnsupportedFormatError"
	case ErrUnsupportedOpcode:
		return "UnsupportedOpcodeError"
	case ErrUnsupportedStage:
		return "UnsupportedStageError"
	case ErrUnsupportedType:
		return "UnsupportedTypeError"
	case ErrFormat:
		return "FormatError"
	default:
		return "Unknown"
	}
}

// Phase names the pipeline stage an error came from.
type Phase string

// Pipeline phases.
const (
	PhaseExtract  Phase = "extract"
	PhaseParse    Phase = "parse"
	PhaseMap      Phase = "map"
	PhaseBuild    Phase = "build"
	PhaseMetadata Phase = "metadata"
	PhaseOptimize Phase = "optimize"
	PhaseSession  Phase = "session"
)

// Error is a typed conversion failure.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Phase is the pipeline stage that failed.
	Phase Phase

	// Op names the operation that failed, e.g. "ConvertNVN" or "dxbc.Parse".
	Op string

	// Message provides details about the error.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Phase != "" {
		msg = string(e.Phase) + " " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same Kind and no message, so that
// errors.Is(err, &usil.Error{Kind: usil.ErrFormat}) works as a kind check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Op == "" && t.Kind == e.Kind
}

// NewError creates an error without an underlying cause.
func NewError(kind ErrorKind, phase Phase, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Phase:   phase,
		Op:      op,
		Message: message,
	}
}

// Errorf creates an error with a formatted message.
func Errorf(kind ErrorKind, phase Phase, op, format string, args ...any) *Error {
	return NewError(kind, phase, op, fmt.Sprintf(format, args...))
}

// Wrap creates an error around an underlying cause.
func Wrap(kind ErrorKind, phase Phase, op string, err error, message string) *Error {
	return &Error{
		Kind:    kind,
		Phase:   phase,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsSequencing returns true if the error is ErrSequencing.
func (e *Error) IsSequencing() bool {
	return e.Kind == ErrSequencing
}

// IsUnsupportedOpcode returns true if the error is ErrUnsupportedOpcode.
func (e *Error) IsUnsupportedOpcode() bool {
	return e.Kind == ErrUnsupportedOpcode
}

// IsFormat returns true if the error is ErrFormat.
func (e *Error) IsFormat() bool {
	return e.Kind == ErrFormat
}
