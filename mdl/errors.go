// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "fmt"

// ErrorKind categorizes MDL generation errors.
type ErrorKind uint8

const (
	// ErrMissingSource indicates an implementation supplied neither inline
	// source text nor an external module file.
	ErrMissingSource ErrorKind = iota

	// ErrMissingFunctionName indicates an external implementation supplied
	// no function name.
	ErrMissingFunctionName

	// ErrInvalidModuleReference indicates a referenced source file is not
	// an MDL module.
	ErrInvalidModuleReference

	// ErrInternal indicates an internal generator error.
	ErrInternal
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrMissingSource:
		return "MissingSource"
	case ErrMissingFunctionName:
		return "MissingFunctionName"
	case ErrInvalidModuleReference:
		return "InvalidModuleReference"
	case ErrInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error represents an MDL generation error. Initialization errors carry the
// offending implementation's name for diagnosability.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Implementation names the implementation that caused the error, when
	// known.
	Implementation string

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Implementation != "" {
		return fmt.Sprintf("mdl %s: %s (implementation '%s')", e.Kind, e.Message, e.Implementation)
	}
	return fmt.Sprintf("mdl %s: %s", e.Kind, e.Message)
}

// newError creates an Error tied to an implementation.
func newError(kind ErrorKind, implementation, message string) *Error {
	return &Error{Kind: kind, Implementation: implementation, Message: message}
}
