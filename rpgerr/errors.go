// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rpgerr provides structured error handling for the rule engine.
// It enables clear communication of why an operation could not proceed,
// with full context about the offending ids when rules are evaluated.
package rpgerr

import (
	"context"
	"errors"
	"fmt"
)

// Code represents an engine error kind as named in the error handling design.
type Code string

const (
	// CodeUnknown indicates an unknown error occurred.
	CodeUnknown Code = "unknown"
	// CodeInternal indicates a RuleViolation: an impossible configuration
	// that should be unreachable in correct code (programmer error).
	CodeInternal Code = "internal"
	// CodeCanceled indicates the operation was canceled.
	CodeCanceled Code = "canceled"

	// CodeInvalidArgument indicates a Validation failure: a modifier or
	// value's target mismatch, an unknown slot, a cross-entity channel
	// source mismatch.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeNotFound indicates a referenced id absent from a registry.
	CodeNotFound Code = "not_found"
	// CodeConflictingState indicates a Precondition failure: equip to an
	// occupied slot, unequip an empty slot, condition already applied.
	CodeConflictingState Code = "conflicting_state"
	// CodeInvalidState indicates an entity is in the wrong state for the
	// requested operation (e.g. acting with no actions remaining).
	CodeInvalidState Code = "invalid_state"
	// CodeAlreadyExists indicates a duplicate registration.
	CodeAlreadyExists Code = "already_exists"
	// CodeOutOfRange indicates a target too far away for an action.
	CodeOutOfRange Code = "out_of_range"
	// CodeImmune indicates the target is immune to the effect attempted.
	CodeImmune Code = "immune"
)

// Error represents an engine error with code, message, and metadata.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message.
func (e *Error) Error() string {
	if e == nil {
		return "rpgerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithMeta attaches a metadata key/value pair (e.g. an offending id) to an error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New creates a new error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf creates a new error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context, preserving its code if it
// is already an *Error.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("rpgerr.Wrap called with nil: %s", message))
	}
	var rpgErr *Error
	var wrapped *Error
	if errors.As(err, &rpgErr) {
		wrapped = &Error{Code: rpgErr.Code, Message: message, Cause: err, Meta: copyMeta(rpgErr.Meta)}
	} else {
		wrapped = &Error{Code: CodeUnknown, Message: message, Cause: err}
	}
	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// GetCode extracts the error code from any error, falling back to
// CodeCanceled/CodeUnknown for standard context errors.
func GetCode(err error) Code {
	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		if rpgErr == nil {
			return CodeUnknown
		}
		if rpgErr.Code == CodeUnknown && errors.Is(err, context.Canceled) {
			return CodeCanceled
		}
		return rpgErr.Code
	}
	if errors.Is(err, context.Canceled) {
		return CodeCanceled
	}
	return CodeUnknown
}

// GetMeta extracts metadata from an error.
func GetMeta(err error) map[string]any {
	var rpgErr *Error
	if errors.As(err, &rpgErr) && rpgErr != nil {
		return rpgErr.Meta
	}
	return nil
}

// Common constructors for the four error kinds named in the error
// handling design: Validation, NotFound, Precondition, RuleViolation.

// Invalid creates a Validation error.
func Invalid(reason string, opts ...Option) *Error {
	return New(CodeInvalidArgument, reason, opts...)
}

// Invalidf creates a formatted Validation error.
func Invalidf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a NotFound error for a referenced id absent from a registry.
func NotFound(kind, id string, opts ...Option) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s not found: %s", kind, id), opts...)
}

// Conflict creates a Precondition error.
func Conflict(reason string, opts ...Option) *Error {
	return New(CodeConflictingState, reason, opts...)
}

// Conflictf creates a formatted Precondition error.
func Conflictf(format string, args ...any) *Error {
	return Newf(CodeConflictingState, format, args...)
}

// RuleViolation creates an error for an impossible configuration that a
// correct caller should never produce (e.g. zero-count dice, a damage
// roll without an attack outcome).
func RuleViolation(reason string, opts ...Option) *Error {
	return New(CodeInternal, reason, opts...)
}

// RuleViolationf creates a formatted RuleViolation error.
func RuleViolationf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Immune creates an error describing target immunity.
func Immune(what string, opts ...Option) *Error {
	return New(CodeImmune, fmt.Sprintf("immune to %s", what), opts...)
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalid reports whether err is a Validation error.
func IsInvalid(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsConflict reports whether err is a Precondition error.
func IsConflict(err error) bool { return GetCode(err) == CodeConflictingState }

// IsRuleViolation reports whether err is a RuleViolation error.
func IsRuleViolation(err error) bool { return GetCode(err) == CodeInternal }

// IsImmune reports whether err is an immunity error.
func IsImmune(err error) bool { return GetCode(err) == CodeImmune }
