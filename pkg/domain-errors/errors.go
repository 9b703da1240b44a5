// Package domainerrors provides coded errors for domain and validation
// failures. Services and parsers return these so transports can translate
// them into consistent responses without inspecting error strings.
//
// For infrastructure facts (missing record, unavailable backend) use
// pkg/platform/sentinel instead; this package is for failures that carry a
// domain meaning.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for programmatic handling.
type Code string

const (
	// CodeInvalidInput: input failed a declared constraint at a trust
	// boundary. This is an ordinary, expected outcome of validation, not a
	// fault; callers recover locally.
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest: request is malformed (undecodable body, wrong shape).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound: the referenced entity does not exist.
	CodeNotFound Code = "not_found"
	// CodeUnavailable: an upstream dependency cannot serve the request.
	CodeUnavailable Code = "unavailable"
	// CodeInternal: unexpected failure; details are logged, not exposed.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Construct via New or Wrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying error with a code and message. The cause
// remains reachable through errors.Is / errors.As.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HasCode reports whether err or any error in its chain carries the code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		if err == nil {
			return false
		}
	}
	return false
}

// CodeOf returns the code of the outermost domain error in the chain, or
// CodeInternal when the error carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
