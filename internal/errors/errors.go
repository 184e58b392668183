package errors

import (
	"errors"
	"fmt"
)

// Error is the structured error returned by every layer of the deck. Meta
// carries the slot, card or sheet the failure is about.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so errors.Is(err, NotFound(""))
// tests the code alone
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any, 2)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and meta of a wrapped *Error survive;
// anything else becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeInternal, Message: message, Cause: err}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Code = inner.Code
		wrapped.Meta = inner.Meta
	}

	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under an explicit code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// InvalidArgument rejects caller input
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf rejects caller input with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound reports a missing sheet, card or stored value
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// AlreadyExistsf reports a create over an existing value
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Unavailable reports a backend that cannot be reached
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// SlotOutOfRange reports an index outside a deck of size slots
func SlotOutOfRange(index, size int) *Error {
	return Newf(CodeOutOfRange, "slot %d is outside the %d slot deck", index, size).
		WithMeta("slot", index).
		WithMeta("size", size)
}

// SlotLocked reports a replacement aimed at a role-locked slot
func SlotLocked(index int, label string) *Error {
	return Newf(CodeFailedPrecondition, "slot %d (%s) is locked", index, label).
		WithMeta("slot", index).
		WithMeta("label", label)
}

// CardNotFound reports a card ID the catalog does not know
func CardNotFound(id string) *Error {
	return Newf(CodeNotFound, "card %s not found", id).WithMeta("card_id", id)
}

// SheetNotFound reports a sheet ID with nothing stored under it
func SheetNotFound(id string) *Error {
	return Newf(CodeNotFound, "sheet %s not found", id).WithMeta("sheet_id", id)
}
