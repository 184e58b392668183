package errors

import (
	"errors"
)

// GetCode returns the code of the outermost *Error in err's chain. Plain
// errors report Internal and nil reports OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if !errors.As(err, &e) {
		return CodeInternal
	}
	return e.Code
}

// GetMeta returns the meta of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool           { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return HasCode(err, CodeInvalidArgument) }
func IsOutOfRange(err error) bool         { return HasCode(err, CodeOutOfRange) }
func IsAlreadyExists(err error) bool      { return HasCode(err, CodeAlreadyExists) }
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
