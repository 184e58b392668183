package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode maps a code to the process exit status used by the deck CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeOutOfRange:
		return 2
	case CodeNotFound:
		return 3
	case CodeAlreadyExists, CodeFailedPrecondition:
		return 5
	case CodeUnavailable:
		return 4
	default:
		return 1
	}
}
