// Package errors provides the error taxonomy of the status fetch path.
//
// Every failure is reported as an *Error carrying an ErrorCode, so callers can
// branch on the failure kind with errors.Is or by inspecting Code directly.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a category of error that can occur while fetching a status.
type ErrorCode string

const (
	// ErrCodeCommandFailed indicates the remote command exited with a non-zero status.
	ErrCodeCommandFailed ErrorCode = "COMMAND_FAILED"

	// ErrCodeEncoding indicates the command output is not valid UTF-8 text.
	ErrCodeEncoding ErrorCode = "ENCODING_ERROR"

	// ErrCodeParse indicates the output is not a structurally valid interface status.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeProcessSpawn indicates the ssh client process could not be started.
	ErrCodeProcessSpawn ErrorCode = "PROCESS_SPAWN_ERROR"

	// ErrCodeConnection indicates the in-process SSH client could not connect or authenticate.
	ErrCodeConnection ErrorCode = "CONNECTION_ERROR"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)

// Error represents a classified fetch error with an error code and optional cause.
//
// Stderr and ExitCode are only populated for ErrCodeCommandFailed.
type Error struct {
	Code     ErrorCode
	Message  string
	Cause    error
	Stderr   string
	ExitCode int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// NewCommandFailedError creates an error for a remote command that exited non-zero.
// Stderr keeps the text verbatim; only the message trims surrounding whitespace.
func NewCommandFailedError(exitCode int, stderr string) *Error {
	return &Error{
		Code:     ErrCodeCommandFailed,
		Message:  fmt.Sprintf("ssh command failed with exit code %d: %s", exitCode, strings.TrimSpace(stderr)),
		Stderr:   stderr,
		ExitCode: exitCode,
	}
}

// NewEncodingError creates an error for output that is not valid text.
func NewEncodingError(message string) *Error {
	return New(ErrCodeEncoding, message)
}

// NewParseError creates an error carrying the underlying parse diagnostic.
func NewParseError(message string, cause error) *Error {
	return Wrap(ErrCodeParse, message, cause)
}

// NewProcessSpawnError creates an error for a process that could not be started.
func NewProcessSpawnError(message string, cause error) *Error {
	return Wrap(ErrCodeProcessSpawn, message, cause)
}

// NewConnectionError creates an error for a failed SSH connection.
func NewConnectionError(message string, cause error) *Error {
	return Wrap(ErrCodeConnection, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}
