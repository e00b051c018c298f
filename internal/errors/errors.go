// Package errors provides application error types for json2types.
//
// Error creation and wrapping come from github.com/cockroachdb/errors so that
// wrapped errors keep stack traces and user-facing hints.
package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Standard application errors
var (
	ErrEmptyInput          = crdb.New("input is empty or contains only whitespace")
	ErrInvalidJSON         = crdb.New("invalid JSON format")
	ErrMultipleJSON        = crdb.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound        = crdb.New("file not found")
	ErrFileEmpty           = crdb.New("file is empty")
	ErrNoInput             = crdb.New("no input provided: please pass a file or pipe JSON data to stdin")
	ErrInvalidFilePath     = crdb.New("invalid file path")
	ErrUnsupportedLanguage = crdb.New("unsupported language")
	ErrTooDeep             = crdb.New("JSON document is nested too deeply")
)

// Re-exported helpers so callers need a single errors import.
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	Is          = crdb.Is
	As          = crdb.As
	GetAllHints = crdb.GetAllHints
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeLanguage ErrorType = "language"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError of the same type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newAppError(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return newAppError(ErrorTypeInput, message, err)
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return newAppError(ErrorTypeParsing, message, err)
}

// NewLanguageError creates a new error for a renderer lookup failure
func NewLanguageError(message string, err error) *AppError {
	return newAppError(ErrorTypeLanguage, message, err)
}

// NewFormatError creates a new error related to code formatting
func NewFormatError(message string, err error) *AppError {
	return newAppError(ErrorTypeFormat, message, err)
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return newAppError(ErrorTypeOutput, message, err)
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return newAppError(ErrorTypeConfig, message, err)
}

// UserFriendlyError returns a user-friendly error message, followed by any hints
// attached anywhere in the error chain.
func UserFriendlyError(err error) string {
	msg := friendlyMessage(err)
	hints := crdb.GetAllHints(err)
	if len(hints) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for _, h := range hints {
		b.WriteString("\nHint: ")
		b.WriteString(h)
	}
	return b.String()
}

func friendlyMessage(err error) string {
	var appErr *AppError
	if crdb.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeLanguage:
			return fmt.Sprintf("Language error: %s", appErr.Message)
		case ErrorTypeFormat:
			return fmt.Sprintf("Code formatting error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	switch {
	case crdb.Is(err, ErrEmptyInput):
		return "Error: The input is empty. Please provide valid JSON data."
	case crdb.Is(err, ErrInvalidJSON):
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	case crdb.Is(err, ErrMultipleJSON):
		return "Error: Multiple JSON values found. Please provide a single JSON document."
	case crdb.Is(err, ErrFileNotFound):
		return "Error: The specified file could not be found. Please check the file path."
	case crdb.Is(err, ErrFileEmpty):
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	case crdb.Is(err, ErrNoInput):
		return "Error: No input provided. Please pass a file or pipe JSON data to stdin."
	case crdb.Is(err, ErrInvalidFilePath):
		return "Error: Invalid file path. Please provide a valid file path."
	case crdb.Is(err, ErrUnsupportedLanguage):
		return "Error: The requested language is not supported."
	case crdb.Is(err, ErrTooDeep):
		return "Error: The JSON document is nested too deeply."
	}

	return fmt.Sprintf("Error: %v", err)
}
