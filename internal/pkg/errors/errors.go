package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Configuration errors, raised before any network or file access
	ErrorTypeConfig ErrorType = "Configuration"

	// Credential errors
	ErrorTypeCredentialFetch ErrorType = "CredentialFetch"

	// Local file errors
	ErrorTypeLocalFileNotFound ErrorType = "LocalFileNotFound"

	// Transfer errors that escape the upload result
	ErrorTypeUnexpectedFault ErrorType = "UnexpectedFault"

	// Parsing errors
	ErrorTypeParsing ErrorType = "Parsing"
)

// AppError represents an application error with type information
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewError creates a new AppError
func NewError(errType ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether any error in err's chain is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	if appErr.Type == errType {
		return true
	}
	return IsType(appErr.Err, errType)
}

// Convenience functions for creating specific error types

// NewConfigError creates a configuration error
func NewConfigError(message string, err error) *AppError {
	return NewError(ErrorTypeConfig, message, err)
}

// NewCredentialFetchError creates an error for a failed STS token exchange
func NewCredentialFetchError(message string, err error) *AppError {
	return NewError(ErrorTypeCredentialFetch, message, err)
}

// NewLocalFileNotFoundError creates an error for a missing upload source
func NewLocalFileNotFoundError(path string, err error) *AppError {
	return NewError(ErrorTypeLocalFileNotFound, fmt.Sprintf("local file '%s' not found", path), err)
}

// NewUnexpectedFaultError creates an error for an unclassified failure
func NewUnexpectedFaultError(err error) *AppError {
	return NewError(ErrorTypeUnexpectedFault, "unexpected fault during upload", err)
}

// NewParsingError creates a parsing error
func NewParsingError(field string, value string, err error) *AppError {
	message := fmt.Sprintf("Failed to parse %s '%s'", field, value)
	return NewError(ErrorTypeParsing, message, err)
}
