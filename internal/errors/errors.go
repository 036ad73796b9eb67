package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies where an error came from
type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypeUI
	ErrorTypeWatcher
	ErrorTypeTheme
	ErrorTypeThumbnail
	ErrorTypeIcon
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeUI:
		return "ui"
	case ErrorTypeWatcher:
		return "watcher"
	case ErrorTypeTheme:
		return "theme"
	case ErrorTypeThumbnail:
		return "thumbnail"
	case ErrorTypeIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type      ErrorType
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether any AppError in err's chain has the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Type == t
}

func newError(t ErrorType, operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      t,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, message string, err error) *AppError {
	return newError(ErrorTypeConfig, operation, "", message, err)
}

// NewFileSystemError creates a new filesystem error
func NewFileSystemError(operation, path, message string, err error) *AppError {
	return newError(ErrorTypeFileSystem, operation, path, message, err)
}

// NewUIError creates a new UI error
func NewUIError(operation, message string, err error) *AppError {
	return newError(ErrorTypeUI, operation, "", message, err)
}

// NewWatcherError creates a new watcher error
func NewWatcherError(operation, path, message string, err error) *AppError {
	return newError(ErrorTypeWatcher, operation, path, message, err)
}

// NewThemeError creates a new theme error
func NewThemeError(operation, message string, err error) *AppError {
	return newError(ErrorTypeTheme, operation, "", message, err)
}

// NewThumbnailError creates an error for thumbnail store lookups
func NewThumbnailError(operation, path, message string, err error) *AppError {
	return newError(ErrorTypeThumbnail, operation, path, message, err)
}

// NewIconError creates an error for icon resources that could not be loaded
func NewIconError(operation, path, message string, err error) *AppError {
	return newError(ErrorTypeIcon, operation, path, message, err)
}
