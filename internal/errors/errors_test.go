package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypeString(t *testing.T) {
	testCases := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeConfig, "config"},
		{ErrorTypeFileSystem, "filesystem"},
		{ErrorTypeUI, "ui"},
		{ErrorTypeWatcher, "watcher"},
		{ErrorTypeTheme, "theme"},
		{ErrorTypeThumbnail, "thumbnail"},
		{ErrorTypeIcon, "icon"},
		{ErrorType(999), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.errorType.String())
	}
}

func TestAppErrorError(t *testing.T) {
	err := &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: "open_dir",
		Path:      "/home/user/photos",
		Message:   "permission denied",
		Err:       errors.New("access denied"),
	}
	assert.Equal(t, "filesystem error in open_dir [/home/user/photos]: permission denied", err.Error())

	err2 := &AppError{
		Type:      ErrorTypeConfig,
		Operation: "load_config",
		Message:   "invalid JSON",
	}
	assert.Equal(t, "config error in load_config: invalid JSON", err2.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := NewUIError("render", "rendering failed", originalErr)
	assert.Same(t, originalErr, appErr.Unwrap())

	assert.Nil(t, NewUIError("render", "rendering failed", nil).Unwrap())
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	testCases := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantPath string
	}{
		{"config", NewConfigError("load", "bad", cause), ErrorTypeConfig, ""},
		{"filesystem", NewFileSystemError("open_dir", "/tmp/x", "bad", cause), ErrorTypeFileSystem, "/tmp/x"},
		{"ui", NewUIError("render", "bad", cause), ErrorTypeUI, ""},
		{"watcher", NewWatcherError("add", "/tmp/w", "bad", cause), ErrorTypeWatcher, "/tmp/w"},
		{"theme", NewThemeError("load_font", "bad", cause), ErrorTypeTheme, ""},
		{"thumbnail", NewThumbnailError("stat", "/data/thumbnails/1/abc.webp", "bad", cause), ErrorTypeThumbnail, "/data/thumbnails/1/abc.webp"},
		{"icon", NewIconError("load", "/icons/png.svg", "bad", cause), ErrorTypeIcon, "/icons/png.svg"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantType, tc.err.Type)
			assert.Equal(t, tc.wantPath, tc.err.Path)
			assert.Equal(t, "bad", tc.err.Message)
			assert.Same(t, cause, tc.err.Err)
		})
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := errors.New("original")
	wrapped := fmt.Errorf("loading: %w", NewConfigError("test", "test message", originalErr))

	assert.True(t, errors.Is(wrapped, originalErr))

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrorTypeConfig, appErr.Type)

	assert.True(t, IsType(wrapped, ErrorTypeConfig))
	assert.False(t, IsType(wrapped, ErrorTypeFileSystem))
	assert.False(t, IsType(originalErr, ErrorTypeConfig))
}
