package fileinfo

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// File is the content record attached to a non-directory FilePath.
type File struct {
	CasID        string // content-addressable id, keys the thumbnail store
	HasThumbnail bool   // a thumbnail for CasID exists in the store
	Size         int64
}

// FilePath is one entry of an opened directory.
// File is set only when IsDir is false.
type FilePath struct {
	LocationID int
	Name       string
	Path       string
	IsDir      bool
	Extension  string // lower case, no leading dot
	Size       int64
	Modified   time.Time
	Hidden     bool
	File       *File
}

// DirectoryWithContents is the result of opening a directory
type DirectoryWithContents struct {
	Directory FilePath
	Contents  []FilePath
}

// NormalizeExtension lower-cases ext and strips surrounding spaces and a leading dot.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// ExtensionOf returns the normalized extension of a file name.
// Dotfiles without a second dot (".bashrc") have no extension.
func ExtensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return NormalizeExtension(ext)
}

// IsHidden reports dotfiles and, on Windows, files with the hidden attribute
func IsHidden(path, name string) bool {
	if strings.HasPrefix(name, ".") && name != ".." {
		return true
	}
	return runtime.GOOS == "windows" && IsWindowsHidden(path)
}

// FormatFileSize formats file size in human-readable format
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
