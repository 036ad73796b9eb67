package fileinfo

import (
	"os"
	"path/filepath"
	"time"
)

// FileSystem interface abstracts file system operations for better testability
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
	UserHomeDir() (string, error)
	Abs(path string) (string, error)
}

// IDGenerator produces the content id for a file
type IDGenerator interface {
	ID(path string, size int64, modified time.Time) (string, error)
}

// ThumbnailChecker reports whether a thumbnail exists for a content id
type ThumbnailChecker interface {
	Has(locationID int, casID string) bool
}

// RealFileSystem implements FileSystem using real OS operations
type RealFileSystem struct{}

func (fs *RealFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (fs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (fs *RealFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}
