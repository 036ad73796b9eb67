package fileinfo

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	apperrors "sdexplorer/internal/errors"
)

// ListOptions controls which entries OpenDir returns and in which order
type ListOptions struct {
	ShowHidden     bool
	IgnorePatterns []string
	Sort           SortOptions
}

// Explorer lists directories of a location and annotates files with their
// content id and thumbnail presence.
type Explorer struct {
	fs     FileSystem
	ids    IDGenerator
	thumbs ThumbnailChecker
	opts   ListOptions
	logger zerolog.Logger
}

// NewExplorer creates an Explorer. ids and thumbs may be nil, in which case
// files carry no content id and never report a thumbnail.
func NewExplorer(fs FileSystem, ids IDGenerator, thumbs ThumbnailChecker, opts ListOptions, logger zerolog.Logger) *Explorer {
	if fs == nil {
		fs = &RealFileSystem{}
	}
	return &Explorer{
		fs:     fs,
		ids:    ids,
		thumbs: thumbs,
		opts:   opts,
		logger: logger.With().Str("component", "explorer").Logger(),
	}
}

// SetOptions replaces the listing options used by later OpenDir calls
func (e *Explorer) SetOptions(opts ListOptions) {
	e.opts = opts
}

// Options returns the current listing options
func (e *Explorer) Options() ListOptions {
	return e.opts
}

// OpenDir lists dir as part of the given location.
func (e *Explorer) OpenDir(ctx context.Context, locationID int, dir string) (DirectoryWithContents, error) {
	abs, err := e.fs.Abs(dir)
	if err != nil {
		return DirectoryWithContents{}, apperrors.NewFileSystemError("open_dir", dir, "cannot resolve path", err)
	}

	info, err := e.fs.Stat(abs)
	if err != nil {
		return DirectoryWithContents{}, apperrors.NewFileSystemError("open_dir", abs, "directory not found", err)
	}
	if !info.IsDir() {
		return DirectoryWithContents{}, apperrors.NewFileSystemError("open_dir", abs, "not a directory", nil)
	}

	entries, err := e.fs.ReadDir(abs)
	if err != nil {
		return DirectoryWithContents{}, apperrors.NewFileSystemError("open_dir", abs, "cannot read directory", err)
	}

	result := DirectoryWithContents{
		Directory: FilePath{
			LocationID: locationID,
			Name:       filepath.Base(abs),
			Path:       abs,
			IsDir:      true,
			Modified:   info.ModTime(),
		},
		Contents: make([]FilePath, 0, len(entries)),
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return DirectoryWithContents{}, err
		}

		name := entry.Name()
		if e.ignored(name) {
			continue
		}
		fullPath := filepath.Join(abs, name)
		hidden := IsHidden(fullPath, name)
		if hidden && !e.opts.ShowHidden {
			continue
		}

		entryInfo, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info
			e.logger.Debug().Err(err).Str("path", fullPath).Msg("skipping entry")
			continue
		}

		fp := FilePath{
			LocationID: locationID,
			Name:       name,
			Path:       fullPath,
			IsDir:      entry.IsDir(),
			Size:       entryInfo.Size(),
			Modified:   entryInfo.ModTime(),
			Hidden:     hidden,
		}
		if !fp.IsDir {
			fp.Extension = ExtensionOf(name)
			fp.File = e.describeFile(locationID, fp)
		}
		result.Contents = append(result.Contents, fp)
	}

	SortFilePaths(result.Contents, e.opts.Sort)

	e.logger.Debug().
		Str("path", abs).
		Int("location", locationID).
		Int("entries", len(result.Contents)).
		Msg("directory opened")
	return result, nil
}

func (e *Explorer) describeFile(locationID int, fp FilePath) *File {
	file := &File{Size: fp.Size}
	if e.ids == nil {
		return file
	}

	casID, err := e.ids.ID(fp.Path, fp.Size, fp.Modified)
	if err != nil {
		// Unreadable files still list; they just cannot have a thumbnail
		e.logger.Debug().Err(err).Str("path", fp.Path).Msg("content id unavailable")
		return file
	}
	file.CasID = casID
	if e.thumbs != nil {
		file.HasThumbnail = e.thumbs.Has(locationID, casID)
	}
	return file
}

func (e *Explorer) ignored(name string) bool {
	for _, pattern := range e.opts.IgnorePatterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
