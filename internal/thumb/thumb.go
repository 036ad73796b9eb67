// Package thumb decides how a directory entry is drawn in the explorer grid:
// a folder glyph, its thumbnail image, an extension icon, or nothing.
package thumb

import (
	"fyne.io/fyne/v2"

	"sdexplorer/internal/fileinfo"
)

// Kind is the visual chosen for an entry
type Kind int

const (
	KindEmpty Kind = iota
	KindFolder
	KindThumbnail
	KindIcon
)

func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindThumbnail:
		return "thumbnail"
	case KindIcon:
		return "icon"
	default:
		return "empty"
	}
}

// Resolver turns a content id into an image source URL
type Resolver interface {
	ThumbnailURL(casID string) string
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(casID string) string

func (f ResolverFunc) ThumbnailURL(casID string) string { return f(casID) }

// Registry looks up the icon for a normalized extension
type Registry interface {
	Lookup(ext string) (fyne.Resource, bool)
}

// Choose applies the first matching rule:
//  1. directories get the folder glyph
//  2. files with a thumbnail, or any file when override is set, get the thumbnail
//  3. files whose extension is registered get that icon
//  4. everything else is empty
//
// The thumbnail rule needs a file record to take the content id from.
func Choose(entry fileinfo.FilePath, override bool, registry Registry) Kind {
	if entry.IsDir {
		return KindFolder
	}
	if entry.File != nil && (entry.File.HasThumbnail || override) {
		return KindThumbnail
	}
	if registry != nil {
		if _, ok := registry.Lookup(entry.Extension); ok {
			return KindIcon
		}
	}
	return KindEmpty
}
