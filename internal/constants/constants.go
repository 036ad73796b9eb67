package constants

import "time"

// Application constants
const (
	ApplicationName  = "sdexplorer"
	ApplicationTitle = "Explorer"
)

// UI constants
const (
	// Window dimensions
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 720

	// Folder glyph is always drawn at this size
	FolderGlyphSize = 100

	// Extension icons never grow past this width
	DefaultIconMaxWidth = 170

	// Grid cell (thumbnail + name)
	DefaultCellSize = 140
	MinCellSize     = 64

	// Cursor settings
	DefaultCursorThickness = 2
	MinPadding             = 2
)

// Watcher constants
const WatcherDebounce = 250 * time.Millisecond

// Thumbnail store layout: <data>/thumbnails/<locationID>/<casID>.webp
const (
	ThumbnailCacheDirName = "thumbnails"
	ThumbnailExtension    = ".webp"
)

// Content id sampling
const (
	CasIDLength           = 16
	CasMinimumFileSize    = 100 * 1024
	CasSampleCount        = 4
	CasSampleSize         = 10 * 1024
	CasHeaderOrFooterSize = 8 * 1024
	CasCacheSize          = 4096
)

// Default cursor color
var DefaultCursorColor = [4]uint8{255, 255, 255, 255}

// Theme constants
const (
	DefaultFontSize  = 14
	DarkThemeDefault = true
)

// Configuration constants
const (
	ConfigFileName          = "config.json"
	DefaultSortBy           = "name"
	DefaultSortOrder        = "asc"
	DefaultDirectoriesFirst = true
	DefaultShowHiddenFiles  = false
	DefaultCursorType       = "border"
	DefaultLocationID       = 1
)
