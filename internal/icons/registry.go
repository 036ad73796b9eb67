// Package icons maps file extensions to icon resources.
package icons

import (
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	apperrors "sdexplorer/internal/errors"
	"sdexplorer/internal/fileinfo"
)

// Registry is a map from normalized extension (lower case, no dot) to icon.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	icons map[string]fyne.Resource
}

// New returns an empty registry
func New() *Registry {
	return &Registry{icons: make(map[string]fyne.Resource)}
}

// Register adds or replaces the icon for ext. Empty keys and nil resources are ignored.
func (r *Registry) Register(ext string, res fyne.Resource) {
	key := fileinfo.NormalizeExtension(ext)
	if key == "" || res == nil {
		return
	}
	r.mu.Lock()
	r.icons[key] = res
	r.mu.Unlock()
}

// Lookup returns the icon registered for ext
func (r *Registry) Lookup(ext string) (fyne.Resource, bool) {
	key := fileinfo.NormalizeExtension(ext)
	if key == "" {
		return nil, false
	}
	r.mu.RLock()
	res, ok := r.icons[key]
	r.mu.RUnlock()
	return res, ok
}

// Len returns the number of registered extensions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.icons)
}

// Extensions returns the registered keys in sorted order
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.icons))
	for k := range r.icons {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// LoadOverrides reads icon files (svg/png) for the given extensions and
// registers them over any existing entry. Files that fail to load are
// logged, skipped and returned.
func (r *Registry) LoadOverrides(files map[string]string, logger zerolog.Logger) []error {
	var errs []error
	for ext, path := range files {
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			appErr := apperrors.NewIconError("load_override", path, "cannot load icon for ."+fileinfo.NormalizeExtension(ext), err)
			logger.Warn().Err(appErr).Msg("icon override skipped")
			errs = append(errs, appErr)
			continue
		}
		r.Register(ext, res)
		logger.Debug().Str("ext", fileinfo.NormalizeExtension(ext)).Str("path", path).Msg("icon override loaded")
	}
	return errs
}

var builtinGroups = map[fyne.ThemeIconName][]string{
	theme.IconNameFileImage:       {"png", "jpg", "jpeg", "gif", "webp", "bmp", "tif", "tiff", "svg", "heic", "heif", "ico", "raw", "cr2", "nef"},
	theme.IconNameFileVideo:       {"mp4", "mov", "mkv", "avi", "webm", "m4v", "wmv", "flv", "mpg", "mpeg"},
	theme.IconNameFileAudio:       {"mp3", "wav", "flac", "ogg", "m4a", "aac", "opus", "aiff"},
	theme.IconNameFileText:        {"txt", "md", "rtf", "log", "csv", "json", "yaml", "yml", "toml", "xml", "html", "css", "js", "ts", "tsx", "go", "rs", "py", "sh"},
	theme.IconNameFileApplication: {"exe", "app", "dmg", "msi", "deb", "rpm", "apk", "bin", "appimage"},
	theme.IconNameDocument:        {"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt", "ods", "odp", "epub"},
	theme.IconNameStorage:         {"zip", "tar", "gz", "tgz", "bz2", "xz", "7z", "rar", "zst", "iso"},
}

// Builtin returns a registry populated with theme icons for common extensions
func Builtin() *Registry {
	r := New()
	for name, exts := range builtinGroups {
		res := theme.Current().Icon(name)
		for _, ext := range exts {
			r.Register(ext, res)
		}
	}
	return r
}
