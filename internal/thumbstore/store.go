// Package thumbstore resolves content ids to thumbnails written by the
// thumbnail pipeline. It only reads the store; nothing here generates,
// resizes or evicts thumbnails.
package thumbstore

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/storage"
	"github.com/rs/zerolog"

	// Thumbnails are WebP; registering the decoder lets canvas images paint them.
	_ "golang.org/x/image/webp"

	"sdexplorer/internal/constants"
	apperrors "sdexplorer/internal/errors"
)

// Store maps (location, content id) to <data>/thumbnails/<location>/<cas>.webp
type Store struct {
	dataPath string
	logger   zerolog.Logger
}

// New creates a store rooted at dataPath
func New(dataPath string, logger zerolog.Logger) *Store {
	return &Store{
		dataPath: dataPath,
		logger:   logger.With().Str("component", "thumbstore").Logger(),
	}
}

// Root returns the thumbnails directory
func (s *Store) Root() string {
	return filepath.Join(s.dataPath, constants.ThumbnailCacheDirName)
}

// LocationDir returns the directory holding one location's thumbnails
func (s *Store) LocationDir(locationID int) string {
	return filepath.Join(s.Root(), strconv.Itoa(locationID))
}

// Path returns where the thumbnail for casID would live. Ids that could
// escape the location directory yield an empty path.
func (s *Store) Path(locationID int, casID string) string {
	if !validCasID(casID) {
		return ""
	}
	return filepath.Join(s.LocationDir(locationID), casID+constants.ThumbnailExtension)
}

// Has reports whether a thumbnail file exists for casID
func (s *Store) Has(locationID int, casID string) bool {
	p := s.Path(locationID, casID)
	if p == "" {
		return false
	}
	info, err := os.Stat(p)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug().Err(apperrors.NewThumbnailError("stat", p, "cannot stat thumbnail", err)).Msg("thumbnail lookup failed")
		}
		return false
	}
	return info.Mode().IsRegular()
}

// URL returns a file:// URI for the thumbnail of casID. The file does not
// have to exist yet; an empty id yields an empty string.
func (s *Store) URL(locationID int, casID string) string {
	p := s.Path(locationID, casID)
	if p == "" {
		return ""
	}
	return storage.NewFileURI(p).String()
}

// ForLocation binds the store to one location so callers can resolve by
// content id alone.
func (s *Store) ForLocation(locationID int) *LocationResolver {
	return &LocationResolver{store: s, locationID: locationID}
}

// LocationResolver resolves thumbnail URLs for a single location
type LocationResolver struct {
	store      *Store
	locationID int
}

// ThumbnailURL returns the thumbnail source for casID
func (r *LocationResolver) ThumbnailURL(casID string) string {
	return r.store.URL(r.locationID, casID)
}

// LocationID returns the bound location
func (r *LocationResolver) LocationID() int {
	return r.locationID
}

func validCasID(casID string) bool {
	if casID == "" || casID == "." || casID == ".." {
		return false
	}
	return !strings.ContainsAny(casID, `/\`)
}
