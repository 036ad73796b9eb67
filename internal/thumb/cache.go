package thumb

import "sdexplorer/internal/fileinfo"

// Cache keeps the visual rendered for each grid index so redraws that only
// move the cursor reuse it. Call Reset when the listing or the override
// changes. Not safe for concurrent use; the grid updates from the UI thread.
type Cache struct {
	selector *Selector
	opts     []Option
	thumbs   map[int]cachedThumb
}

type cachedThumb struct {
	key   entryKey
	thumb *FileThumb
}

// entryKey is what Choose and Render read from an entry
type entryKey struct {
	path         string
	name         string
	isDir        bool
	extension    string
	hasFile      bool
	casID        string
	hasThumbnail bool
}

func keyOf(entry fileinfo.FilePath) entryKey {
	k := entryKey{
		path:      entry.Path,
		name:      entry.Name,
		isDir:     entry.IsDir,
		extension: entry.Extension,
	}
	if entry.File != nil {
		k.hasFile = true
		k.casID = entry.File.CasID
		k.hasThumbnail = entry.File.HasThumbnail
	}
	return k
}

// NewCache returns an empty cache rendering through selector with opts
func NewCache(selector *Selector, opts ...Option) *Cache {
	return &Cache{
		selector: selector,
		opts:     opts,
		thumbs:   make(map[int]cachedThumb),
	}
}

// Get returns the visual for entry at index, rendering it only when the
// index is new or holds a different entry.
func (c *Cache) Get(index int, entry fileinfo.FilePath, locationID int, override bool) *FileThumb {
	key := keyOf(entry)
	if cached, ok := c.thumbs[index]; ok && cached.key == key && cached.thumb.LocationID() == locationID {
		return cached.thumb
	}
	ft := c.selector.Render(entry, locationID, override, c.opts...)
	c.thumbs[index] = cachedThumb{key: key, thumb: ft}
	return ft
}

// Reset drops every cached visual
func (c *Cache) Reset() {
	clear(c.thumbs)
}

// Len returns how many indexes hold a cached visual
func (c *Cache) Len() int {
	return len(c.thumbs)
}
