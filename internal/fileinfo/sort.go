package fileinfo

import (
	"sort"
	"strings"
)

// SortOptions mirrors the sort section of the config
type SortOptions struct {
	SortBy           string // "name", "size", "modified", "extension"
	SortOrder        string // "asc", "desc"
	DirectoriesFirst bool
}

// SortFilePaths sorts entries in place. Ties fall back to case-insensitive name.
func SortFilePaths(entries []FilePath, opts SortOptions) {
	desc := opts.SortOrder == "desc"

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if opts.DirectoriesFirst && a.IsDir != b.IsDir {
			return a.IsDir
		}

		cmp := compareBy(opts.SortBy, a, b)
		if cmp == 0 {
			cmp = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareBy(key string, a, b FilePath) int {
	switch key {
	case "size":
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	case "modified":
		return a.Modified.Compare(b.Modified)
	case "extension":
		return strings.Compare(a.Extension, b.Extension)
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}
