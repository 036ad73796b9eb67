package fileinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func names(entries []FilePath) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortFilePaths(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixture := func() []FilePath {
		return []FilePath{
			{Name: "b.txt", Extension: "txt", Size: 30, Modified: base.Add(2 * time.Hour)},
			{Name: "Photos", IsDir: true, Modified: base},
			{Name: "a.png", Extension: "png", Size: 10, Modified: base.Add(3 * time.Hour)},
			{Name: "c.jpg", Extension: "jpg", Size: 20, Modified: base.Add(1 * time.Hour)},
			{Name: "Archive", IsDir: true, Modified: base.Add(time.Hour)},
		}
	}

	testCases := []struct {
		name     string
		opts     SortOptions
		expected []string
	}{
		{
			name:     "name asc dirs first",
			opts:     SortOptions{SortBy: "name", SortOrder: "asc", DirectoriesFirst: true},
			expected: []string{"Archive", "Photos", "a.png", "b.txt", "c.jpg"},
		},
		{
			name:     "name desc dirs first",
			opts:     SortOptions{SortBy: "name", SortOrder: "desc", DirectoriesFirst: true},
			expected: []string{"Photos", "Archive", "c.jpg", "b.txt", "a.png"},
		},
		{
			name:     "name asc mixed",
			opts:     SortOptions{SortBy: "name", SortOrder: "asc"},
			expected: []string{"a.png", "Archive", "b.txt", "c.jpg", "Photos"},
		},
		{
			name:     "size asc",
			opts:     SortOptions{SortBy: "size", SortOrder: "asc", DirectoriesFirst: true},
			expected: []string{"Archive", "Photos", "a.png", "c.jpg", "b.txt"},
		},
		{
			name:     "modified desc",
			opts:     SortOptions{SortBy: "modified", SortOrder: "desc", DirectoriesFirst: true},
			expected: []string{"Archive", "Photos", "a.png", "b.txt", "c.jpg"},
		},
		{
			name:     "extension asc",
			opts:     SortOptions{SortBy: "extension", SortOrder: "asc", DirectoriesFirst: true},
			expected: []string{"Archive", "Photos", "c.jpg", "a.png", "b.txt"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries := fixture()
			SortFilePaths(entries, tc.opts)
			assert.Equal(t, tc.expected, names(entries))
		})
	}
}
