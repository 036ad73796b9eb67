package fileinfo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHome(t *testing.T) {
	home := filepath.Join(string(filepath.Separator)+"home", "neko")

	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"~", home},
		{"~/Pictures", filepath.Join(home, "Pictures")},
		{" ~/Pictures/../Music ", filepath.Join(home, "Music")},
		{filepath.Join(home, "a", ".."), home},
		{"~other", "~other"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ExpandHome(tc.input, home), "input %q", tc.input)
	}
}

func TestParentPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dir")
	joined := filepath.Join(dir, "file.txt")

	assert.Equal(t, dir, ParentPath(joined))
	assert.Equal(t, dir, ParentPath(joined+string(filepath.Separator)))
	assert.False(t, IsRoot(joined))

	root := filepath.VolumeName(dir) + string(filepath.Separator)
	assert.Equal(t, root, ParentPath(root))
	assert.True(t, IsRoot(root))
}
