package fileinfo

import (
	"path/filepath"
	"strings"
)

// ExpandHome resolves a leading ~ against home and cleans the result.
// Input without ~ is only trimmed and cleaned.
func ExpandHome(input, home string) string {
	p := strings.TrimSpace(input)
	if p == "" {
		return ""
	}
	if p == "~" {
		return filepath.Clean(home)
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		return filepath.Join(home, p[2:])
	}
	return filepath.Clean(p)
}

// ParentPath returns the parent directory for a path.
// The root returns itself.
func ParentPath(p string) string {
	return filepath.Dir(filepath.Clean(p))
}

// IsRoot reports whether p has no parent.
func IsRoot(p string) bool {
	clean := filepath.Clean(p)
	return filepath.Dir(clean) == clean
}
