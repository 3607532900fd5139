package demo

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Accepts reports whether fileName matches any of the accept patterns.
// Matching is case-insensitive and only looks at the base name.
func Accepts(fileName string, patterns []string) bool {
	base := strings.ToLower(BaseName(fileName))
	if base == "" || base == "." || base == "/" {
		return false
	}
	for _, pattern := range patterns {
		pattern = strings.ToLower(pattern)
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// BaseName strips any client-side directory from an uploaded file name.
// Some browsers send `C:\fakepath\report.pdf`.
func BaseName(fileName string) string {
	return path.Base(strings.ReplaceAll(fileName, "\\", "/"))
}

// AcceptAttr renders patterns as an HTML file input accept attribute,
// e.g. "*.pdf", "*.txt" -> ".pdf,.txt".
func AcceptAttr(patterns []string) string {
	exts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if ext := filepath.Ext(p); ext != "" {
			exts = append(exts, ext)
		}
	}
	return strings.Join(exts, ",")
}
