package rules

import (
	"path"
	"strings"
)

// Entry is a template entry as seen by the selector
type Entry struct {
	// Path is slash-separated and relative to the template root
	Path  string
	IsDir bool
}

// MatchPattern checks if an entry matches a pattern with our conventions
func MatchPattern(pattern string, entry Entry) bool {
	if pattern == "" {
		return false
	}

	// Directory matching - pattern ends with /
	if strings.HasSuffix(pattern, "/") {
		if !entry.IsDir {
			return false
		}
		pattern = strings.TrimSuffix(pattern, "/")
	}

	// Path pattern - contains /
	if strings.Contains(pattern, "/") {
		matched, _ := path.Match(strings.TrimPrefix(pattern, "/"), entry.Path)
		return matched
	}

	// Simple name pattern
	matched, _ := path.Match(pattern, path.Base(entry.Path))
	return matched
}

// MatchAny reports whether any pattern matches the entry
func MatchAny(patterns []string, entry Entry) bool {
	for _, p := range patterns {
		if MatchPattern(p, entry) {
			return true
		}
	}
	return false
}

// ValidatePattern reports whether pattern is usable
func ValidatePattern(pattern string) bool {
	trimmed := strings.TrimSuffix(pattern, "/")
	if strings.TrimSpace(trimmed) == "" {
		return false
	}
	_, err := path.Match(trimmed, "")
	return err == nil
}
