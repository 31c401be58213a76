package mdview

import "strings"

// PathFromQuery derives the document path from a page query string such as
// "?view=docs/intro.md". The query must start with "?"; a leading "view="
// is dropped. It returns "" when no usable path is present, including when
// the candidate fails ValidPath.
func PathFromQuery(query string) string {
	path, ok := strings.CutPrefix(query, "?")
	if !ok {
		return ""
	}
	path = strings.TrimPrefix(path, ViewPrefix)
	if !ValidPath(path) {
		return ""
	}
	return path
}

// ValidPath reports whether path may be fetched. Paths that start with a dot
// or contain a dot-prefixed segment ("/.") are rejected so a query cannot
// reach hidden files or climb to a parent directory.
func ValidPath(path string) bool {
	return !strings.HasPrefix(path, ".") && !strings.Contains(path, "/.")
}
