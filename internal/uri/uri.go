// Package uri builds file URIs for matched paths.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI returns a file:// URI for path. Relative paths are made absolute
// against the working directory; if that fails the path is used as is.
func FileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	slashed := filepath.ToSlash(path)

	// Windows drive paths need a leading slash: file:///C:/dir
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}

	// Escape each segment, keeping slashes as slashes
	parts := strings.Split(slashed, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return "file://" + strings.Join(parts, "/")
}
