// Package filter decides whether a filesystem entry satisfies the -name,
// -iname and -type constraints of a find invocation.
package filter

import (
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taigrr/gofind/internal/glob"
	"github.com/taigrr/gofind/internal/types"
)

// Filter evaluates a FilterConfig against entries. It holds no mutable
// state and is safe for concurrent use.
type Filter struct {
	config types.FilterConfig

	// Patterns converted once so matching does not allocate.
	name, iname string
}

// New creates a Filter for config. The -iname pattern in config must
// already be folded with Fold.
func New(config types.FilterConfig) *Filter {
	return &Filter{
		config: config,
		name:   string(config.NamePattern),
		iname:  string(config.INamePattern),
	}
}

// Config returns the configuration the filter was built from.
func (f *Filter) Config() types.FilterConfig {
	return f.config
}

// Match reports whether the entry at path with the given type bits passes
// every configured constraint. Only the final path component takes part in
// name matching.
func (f *Filter) Match(path string, mode fs.FileMode) bool {
	switch f.config.Type {
	case types.TypeFile:
		if !mode.IsRegular() {
			return false
		}
	case types.TypeDirectory:
		if !mode.IsDir() {
			return false
		}
	}

	if f.config.NamePattern == nil && f.config.INamePattern == nil {
		return true
	}

	name, ok := FinalComponent(path)
	if !ok {
		return false
	}

	if f.config.NamePattern != nil && !glob.MatchString(name, f.name) {
		return false
	}

	if f.config.INamePattern != nil {
		if !utf8.ValidString(name) {
			return false
		}
		if !glob.MatchString(Fold(name), f.iname) {
			return false
		}
	}

	return true
}

// Fold lowercases s using Unicode full case mapping, including the final
// sigma rule. Casers are stateful, so each call builds its own.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// FinalComponent returns the last element of path. It reports false when the
// path has no nameable final element: a root, an empty path, "." or "..".
// Trailing separators and trailing "." elements are ignored, so "a/" and
// "a/." both yield "a".
func FinalComponent(path string) (string, bool) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]

	for {
		rest = trimTrailingSeparators(rest)
		if rest == "." {
			return "", false
		}
		n := len(rest)
		if n >= 2 && rest[n-1] == '.' && os.IsPathSeparator(rest[n-2]) {
			rest = rest[:n-1]
			continue
		}
		break
	}

	i := len(rest) - 1
	for i >= 0 && !os.IsPathSeparator(rest[i]) {
		i--
	}
	name := rest[i+1:]

	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}

func trimTrailingSeparators(p string) string {
	end := len(p)
	for end > 1 && os.IsPathSeparator(p[end-1]) {
		end--
	}
	return p[:end]
}
