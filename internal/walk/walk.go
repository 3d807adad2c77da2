// Package walk implements the depth-first directory traversal behind find.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/taigrr/gofind/internal/filter"
	"github.com/taigrr/gofind/internal/identity"
	"github.com/taigrr/gofind/internal/types"
)

// ErrorHandler is consulted when reading a directory or resolving a symlink
// fails. Returning nil abandons only the failing subtree and the walk goes on
// with the next sibling; returning an error stops the walk with that error.
type ErrorHandler func(path string, err error) error

// Stats summarizes one walk.
type Stats struct {
	Visited       int
	Matched       int
	CyclesSkipped int
	Errors        int
}

// Option configures a Walker.
type Option func(*Walker)

// WithResolver replaces the platform identity resolver.
func WithResolver(r identity.Resolver) Option {
	return func(w *Walker) {
		w.resolver = r
	}
}

// WithErrorHandler installs h. Without a handler the first error ends the walk.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Walker) {
		w.onError = h
	}
}

// Walker walks directory trees and reports entries that pass its filter.
// A Walker is immutable; each Walk call keeps its own visited set, so
// concurrent walks do not interfere.
type Walker struct {
	filter   *filter.Filter
	resolver identity.Resolver
	onError  ErrorHandler
}

// New creates a Walker for the given filter configuration.
func New(config types.FilterConfig, opts ...Option) *Walker {
	w := &Walker{
		filter:   filter.New(config),
		resolver: identity.OS(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk visits start and everything below it in pre-order, calling emit for
// each matching path. Children appear in the order the directory returns
// them. Paths are built as parent + separator + name, so the start path is
// reported exactly as given.
//
// Only real directories are descended into. A symlink is resolved to the
// identity of its target; a target seen before causes the link to be skipped
// entirely, which stops symlink cycles. An error from emit ends the walk
// immediately and is returned unchanged.
func (w *Walker) Walk(start string, emit func(path string) error) (Stats, error) {
	r := &run{
		Walker:  w,
		visited: identity.NewSet(),
		emit:    emit,
	}

	// The start path is followed if it is a symlink.
	info, err := os.Stat(start)
	if err != nil {
		log.Warn("Cannot stat start path", "path", start, "error", err)
		return r.stats, nil
	}

	r.stats.Visited++
	if w.filter.Match(start, info.Mode()) {
		if err := r.output(start); err != nil {
			return r.stats, err
		}
	}

	if !info.IsDir() {
		return r.stats, nil
	}

	err = r.walkDir(start)
	return r.stats, err
}

type run struct {
	*Walker
	visited *identity.Set
	emit    func(path string) error
	stats   Stats
}

func (r *run) walkDir(dir string) error {
	entries, err := readDir(dir)
	if err != nil {
		return r.fail(dir, err)
	}

	for _, entry := range entries {
		path := join(dir, entry.Name())
		mode := entry.Type()

		if mode&fs.ModeSymlink != 0 {
			tok, err := r.resolver.Resolve(path)
			switch {
			case err == nil:
				if !r.visited.Add(tok) {
					r.stats.CyclesSkipped++
					log.Debug("Skipping already visited link target", "path", path)
					continue
				}
			case errors.Is(err, identity.ErrUnresolvable):
				log.Debug("Link target not resolvable, not tracking", "path", path, "error", err)
			default:
				if err := r.fail(path, err); err != nil {
					return err
				}
				continue
			}
		}

		r.stats.Visited++
		if r.filter.Match(path, mode) {
			if err := r.output(path); err != nil {
				return err
			}
		}

		if mode.IsDir() {
			if err := r.walkDir(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *run) output(path string) error {
	r.stats.Matched++
	return r.emit(path)
}

func (r *run) fail(path string, err error) error {
	r.stats.Errors++

	// OS errors already name the path.
	var perr *fs.PathError
	if !errors.As(err, &perr) {
		err = errors.Wrapf(err, "%s", path)
	}

	if r.onError == nil {
		return err
	}
	return r.onError(path, err)
}

// readDir returns the entries of dir unsorted. The handle is closed before
// returning so none stays open while the caller descends.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

func join(parent, name string) string {
	if parent != "" && os.IsPathSeparator(parent[len(parent)-1]) {
		return parent + name
	}
	return parent + string(filepath.Separator) + name
}
