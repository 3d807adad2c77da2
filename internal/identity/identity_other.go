//go:build !unix && !windows

package identity

import (
	"io/fs"

	"github.com/cockroachdb/errors"
)

var errNoIdentity = errors.New("file identity is not supported on this platform")

// Platforms without inode-like identifiers get no cycle tracking.
func (osResolver) Resolve(path string) (Token, error) {
	return Token{}, errors.Mark(&fs.PathError{Op: "stat", Path: path, Err: errNoIdentity}, ErrUnresolvable)
}
