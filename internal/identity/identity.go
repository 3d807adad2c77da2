// Package identity identifies filesystem objects independently of the path
// used to reach them, so that a traversal can recognize a symlink target it
// has already seen.
package identity

import "github.com/cockroachdb/errors"

// ErrUnresolvable marks resolution failures caused by the link itself, such
// as a dangling target or a link that loops back onto itself. Such entries
// have no identity to track.
var ErrUnresolvable = errors.New("link target cannot be resolved")

// Token uniquely identifies a filesystem object on one machine. On unix it is
// the device and inode pair; on windows the volume serial number and file
// index.
type Token struct {
	Volume uint64
	Index  uint64
}

// Resolver returns the identity of the object a path refers to, following
// symbolic links.
type Resolver interface {
	Resolve(path string) (Token, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(path string) (Token, error)

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path string) (Token, error) {
	return f(path)
}

// OS returns the resolver for the running platform.
func OS() Resolver {
	return osResolver{}
}

type osResolver struct{}

// Set records tokens already seen during one traversal. It only grows.
// The zero value is not usable; create one with NewSet.
type Set struct {
	seen map[Token]struct{}
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[Token]struct{})}
}

// Add inserts tok and reports whether it was absent.
func (s *Set) Add(tok Token) bool {
	if _, ok := s.seen[tok]; ok {
		return false
	}
	s.seen[tok] = struct{}{}
	return true
}

// Len returns the number of recorded tokens.
func (s *Set) Len() int {
	return len(s.seen)
}
