//go:build unix

package identity

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

func (osResolver) Resolve(path string) (Token, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		perr := &fs.PathError{Op: "stat", Path: path, Err: err}
		switch err {
		case unix.ENOENT, unix.ENOTDIR, unix.ELOOP:
			return Token{}, errors.Mark(perr, ErrUnresolvable)
		}
		return Token{}, perr
	}

	return Token{Volume: uint64(st.Dev), Index: uint64(st.Ino)}, nil
}
