//go:build windows

package identity

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

func (osResolver) Resolve(path string) (Token, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Token{}, &fs.PathError{Op: "open", Path: path, Err: err}
	}

	// FILE_FLAG_BACKUP_SEMANTICS is needed to open directories.
	h, err := windows.CreateFile(p, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		perr := &fs.PathError{Op: "open", Path: path, Err: err}
		switch err {
		case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND, windows.ERROR_CANT_RESOLVE_FILENAME:
			return Token{}, errors.Mark(perr, ErrUnresolvable)
		}
		return Token{}, perr
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return Token{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	return Token{
		Volume: uint64(info.VolumeSerialNumber),
		Index:  uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
	}, nil
}
