//go:build linux || darwin

package osxattr

import (
	"errors"

	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"golang.org/x/sys/unix"
)

func getxattr(path, name string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		size, err := unix.Getxattr(path, name, nil)
		if err != nil {
			return nil, classify(path, name, err, false)
		}
		if size == 0 {
			return []byte{}, nil
		}

		buf := make([]byte, size)
		n, err := unix.Getxattr(path, name, buf)
		if errors.Is(err, unix.ERANGE) && attempt < maxRetries {
			// Value grew between the probe and the read
			continue
		}
		if err != nil {
			return nil, classify(path, name, err, false)
		}
		return buf[:n], nil
	}
}

func setxattr(path, name string, value []byte) error {
	if err := unix.Setxattr(path, name, value, 0); err != nil {
		return classify(path, name, err, true)
	}
	return nil
}

func listxattr(path string) ([]string, error) {
	for attempt := 0; ; attempt++ {
		size, err := unix.Listxattr(path, nil)
		if err != nil {
			return nil, classify(path, "", err, false)
		}
		if size == 0 {
			return []string{}, nil
		}

		buf := make([]byte, size)
		n, err := unix.Listxattr(path, buf)
		if errors.Is(err, unix.ERANGE) && attempt < maxRetries {
			continue
		}
		if err != nil {
			return nil, classify(path, "", err, false)
		}
		return splitNames(buf[:n]), nil
	}
}

func removexattr(path, name string) error {
	if err := unix.Removexattr(path, name); err != nil {
		return classify(path, name, err, true)
	}
	return nil
}

// classify maps an errno from the xattr syscalls onto an AttrError code.
func classify(path, name string, err error, write bool) error {
	code := xerrors.ErrIOError
	if write {
		code = xerrors.ErrWriteFailure
	}
	message := "extended attribute operation failed"

	switch {
	case errors.Is(err, errNoAttr), errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		code = xerrors.ErrAttributeUnavailable
		message = "attribute not available"
	case errors.Is(err, unix.ENOTSUP):
		code = xerrors.ErrNotSupported
		message = "extended attributes not supported"
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		code = xerrors.ErrPermissionDenied
		message = "permission denied"
	case errors.Is(err, unix.EROFS):
		code = xerrors.ErrReadOnly
		message = "read-only filesystem"
	case errors.Is(err, unix.ENOSPC), errors.Is(err, unix.EDQUOT):
		code = xerrors.ErrNoSpace
		message = "no space left for attribute"
	}

	return &xerrors.AttrError{
		Code:    code,
		Message: message,
		Path:    path,
		Name:    name,
		Err:     err,
	}
}
