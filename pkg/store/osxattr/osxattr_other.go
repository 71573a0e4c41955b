//go:build !linux && !darwin

package osxattr

import (
	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
)

func getxattr(path, name string) ([]byte, error) {
	return nil, xerrors.NewNotSupportedError(path, nil)
}

func setxattr(path, name string, value []byte) error {
	return xerrors.NewNotSupportedError(path, nil)
}

func listxattr(path string) ([]string, error) {
	return nil, xerrors.NewNotSupportedError(path, nil)
}

func removexattr(path, name string) error {
	return xerrors.NewNotSupportedError(path, nil)
}
