package util

import (
	"errors"
	"io/fs"
	"os"
)

// CheckFileExists reports whether anything is present at fpath.
// Only a definite "does not exist" counts as absent; a path that cannot be
// inspected is reported as present so it is never written over blindly.
func CheckFileExists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !errors.Is(err, fs.ErrNotExist)
}
