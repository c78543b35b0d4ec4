package core

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// isNotExist also covers a path component that is a regular file, e.g. a
// stray file listed in PATH.
func isNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable. If file contains a slash, it is tried directly
// and the PATH is not consulted. The result may be an absolute path or a path
// relative to the current directory.
//
// The error is ErrNotFound if nothing by that name exists and
// fs.ErrPermission if the only match can't be executed.
func LookPath(getenv func(string) string, file string) (string, error) {
	if strings.Contains(file, "/") {
		err := findExecutable(file)
		switch {
		case err == nil:
			return file, nil
		case isNotExist(err):
			return "", ErrNotFound
		default:
			return "", err
		}
	}

	var denied error
	for _, dir := range filepath.SplitList(getenv("PATH")) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		err := findExecutable(path)
		if err == nil {
			if !strings.Contains(path, "/") {
				path = "./" + path
			}
			return path, nil
		}
		if denied == nil && !isNotExist(err) {
			denied = err
		}
	}
	if denied != nil {
		return "", denied
	}
	return "", ErrNotFound
}
