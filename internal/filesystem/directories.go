package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"golang.org/x/sys/unix"
)

// CreateDirectory creates a directory with exactly the given mode, regardless
// of the process file creation mask. With recursive set, missing parents are
// created first (with the same mode). The leaf must not exist yet.
func (f *Handler) CreateDirectory(path string, mode uint32, recursive bool) error {
	err := f.unixHandler.Mkdir(path, mode)

	if recursive && errors.Is(err, unix.ENOENT) {
		parent := filepath.Dir(filepath.Clean(path))
		if parent == filepath.Clean(path) {
			return &fs.PathError{Op: "mkdir", Path: path, Err: err}
		}

		if perr := f.CreateDirectory(parent, mode, true); perr != nil && !errors.Is(perr, fs.ErrExist) {
			return perr
		}

		err = f.unixHandler.Mkdir(path, mode)
	}

	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}

	if err := f.unixHandler.Chmod(path, mode); err != nil {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}

	return nil
}

// RemoveItem removes the node at path, without following a symbolic link.
// A directory must be empty unless recursive is set, in which case its
// contents are removed first.
func (f *Handler) RemoveItem(path string, recursive bool) error {
	t, err := f.TypeOfItem(path)
	if err != nil {
		return err
	}

	if t != Directory {
		if err := f.unixHandler.Unlink(path); err != nil {
			return &fs.PathError{Op: "unlink", Path: path, Err: err}
		}

		return nil
	}

	if recursive {
		children := f.ContentsOfDirectory(path, false)

		names := slices.Collect(children.All())
		if err := children.Err(); err != nil {
			return fmt.Errorf("(fs-remove) failed to list contents: %w", err)
		}

		for _, name := range names {
			if err := f.RemoveItem(filepath.Join(path, name), true); err != nil {
				return err
			}
		}
	}

	if err := f.unixHandler.Rmdir(path); err != nil {
		return &fs.PathError{Op: "rmdir", Path: path, Err: err}
	}

	return nil
}
