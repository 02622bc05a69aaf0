package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sys/unix"
)

// FileType is the kind of a filesystem node.
type FileType int

const (
	Regular FileType = iota
	Directory
	SymbolicLink
	FIFO
	CharacterSpecial
	BlockSpecial
	Socket
	Whiteout
)

// modeWhiteout is S_IFWHT as defined on the BSDs; Linux never reports it
// through stat, but union mounts may still expose it.
const modeWhiteout = 0o160000

func (t FileType) String() string {
	switch t {
	case Regular:
		return "regular"
	case Directory:
		return "directory"
	case SymbolicLink:
		return "symbolic-link"
	case FIFO:
		return "fifo"
	case CharacterSpecial:
		return "character-special"
	case BlockSpecial:
		return "block-special"
	case Socket:
		return "socket"
	case Whiteout:
		return "whiteout"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

func fileTypeOf(mode uint32) (FileType, bool) {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return Regular, true
	case unix.S_IFDIR:
		return Directory, true
	case unix.S_IFLNK:
		return SymbolicLink, true
	case unix.S_IFIFO:
		return FIFO, true
	case unix.S_IFCHR:
		return CharacterSpecial, true
	case unix.S_IFBLK:
		return BlockSpecial, true
	case unix.S_IFSOCK:
		return Socket, true
	case modeWhiteout:
		return Whiteout, true
	default:
		return 0, false
	}
}

// TypeOfItem returns the type of the node at path, without following a
// symbolic link.
func (f *Handler) TypeOfItem(path string) (FileType, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return 0, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	t, ok := fileTypeOf(stat.Mode)
	if !ok {
		return 0, &fs.PathError{Op: "lstat", Path: path, Err: fmt.Errorf("%w: mode %#o", ErrUnsupportedNodeType, stat.Mode)}
	}

	return t, nil
}

// TypeOfDescriptor returns the type of the node behind an open descriptor.
func (f *Handler) TypeOfDescriptor(fd int) (FileType, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Fstat(fd, &stat); err != nil {
		return 0, &fs.PathError{Op: "fstat", Path: fmt.Sprintf("fd:%d", fd), Err: err}
	}

	t, ok := fileTypeOf(stat.Mode)
	if !ok {
		return 0, &fs.PathError{Op: "fstat", Path: fmt.Sprintf("fd:%d", fd), Err: fmt.Errorf("%w: mode %#o", ErrUnsupportedNodeType, stat.Mode)}
	}

	return t, nil
}

// ItemIsReachable reports if a node exists at path. A missing node is not an
// error, any other failure (such as a lack of search permission on an
// ancestor) is.
func (f *Handler) ItemIsReachable(path string) (bool, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return false, nil
		}

		return false, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	return true, nil
}

// RootDirectory returns the root of the filesystem hierarchy.
func (f *Handler) RootDirectory() string {
	return "/"
}

// HomeDirectory returns the home directory of the current user.
func (f *Handler) HomeDirectory() (string, error) {
	home, err := f.osHandler.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("(fs-home) failed to get home directory: %w", err)
	}

	return home, nil
}
