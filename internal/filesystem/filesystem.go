// Package filesystem implements the basic item operations the replacement
// engine builds upon: type queries, temporary files, lazy directory
// enumeration, directory creation, recursive removal and the copy and move of
// whole trees (with a cross-volume fallback for the latter).
package filesystem

import (
	"os"

	"github.com/desertwitch/fileman/internal/metadata"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Getenv(key string) string
	NewFile(fd uintptr, name string) *os.File
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Readlink(name string) (string, error)
	Rename(oldpath, newpath string) error
	UserHomeDir() (string, error)
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Fstat(fd int, stat *unix.Stat_t) error
	IoctlFileClone(destFd, srcFd int) error
	Lchown(path string, uid, gid int) error
	Lstat(path string, stat *unix.Stat_t) error
	Mkdir(path string, mode uint32) error
	Mknod(path string, mode uint32, dev int) error
	Open(path string, mode int, perm uint32) (int, error)
	Rmdir(path string) error
	Symlink(oldpath, newpath string) error
	Umask(mask int) int
	Unlink(path string) error
	UtimesNanoAt(path string, times []unix.Timespec, flags int) error
}

type metadataProvider interface {
	ListAttributes(path string) (metadata.Attributes, error)
	SameVolume(a, b string) (bool, error)
	WriteAttributes(path string, attrs metadata.Attributes) error
}

// Handler is the principal implementation of the basic item operations.
type Handler struct {
	osHandler       osProvider
	unixHandler     unixProvider
	metadataHandler metadataProvider
	verifyCopies    bool
}

// NewHandler returns a pointer to a new filesystem [Handler]. With
// verifyCopies set, streamed file copies are read back and compared against
// the source by their BLAKE3 checksum.
func NewHandler(osHandler osProvider, unixHandler unixProvider, metadataHandler metadataProvider, verifyCopies bool) *Handler {
	return &Handler{
		osHandler:       osHandler,
		unixHandler:     unixHandler,
		metadataHandler: metadataHandler,
		verifyCopies:    verifyCopies,
	}
}
