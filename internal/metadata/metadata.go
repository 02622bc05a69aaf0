// Package metadata implements the queries about volumes and extended
// attributes that the higher-level file operations build upon: the identity of
// the volume a path lives on, the optional native operations that volume
// supports and the extended attribute set of a single node.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Lgetxattr(path string, attr string, dest []byte) (int, error)
	Llistxattr(path string, dest []byte) (int, error)
	Lremovexattr(path string, attr string) error
	Lsetxattr(path string, attr string, data []byte, flags int) error
	Lstat(path string, stat *unix.Stat_t) error
	Statfs(path string, buf *unix.Statfs_t) error
	Statx(dirfd int, path string, flags int, mask int, stat *unix.Statx_t) error
}

// DefaultSkipNamespaces are the extended attribute namespaces which are left
// alone by default. They carry security labels and access control lists, which
// are properties of the node's placement rather than portable user metadata.
//
//nolint:gochecknoglobals
var DefaultSkipNamespaces = []string{"security.", "system."}

// Handler is the principal implementation of the metadata queries.
type Handler struct {
	unixHandler    unixProvider
	skipNamespaces []string
}

// NewHandler returns a pointer to a new metadata [Handler]. A nil
// skipNamespaces falls back to [DefaultSkipNamespaces], an empty (non-nil)
// slice disables the filtering.
func NewHandler(unixHandler unixProvider, skipNamespaces []string) *Handler {
	if skipNamespaces == nil {
		skipNamespaces = DefaultSkipNamespaces
	}

	return &Handler{
		unixHandler:    unixHandler,
		skipNamespaces: skipNamespaces,
	}
}

// VolumeID returns the identity of the mounted filesystem instance the path
// lives on. The path itself is not followed if it is a symbolic link. Where
// the kernel reports a mount identifier, bind mounts of the same device yield
// distinct identities, matching the EXDEV behavior of rename.
func (h *Handler) VolumeID(path string) (VolumeID, error) {
	var stx unix.Statx_t

	err := h.unixHandler.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BASIC_STATS|unix.STATX_MNT_ID, &stx)
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EPERM) {
		// statx unavailable or filtered by a seccomp profile
		return h.volumeIDFromLstat(path)
	} else if err != nil {
		return VolumeID{}, &fs.PathError{Op: "statx", Path: path, Err: err}
	}

	name := fmt.Sprintf("dev=%d:%d", stx.Dev_major, stx.Dev_minor)
	if stx.Mask&unix.STATX_MNT_ID != 0 {
		name += fmt.Sprintf(",mnt=%d", stx.Mnt_id)
	}

	return newVolumeID(name), nil
}

func (h *Handler) volumeIDFromLstat(path string) (VolumeID, error) {
	var stat unix.Stat_t

	if err := h.unixHandler.Lstat(path, &stat); err != nil {
		return VolumeID{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	return newVolumeID(fmt.Sprintf("dev=%d:%d", unix.Major(stat.Dev), unix.Minor(stat.Dev))), nil
}

// SameVolume reports if both paths live on the same mounted filesystem.
func (h *Handler) SameVolume(a, b string) (bool, error) {
	idA, err := h.VolumeID(a)
	if err != nil {
		return false, err
	}

	idB, err := h.VolumeID(b)
	if err != nil {
		return false, err
	}

	return idA == idB, nil
}

// VolumeCapabilities returns the optional native operations supported by the
// volume the path lives on.
func (h *Handler) VolumeCapabilities(path string) (Capabilities, error) {
	fsType, err := h.filesystemType(path)
	if err != nil {
		return 0, err
	}

	return capabilitiesOf(fsType), nil
}

// FilesystemName returns the name of the filesystem type the path lives on.
func (h *Handler) FilesystemName(path string) (string, error) {
	fsType, err := h.filesystemType(path)
	if err != nil {
		return "", err
	}

	if name, ok := filesystemNames[fsType]; ok {
		return name, nil
	}

	return "", fmt.Errorf("(metadata-fsname) %w: 0x%x", ErrUnknownFilesystem, fsType)
}

// filesystemType returns the statfs magic of the volume. Statfs follows
// symbolic links, so for a link the containing directory is queried instead.
func (h *Handler) filesystemType(path string) (uint32, error) {
	var stat unix.Stat_t

	if err := h.unixHandler.Lstat(path, &stat); err != nil {
		return 0, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	target := path
	if stat.Mode&unix.S_IFMT == unix.S_IFLNK {
		target = filepath.Dir(path)
	}

	var buf unix.Statfs_t
	if err := h.unixHandler.Statfs(target, &buf); err != nil {
		return 0, &fs.PathError{Op: "statfs", Path: target, Err: err}
	}

	return uint32(buf.Type), nil //nolint:gosec
}

func (h *Handler) isSkipped(key string) bool {
	for _, ns := range h.skipNamespaces {
		if strings.HasPrefix(key, ns) {
			return true
		}
	}

	return false
}
