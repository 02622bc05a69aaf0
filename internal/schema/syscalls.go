package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// NewFile wraps around [os.NewFile].
func (*OS) NewFile(fd uintptr, name string) *os.File {
	return os.NewFile(fd, name)
}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// Rename wraps around [os.Rename].
func (*OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Getenv wraps around [os.Getenv].
func (*OS) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv wraps around [os.LookupEnv].
func (*OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// UserHomeDir wraps around [os.UserHomeDir].
func (*OS) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Statfs wraps around [unix.Statfs].
func (*Unix) Statfs(path string, buf *unix.Statfs_t) error {
	return unix.Statfs(path, buf)
}

// Statx wraps around [unix.Statx].
func (*Unix) Statx(dirfd int, path string, flags int, mask int, stat *unix.Statx_t) error {
	return unix.Statx(dirfd, path, flags, mask, stat)
}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Fstat wraps around [unix.Fstat].
func (*Unix) Fstat(fd int, stat *unix.Stat_t) error {
	return unix.Fstat(fd, stat)
}

// Open wraps around [unix.Open].
func (*Unix) Open(path string, mode int, perm uint32) (int, error) {
	return unix.Open(path, mode, perm)
}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

// Rmdir wraps around [unix.Rmdir].
func (*Unix) Rmdir(path string) error {
	return unix.Rmdir(path)
}

// Unlink wraps around [unix.Unlink].
func (*Unix) Unlink(path string) error {
	return unix.Unlink(path)
}

// Renameat2 wraps around [unix.Renameat2], relative to the working directory.
func (*Unix) Renameat2(oldpath, newpath string, flags uint) error {
	return unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, flags)
}

// Symlink wraps around [unix.Symlink].
func (*Unix) Symlink(oldpath, newpath string) error {
	return unix.Symlink(oldpath, newpath)
}

// Mknod wraps around [unix.Mknod].
func (*Unix) Mknod(path string, mode uint32, dev int) error {
	return unix.Mknod(path, mode, dev)
}

// Chmod wraps around [unix.Chmod].
func (*Unix) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

// Lchown wraps around [unix.Lchown].
func (*Unix) Lchown(path string, uid, gid int) error {
	return unix.Lchown(path, uid, gid)
}

// UtimesNanoAt wraps around [unix.UtimesNanoAt], relative to the working
// directory.
func (*Unix) UtimesNanoAt(path string, times []unix.Timespec, flags int) error {
	return unix.UtimesNanoAt(unix.AT_FDCWD, path, times, flags)
}

// IoctlFileClone wraps around [unix.IoctlFileClone].
func (*Unix) IoctlFileClone(destFd, srcFd int) error {
	return unix.IoctlFileClone(destFd, srcFd)
}

// Umask wraps around [unix.Umask].
func (*Unix) Umask(mask int) int {
	return unix.Umask(mask)
}

// Llistxattr wraps around [unix.Llistxattr].
func (*Unix) Llistxattr(path string, dest []byte) (int, error) {
	return unix.Llistxattr(path, dest)
}

// Lgetxattr wraps around [unix.Lgetxattr].
func (*Unix) Lgetxattr(path string, attr string, dest []byte) (int, error) {
	return unix.Lgetxattr(path, attr, dest)
}

// Lsetxattr wraps around [unix.Lsetxattr].
func (*Unix) Lsetxattr(path string, attr string, data []byte, flags int) error {
	return unix.Lsetxattr(path, attr, data, flags)
}

// Lremovexattr wraps around [unix.Lremovexattr].
func (*Unix) Lremovexattr(path string, attr string) error {
	return unix.Lremovexattr(path, attr)
}
