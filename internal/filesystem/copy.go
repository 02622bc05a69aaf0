package filesystem

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

const unixSpecialPerms = 0o7777

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	default:
		return cr.reader.Read(p)
	}
}

// CopyItem copies the node at src to dst, which must not exist yet. A
// directory is copied with all of its contents. Every copied node receives
// the permissions, ownership (as far as permitted), extended attributes and
// timestamps of its source. A non-nil progress is started, updated and ended
// by the copy. A failure can leave a partial copy behind at dst.
func (f *Handler) CopyItem(ctx context.Context, src string, dst string, progress *TransferInfo) error {
	if progress != nil {
		bytesTotal, itemsTotal, err := f.measure(src)
		if err != nil {
			return fmt.Errorf("(fs-copy) failed to measure source: %w", err)
		}

		progress.Start(bytesTotal, itemsTotal)
	}

	err := f.copyNode(ctx, src, dst, progress)

	if progress != nil {
		progress.End(err)
	}

	return err
}

// measure returns the total size of the regular files and the number of
// nodes in the tree at path.
func (f *Handler) measure(path string) (uint64, uint64, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return 0, 0, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	if stat.Mode&unix.S_IFMT != unix.S_IFDIR {
		return uint64(stat.Size), 1, nil //nolint:gosec
	}

	var bytesTotal, itemsTotal uint64 = 0, 1

	contents := f.ContentsOfDirectoryPaths(path, true)
	defer contents.Close()

	for child := range contents.All() {
		if err := f.unixHandler.Lstat(child, &stat); err != nil {
			return 0, 0, &fs.PathError{Op: "lstat", Path: child, Err: err}
		}

		itemsTotal++
		if stat.Mode&unix.S_IFMT == unix.S_IFREG {
			bytesTotal += uint64(stat.Size) //nolint:gosec
		}
	}

	if err := contents.Err(); err != nil {
		return 0, 0, err
	}

	return bytesTotal, itemsTotal, nil
}

func (f *Handler) copyNode(ctx context.Context, src string, dst string, progress *TransferInfo) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("(fs-copy) canceled: %w", err)
	}

	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(src, &stat); err != nil {
		return &fs.PathError{Op: "lstat", Path: src, Err: err}
	}

	t, ok := fileTypeOf(stat.Mode)
	if !ok {
		return &fs.PathError{Op: "copy", Path: src, Err: ErrUnsupportedNodeType}
	}

	var err error

	switch t {
	case Regular:
		err = f.copyFile(ctx, src, dst, progress)

	case Directory:
		err = f.copyDirectory(ctx, src, dst, progress)

	case SymbolicLink:
		err = f.copySymlink(src, dst)

	case FIFO, CharacterSpecial, BlockSpecial:
		if merr := f.unixHandler.Mknod(dst, stat.Mode, int(stat.Rdev)); merr != nil { //nolint:gosec
			err = &fs.PathError{Op: "mknod", Path: dst, Err: merr}
		}

	case Socket, Whiteout:
		err = &fs.PathError{Op: "copy", Path: src, Err: fmt.Errorf("%w: %s", ErrUnsupportedNodeType, t)}
	}

	if err != nil {
		return err
	}

	if err := f.ensureMetadata(src, dst, &stat, t); err != nil {
		return err
	}

	if progress != nil {
		progress.ItemDone(src)
	}

	return nil
}

func (f *Handler) copyDirectory(ctx context.Context, src string, dst string, progress *TransferInfo) error {
	// Owner-only until the final permissions are applied after the contents.
	if err := f.unixHandler.Mkdir(dst, 0o700); err != nil {
		return &fs.PathError{Op: "mkdir", Path: dst, Err: err}
	}

	children := f.ContentsOfDirectory(src, false)

	names := slices.Collect(children.All())
	if err := children.Err(); err != nil {
		return fmt.Errorf("(fs-copy) failed to list contents: %w", err)
	}

	for _, name := range names {
		if err := f.copyNode(ctx, filepath.Join(src, name), filepath.Join(dst, name), progress); err != nil {
			return err
		}
	}

	return nil
}

func (f *Handler) copySymlink(src string, dst string) error {
	target, err := f.osHandler.Readlink(src)
	if err != nil {
		return fmt.Errorf("(fs-copy) failed to readlink: %w", err)
	}

	if err := f.unixHandler.Symlink(target, dst); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: dst, Err: err}
	}

	return nil
}

func (f *Handler) copyFile(ctx context.Context, src string, dst string, progress *TransferInfo) (retErr error) {
	srcFile, err := f.osHandler.Open(src)
	if err != nil {
		return fmt.Errorf("(fs-copyfile) failed to open src: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := f.osHandler.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("(fs-copyfile) failed to open dst: %w", err)
	}
	defer func() {
		dstFile.Close()

		if retErr != nil {
			f.unixHandler.Unlink(dst) //nolint:errcheck
		}
	}()

	if err := f.unixHandler.IoctlFileClone(int(dstFile.Fd()), int(srcFile.Fd())); err == nil { //nolint:gosec
		if progress != nil {
			if fi, err := srcFile.Stat(); err == nil {
				progress.Add(uint64(fi.Size())) //nolint:gosec
			}
		}

		return nil
	}

	srcHasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: io.TeeReader(srcFile, srcHasher),
	}

	var writer io.Writer = dstFile
	if progress != nil {
		writer = io.MultiWriter(dstFile, &progressWriter{progress: progress})
	}

	if _, err := io.Copy(writer, ctxReader); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("(fs-copyfile) canceled: %w", err)
		}

		return fmt.Errorf("(fs-copyfile) failed to copy: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("(fs-copyfile) failed to sync dst: %w", err)
	}

	if !f.verifyCopies {
		return nil
	}

	if _, err := dstFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("(fs-copyfile) failed to rewind dst: %w", err)
	}

	dstHasher := blake3.New()
	if _, err := io.Copy(dstHasher, &contextReader{ctx: ctx, reader: dstFile}); err != nil {
		return fmt.Errorf("(fs-copyfile) failed to read back dst: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return fmt.Errorf("(fs-copyfile) %w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	return nil
}

// ensureMetadata applies the metadata of src (as in stat) to its copy at dst.
// Extended attributes go first, as setting them needs write permission.
func (f *Handler) ensureMetadata(src string, dst string, stat *unix.Stat_t, t FileType) error {
	attrs, err := f.metadataHandler.ListAttributes(src)
	if err != nil {
		return fmt.Errorf("(fs-copy) failed to list attributes: %w", err)
	}

	if err := f.metadataHandler.WriteAttributes(dst, attrs); err != nil {
		return fmt.Errorf("(fs-copy) failed to write attributes: %w", err)
	}

	if err := f.unixHandler.Lchown(dst, int(stat.Uid), int(stat.Gid)); err != nil {
		if !errors.Is(err, unix.EPERM) {
			return &fs.PathError{Op: "lchown", Path: dst, Err: err}
		}

		slog.Debug("Ownership of copy not preserved (insufficient privileges)",
			"path", dst,
			"uid", stat.Uid,
			"gid", stat.Gid,
		)
	}

	if t != SymbolicLink {
		if err := f.unixHandler.Chmod(dst, stat.Mode&unixSpecialPerms); err != nil {
			return &fs.PathError{Op: "chmod", Path: dst, Err: err}
		}
	}

	ts := []unix.Timespec{stat.Atim, stat.Mtim}
	if err := f.unixHandler.UtimesNanoAt(dst, ts, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &fs.PathError{Op: "utimensat", Path: dst, Err: err}
	}

	return nil
}
