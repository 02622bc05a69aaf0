package filesystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// MoveItem renames the node at src to dst. Only when the rename fails because
// both are on different volumes, the node is copied (see [Handler.CopyItem])
// and the source is removed afterwards. Any other rename failure is returned
// unchanged. A non-nil progress accounts a rename as a single item.
func (f *Handler) MoveItem(ctx context.Context, src string, dst string, progress *TransferInfo) error {
	err := f.osHandler.Rename(src, dst)
	if err == nil && progress != nil {
		progress.Start(0, 1)
		progress.ItemDone(dst)
		progress.End(nil)
	}
	if err == nil || !errors.Is(err, unix.EXDEV) {
		return err
	}

	slog.Debug("Move crosses volumes, falling back to copy and remove",
		"src", src,
		"dst", dst,
	)

	if err := f.CopyItem(ctx, src, dst, progress); err != nil {
		return fmt.Errorf("(fs-move) failed to copy across volumes: %w", err)
	}

	if err := f.RemoveItem(src, true); err != nil {
		return fmt.Errorf("(fs-move) failed to remove src after copy: %w", err)
	}

	return nil
}
