package replace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const scratchSeparator = ".swap."

func (h *Handler) renameSwap(original string, replacement string, opts Options) error {
	if !opts.Has(UsingNewMetadataOnly) {
		if err := h.copyMetadata(original, replacement, false, true); err != nil {
			return fmt.Errorf("(replace-renameswap) failed to merge attributes: %w", err)
		}
	}

	if err := h.swapHandler.RenameSwap(replacement, original); err != nil {
		return fmt.Errorf("(replace-renameswap) failed to swap: %w", err)
	}

	if !opts.Has(WithoutDeletingBackupItem) {
		if err := h.fsHandler.RemoveItem(replacement, true); err != nil {
			return fmt.Errorf("(replace-renameswap) failed to remove backup: %w", err)
		}
	}

	return nil
}

// exchange merges the attributes into the replacement before the data is
// exchanged, as the exchange leaves each file with its own attributes. They
// are then made to follow the exchanged data.
func (h *Handler) exchange(original string, replacement string, opts Options) error {
	keepBackup := opts.Has(WithoutDeletingBackupItem)

	if !opts.Has(UsingNewMetadataOnly) {
		if err := h.copyMetadata(original, replacement, false, true); err != nil {
			return fmt.Errorf("(replace-exchange) failed to merge attributes: %w", err)
		}
	}

	if err := h.swapHandler.ExchangeData(replacement, original); err != nil {
		return fmt.Errorf("(replace-exchange) failed to exchange data: %w", err)
	}

	if opts.Has(UsingNewMetadataOnly) {
		if err := h.exchangeAttributes(original, replacement, keepBackup); err != nil {
			return fmt.Errorf("(replace-exchange) failed to exchange attributes: %w", err)
		}
	} else {
		if err := h.copyMetadata(replacement, original, true, keepBackup); err != nil {
			return fmt.Errorf("(replace-exchange) failed to swap attributes: %w", err)
		}
	}

	if !keepBackup {
		if err := h.fsHandler.RemoveItem(replacement, true); err != nil {
			return fmt.Errorf("(replace-exchange) failed to remove backup: %w", err)
		}
	}

	return nil
}

func (h *Handler) manual(ctx context.Context, original string, replacement string, opts Options) error {
	if !opts.Has(UsingNewMetadataOnly) {
		if err := h.copyMetadata(original, replacement, false, true); err != nil {
			return fmt.Errorf("(replace-manual) failed to merge attributes: %w", err)
		}
	}

	scratch := scratchPath(replacement)

	if err := h.fsHandler.MoveItem(ctx, original, scratch, nil); err != nil {
		return fmt.Errorf("(replace-manual) failed to move original aside: %w", err)
	}

	if err := h.fsHandler.MoveItem(ctx, replacement, original, nil); err != nil {
		return fmt.Errorf("(replace-manual) failed to move replacement into place: %w", err)
	}

	if opts.Has(WithoutDeletingBackupItem) {
		if err := h.fsHandler.MoveItem(ctx, scratch, replacement, nil); err != nil {
			return fmt.Errorf("(replace-manual) failed to move backup: %w", err)
		}

		return nil
	}

	if err := h.fsHandler.RemoveItem(scratch, true); err != nil {
		return fmt.Errorf("(replace-manual) failed to remove backup: %w", err)
	}

	return nil
}

func scratchPath(replacement string) string {
	return replacement + scratchSeparator + uuid.NewString()
}
