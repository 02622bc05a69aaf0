// Package replace implements the atomic replacement of one filesystem item by
// another. The original item's path ends up holding the replacement, while the
// identity of the path is preserved for anyone holding it open, and the
// extended attributes of both items are merged (or exchanged) as requested.
//
// Depending on what the volume supports, one of three strategies is used:
// an atomic swap of both paths ([RenameSwap]), an atomic exchange of the data
// of both files ([Exchange]) or a non-atomic sequence of renames ([Manual]).
package replace

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/fileman/internal/filesystem"
	"github.com/desertwitch/fileman/internal/metadata"
)

type metadataProvider interface {
	ListAttributes(path string) (metadata.Attributes, error)
	RemoveAttributes(path string, names []string) error
	VolumeCapabilities(path string) (metadata.Capabilities, error)
	VolumeID(path string) (metadata.VolumeID, error)
	WriteAttributes(path string, attrs metadata.Attributes) error
}

type fsProvider interface {
	CreateTemporaryFile(dir string, template string, suffix string) (*os.File, string, error)
	MoveItem(ctx context.Context, src string, dst string, progress *filesystem.TransferInfo) error
	RemoveItem(path string, recursive bool) error
}

type swapProvider interface {
	ExchangeData(a, b string) error
	RenameSwap(a, b string) error
}

// Handler is the principal implementation of the replacement engine.
type Handler struct {
	metadataHandler metadataProvider
	fsHandler       fsProvider
	swapHandler     swapProvider
	preference      Preference
}

// NewHandler returns a pointer to a new replacement [Handler].
func NewHandler(metadataHandler metadataProvider, fsHandler fsProvider, swapHandler swapProvider, preference Preference) *Handler {
	return &Handler{
		metadataHandler: metadataHandler,
		fsHandler:       fsHandler,
		swapHandler:     swapHandler,
		preference:      preference,
	}
}

// ReplaceItem replaces the item at original with the item at replacement.
// Afterwards original holds what was at replacement, with the extended
// attributes of both items merged (or only those of the replacement, with
// [UsingNewMetadataOnly]). The replacement path is removed, unless
// [WithoutDeletingBackupItem] is set, in which case it holds what was
// previously at original.
//
// With the [RenameSwap] and [Exchange] strategies a failure leaves both items
// in place. The [Manual] strategy can fail halfway, leaving original missing
// and the original item at a scratch path next to replacement.
func (h *Handler) ReplaceItem(ctx context.Context, original string, replacement string, opts Options) error {
	strategy, err := h.SelectStrategy(original, replacement)
	if err != nil {
		return err
	}

	slog.Debug("Replacing item",
		"original", original,
		"replacement", replacement,
		"strategy", strategy,
		"newMetadataOnly", opts.Has(UsingNewMetadataOnly),
		"keepBackup", opts.Has(WithoutDeletingBackupItem),
	)

	switch strategy {
	case RenameSwap:
		return h.renameSwap(original, replacement, opts)
	case Exchange:
		return h.exchange(original, replacement, opts)
	default:
		return h.manual(ctx, original, replacement, opts)
	}
}

// SelectStrategy returns the strategy [Handler.ReplaceItem] uses for the
// given paths. Both paths must exist. A failure to query the identity of
// either volume is returned as an error rather than degraded to [Manual]. A
// failure to query the capabilities of their volume results in [Manual].
func (h *Handler) SelectStrategy(original string, replacement string) (Strategy, error) {
	originalVolume, err := h.metadataHandler.VolumeID(original)
	if err != nil {
		return 0, fmt.Errorf("(replace) failed to query volume of original: %w", err)
	}

	newVolume, err := h.metadataHandler.VolumeID(replacement)
	if err != nil {
		return 0, fmt.Errorf("(replace) failed to query volume of replacement: %w", err)
	}

	if originalVolume != newVolume {
		return Manual, nil
	}

	caps, err := h.metadataHandler.VolumeCapabilities(original)
	if err != nil {
		slog.Debug("Volume capabilities unknown, falling back to manual replacement",
			"path", original,
			"err", err,
		)

		return Manual, nil
	}

	caps &= h.preference.mask()

	switch {
	case caps.Has(metadata.CapRenameSwap):
		return RenameSwap, nil
	case caps.Has(metadata.CapExchangeData):
		return Exchange, nil
	default:
		return Manual, nil
	}
}
