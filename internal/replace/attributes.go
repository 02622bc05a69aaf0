package replace

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/fileman/internal/metadata"
)

const scratchTemplate = ".fileman_attrs_XXXXXXXXXXXXXXXX"

// copyMetadata copies the extended attributes of from to to. Without swap, to
// receives the union of both sets (entries of from win). With swap, to
// receives exactly the set of from and, with preserveFrom, from receives
// exactly the previous set of to.
func (h *Handler) copyMetadata(from string, to string, swap bool, preserveFrom bool) error {
	fromAttrs, err := h.metadataHandler.ListAttributes(from)
	if err != nil {
		return err
	}

	toAttrs, err := h.metadataHandler.ListAttributes(to)
	if err != nil {
		return err
	}

	if !swap {
		return h.writeAttributes(to, toAttrs.Union(fromAttrs))
	}

	if err := h.writeAttributes(to, fromAttrs); err != nil {
		return err
	}

	if err := h.removeAttributes(to, toAttrs.Without(fromAttrs)); err != nil {
		return err
	}

	if !preserveFrom {
		return nil
	}

	if err := h.writeAttributes(from, toAttrs); err != nil {
		return err
	}

	return h.removeAttributes(from, fromAttrs.Without(toAttrs))
}

// replaceAttributes makes the extended attributes of to exactly those of from.
func (h *Handler) replaceAttributes(from string, to string) error {
	fromAttrs, err := h.metadataHandler.ListAttributes(from)
	if err != nil {
		return err
	}

	toAttrs, err := h.metadataHandler.ListAttributes(to)
	if err != nil {
		return err
	}

	if err := h.writeAttributes(to, fromAttrs); err != nil {
		return err
	}

	return h.removeAttributes(to, toAttrs.Without(fromAttrs))
}

// exchangeAttributes gives original the attributes of replacement and, with
// keepBackup, replacement the previous attributes of original. A scratch file
// next to replacement holds the latter in between and is always removed. A
// failure midway is not rolled back.
func (h *Handler) exchangeAttributes(original string, replacement string, keepBackup bool) error {
	var scratch string

	if keepBackup {
		file, path, err := h.fsHandler.CreateTemporaryFile(filepath.Dir(replacement), scratchTemplate, "")
		if err != nil {
			return fmt.Errorf("failed to create scratch file: %w", err)
		}
		if err := file.Close(); err != nil {
			slog.Debug("Failed to close attribute scratch file", "path", path, "err", err)
		}

		scratch = path
		defer h.removeScratch(scratch)

		if err := h.replaceAttributes(original, scratch); err != nil {
			return fmt.Errorf("failed to back up attributes of original: %w", err)
		}
	}

	if err := h.replaceAttributes(replacement, original); err != nil {
		return fmt.Errorf("failed to copy attributes to original: %w", err)
	}

	if keepBackup {
		if err := h.replaceAttributes(scratch, replacement); err != nil {
			return fmt.Errorf("failed to restore attributes to backup: %w", err)
		}
	}

	return nil
}

// removeScratch removes the attribute scratch file. A failure leaves only an
// empty file behind and does not fail the replacement.
func (h *Handler) removeScratch(path string) {
	if err := h.fsHandler.RemoveItem(path, false); err != nil {
		slog.Debug("Failed to remove attribute scratch file", "path", path, "err", err)
	}
}

// writeAttributes sets attrs on path; an empty set is not written at all.
func (h *Handler) writeAttributes(path string, attrs metadata.Attributes) error {
	if len(attrs) == 0 {
		return nil
	}

	return h.metadataHandler.WriteAttributes(path, attrs)
}

func (h *Handler) removeAttributes(path string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	return h.metadataHandler.RemoveAttributes(path, names)
}
