// Package fileman is a file management layer for Linux. Its core is the
// atomic replacement of one filesystem item by another ([Manager.ReplaceItem]),
// accompanied by temporary file creation, lazy directory enumeration and
// recursive create, remove, copy and move operations.
//
// All operations take plain string paths. Each has a variant taking file
// URLs, which are converted to paths at the boundary.
package fileman

import (
	"context"
	"os"

	"github.com/desertwitch/fileman/internal/configuration"
	"github.com/desertwitch/fileman/internal/filesystem"
	"github.com/desertwitch/fileman/internal/metadata"
	"github.com/desertwitch/fileman/internal/replace"
	"github.com/desertwitch/fileman/internal/schema"
)

// Manager is the principal entry point to the file operations.
// It is safe for concurrent use.
type Manager struct {
	config          *configuration.Config
	metadataHandler *metadata.Handler
	fsHandler       *filesystem.Handler
	replaceHandler  *replace.Handler
}

// New returns a pointer to a new [Manager] configured by cfg. A nil cfg
// results in the [configuration.Default] settings.
func New(cfg *configuration.Config) *Manager {
	if cfg == nil {
		cfg = configuration.Default()
	}

	osHandler := &schema.OS{}
	unixHandler := &schema.Unix{}

	metadataHandler := metadata.NewHandler(unixHandler, cfg.SkipXattrNamespaces)
	fsHandler := filesystem.NewHandler(osHandler, unixHandler, metadataHandler, cfg.VerifyCopies)
	swapHandler := replace.NewSwapper(unixHandler)
	replaceHandler := replace.NewHandler(metadataHandler, fsHandler, swapHandler, cfg.Strategy)

	return &Manager{
		config:          cfg,
		metadataHandler: metadataHandler,
		fsHandler:       fsHandler,
		replaceHandler:  replaceHandler,
	}
}

// ReplaceItem replaces the item at original with the item at replacement,
// see the package documentation of the replacement engine for the details.
// With the atomic strategies a failure leaves both items untouched; the
// manual strategy can leave the original at "<replacement>.swap.<uuid>".
func (m *Manager) ReplaceItem(ctx context.Context, original string, replacement string, opts Options) error {
	return m.replaceHandler.ReplaceItem(ctx, original, replacement, opts)
}

// SelectStrategy returns the strategy [Manager.ReplaceItem] would use.
func (m *Manager) SelectStrategy(original string, replacement string) (Strategy, error) {
	return m.replaceHandler.SelectStrategy(original, replacement)
}

// MoveItem renames src to dst, copying and removing src when both are on
// different volumes. progress may be nil.
func (m *Manager) MoveItem(ctx context.Context, src string, dst string, progress *TransferInfo) error {
	return m.fsHandler.MoveItem(ctx, src, dst, progress)
}

// CopyItem copies src to dst recursively, with all metadata. progress may be
// nil.
func (m *Manager) CopyItem(ctx context.Context, src string, dst string, progress *TransferInfo) error {
	return m.fsHandler.CopyItem(ctx, src, dst, progress)
}

// RemoveItem removes the item at path. Non-empty directories are only removed
// when recursive is set.
func (m *Manager) RemoveItem(path string, recursive bool) error {
	return m.fsHandler.RemoveItem(path, recursive)
}

// CreateDirectory creates a directory with exactly the given mode, and with
// recursive its missing parents as well. A mode of zero is reserved and
// selects the configured default, so a directory without any permission bits
// cannot be created this way.
func (m *Manager) CreateDirectory(path string, mode uint32, recursive bool) error {
	if mode == 0 {
		mode = m.config.DirMode
	}

	return m.fsHandler.CreateDirectory(path, mode, recursive)
}

// ContentsOfDirectory returns an [Enumerator] of the paths below path,
// relative to it.
func (m *Manager) ContentsOfDirectory(path string, recursive bool) *Enumerator {
	return m.fsHandler.ContentsOfDirectory(path, recursive)
}

// ContentsOfDirectoryPaths returns an [Enumerator] of the paths below path,
// joined onto it.
func (m *Manager) ContentsOfDirectoryPaths(path string, recursive bool) *Enumerator {
	return m.fsHandler.ContentsOfDirectoryPaths(path, recursive)
}

// CreateTemporaryFile creates a new, empty file open for reading and writing.
// An empty dir is the temporary directory and an empty template is the
// configured one.
func (m *Manager) CreateTemporaryFile(dir string, template string, suffix string) (*os.File, string, error) {
	if template == "" {
		template = m.config.Template
	}

	return m.fsHandler.CreateTemporaryFile(dir, template, suffix)
}

// WithRestrictedUmask runs fn with the process umask set to 077.
func (m *Manager) WithRestrictedUmask(fn func() error) error {
	return m.fsHandler.WithRestrictedUmask(fn)
}

// CreateItemReplacementDirectory creates a fresh directory suited to hold a
// replacement for destination before [Manager.ReplaceItem]. As with
// [Manager.CreateDirectory], a mode of zero selects the configured default.
func (m *Manager) CreateItemReplacementDirectory(destination string, mode uint32) (string, error) {
	if mode == 0 {
		mode = m.config.DirMode
	}

	return m.fsHandler.CreateItemReplacementDirectory(destination, mode)
}

// TemporaryDirectory returns the temporary directory.
func (m *Manager) TemporaryDirectory() string {
	return m.fsHandler.TemporaryDirectory()
}

// RootDirectory returns the root directory.
func (m *Manager) RootDirectory() string {
	return m.fsHandler.RootDirectory()
}

// HomeDirectory returns the home directory of the current user.
func (m *Manager) HomeDirectory() (string, error) {
	return m.fsHandler.HomeDirectory()
}

// TypeOfItem returns the type of the node at path, not following symlinks.
func (m *Manager) TypeOfItem(path string) (FileType, error) {
	return m.fsHandler.TypeOfItem(path)
}

// TypeOfDescriptor returns the type of the node behind the descriptor.
func (m *Manager) TypeOfDescriptor(fd int) (FileType, error) {
	return m.fsHandler.TypeOfDescriptor(fd)
}

// ItemIsReachable reports if a node exists at path.
func (m *Manager) ItemIsReachable(path string) (bool, error) {
	return m.fsHandler.ItemIsReachable(path)
}

// VolumeID returns the identity of the volume holding path.
func (m *Manager) VolumeID(path string) (VolumeID, error) {
	return m.metadataHandler.VolumeID(path)
}

// VolumeCapabilities returns the capabilities of the volume holding path.
func (m *Manager) VolumeCapabilities(path string) (Capabilities, error) {
	return m.metadataHandler.VolumeCapabilities(path)
}

// FilesystemName returns the name of the filesystem type holding path.
func (m *Manager) FilesystemName(path string) (string, error) {
	return m.metadataHandler.FilesystemName(path)
}

// ListAttributes returns the extended attributes of the node at path.
func (m *Manager) ListAttributes(path string) (Attributes, error) {
	return m.metadataHandler.ListAttributes(path)
}
