package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

const (
	// DefaultTemplate is used when no template is given for a temporary file.
	DefaultTemplate = "XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX"

	fallbackTemporaryDirectory = "/tmp"
	replacementDirectoryPrefix = "fileman_ItemReplacement_"
	templatePlaceholder        = 'X'
	templateAlphabet           = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	maxTemporaryAttempts       = 128
	restrictedUmask            = 0o077
)

// umaskMutex serializes all changes of the process-wide file creation mask.
//
//nolint:gochecknoglobals
var umaskMutex sync.Mutex

// TemporaryDirectory returns the directory for temporary files of the
// process: the value of TMPDIR, or /tmp if that is unset or empty.
func (f *Handler) TemporaryDirectory() string {
	if dir := f.osHandler.Getenv("TMPDIR"); dir != "" {
		return dir
	}

	return fallbackTemporaryDirectory
}

// CreateTemporaryFile creates a new file in dir, named after template with
// its last run of 'X' characters replaced by random alphanumerics and suffix
// appended as-is. An empty dir falls back to [Handler.TemporaryDirectory], an
// empty template to [DefaultTemplate]. The file is created exclusively with
// mode 0600, so it is never accessible to anyone but the owner. The returned
// file is open for reading and writing at offset 0 and is owned by the caller,
// as is the removal of the path.
func (f *Handler) CreateTemporaryFile(dir string, template string, suffix string) (*os.File, string, error) {
	if dir == "" {
		dir = f.TemporaryDirectory()
	}

	if template == "" {
		template = DefaultTemplate
	}

	start, end := lastPlaceholderRun(template)
	if start < 0 {
		return nil, "", &fs.PathError{
			Op:   "mkstemp",
			Path: filepath.Join(dir, template+suffix),
			Err:  fmt.Errorf("%w: %w", ErrInvalidTemplate, unix.EINVAL),
		}
	}

	var path string

	for range maxTemporaryAttempts {
		path = filepath.Join(dir, template[:start]+randomString(end-start)+template[end:]+suffix)

		fd, err := f.unixHandler.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0o600)
		if errors.Is(err, unix.EEXIST) {
			continue
		} else if err != nil {
			return nil, "", &fs.PathError{Op: "open", Path: path, Err: err}
		}

		return f.osHandler.NewFile(uintptr(fd), path), path, nil
	}

	return nil, "", &fs.PathError{Op: "open", Path: path, Err: unix.EEXIST}
}

// lastPlaceholderRun returns the bounds of the last run of placeholder
// characters in the template, or -1 if there is none.
func lastPlaceholderRun(template string) (int, int) {
	end := strings.LastIndexByte(template, templatePlaceholder)
	if end < 0 {
		return -1, -1
	}

	start := end
	for start > 0 && template[start-1] == templatePlaceholder {
		start--
	}

	return start, end + 1
}

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = templateAlphabet[rand.IntN(len(templateAlphabet))] //nolint:gosec
	}

	return string(b)
}

// WithRestrictedUmask runs fn with the process file creation mask narrowed to
// owner-only, restoring the previous mask afterwards (also on error or panic).
// Calls are serialized, as the mask is shared by the whole process.
func (f *Handler) WithRestrictedUmask(fn func() error) error {
	umaskMutex.Lock()
	defer umaskMutex.Unlock()

	old := f.unixHandler.Umask(restrictedUmask)
	defer f.unixHandler.Umask(old)

	return fn()
}

// CreateItemReplacementDirectory creates a new, uniquely named directory
// suitable for staging an item that is later swapped in for destination. It
// is created in the temporary directory, unless destination is known to live
// on a different volume, in which case it is created next to destination. An
// empty destination always uses the temporary directory.
func (f *Handler) CreateItemReplacementDirectory(destination string, mode uint32) (string, error) {
	parent := f.TemporaryDirectory()

	if destination != "" {
		same, err := f.metadataHandler.SameVolume(destination, parent)
		if err != nil {
			slog.Debug("Volume of replacement destination unknown, using temporary directory",
				"path", destination,
				"err", err,
			)
		} else if !same {
			parent = filepath.Dir(destination)
		}
	}

	path := filepath.Join(parent, replacementDirectoryPrefix+uuid.NewString())

	if err := f.WithRestrictedUmask(func() error {
		return f.CreateDirectory(path, mode, true)
	}); err != nil {
		return "", fmt.Errorf("(fs-replacedir) failed to create: %w", err)
	}

	return path, nil
}
