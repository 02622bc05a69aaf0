package fileman

import (
	"errors"

	"github.com/desertwitch/fileman/internal/filesystem"
	"github.com/desertwitch/fileman/internal/metadata"
	"github.com/desertwitch/fileman/internal/replace"
)

// ErrNotFileURL is an error that occurs when a URL given to one of the URL
// variants of the [Manager] operations does not refer to a local file.
var ErrNotFileURL = errors.New("not a local file URL")

//nolint:gochecknoglobals
var (
	ErrUnsupportedNodeType     = filesystem.ErrUnsupportedNodeType
	ErrInvalidTemplate         = filesystem.ErrInvalidTemplate
	ErrHashMismatch            = filesystem.ErrHashMismatch
	ErrExchangeDataUnsupported = replace.ErrExchangeDataUnsupported
	ErrAttributeRetries        = metadata.ErrAttributeRetries
	ErrUnknownFilesystem       = metadata.ErrUnknownFilesystem
)
