package filesystem

import "errors"

var (
	// ErrUnsupportedNodeType is an error that occurs when the file mode of a
	// node does not map to any known [FileType], or when an operation is not
	// possible for the type of node (such as copying a socket).
	ErrUnsupportedNodeType = errors.New("unsupported node type")

	// ErrInvalidTemplate is an error that occurs when a temporary file
	// template contains no placeholder characters to be randomized.
	ErrInvalidTemplate = errors.New("template contains no placeholder characters")

	// ErrHashMismatch is an error that occurs when the checksum of a copied
	// file does not match the checksum of its source.
	ErrHashMismatch = errors.New("hash mismatch")
)
