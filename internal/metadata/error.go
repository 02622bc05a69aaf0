package metadata

import "errors"

var (
	// ErrAttributeRetries is an error that occurs when the extended attributes
	// of a node kept growing between the size probe and the actual read, for
	// more than [maxAttributeRetries] consecutive attempts.
	ErrAttributeRetries = errors.New("extended attributes kept changing during read")

	// ErrUnknownFilesystem is an error that occurs when the filesystem type of
	// a volume is not among the known filesystem magic numbers.
	ErrUnknownFilesystem = errors.New("unknown filesystem type")
)
