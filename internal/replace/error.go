package replace

import "errors"

var (
	// ErrInvalidPreference is an error that occurs when a strategy preference
	// is parsed from a string that names no known preference.
	ErrInvalidPreference = errors.New("invalid strategy preference")

	// ErrExchangeDataUnsupported is an error that occurs when the exchange of
	// file data is requested on a platform without such a primitive.
	ErrExchangeDataUnsupported = errors.New("exchange of file data not supported")
)
