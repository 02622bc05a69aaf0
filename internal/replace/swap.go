package replace

import (
	"os"

	"golang.org/x/sys/unix"
)

type renameProvider interface {
	Renameat2(oldpath, newpath string, flags uint) error
}

// Swapper implements the atomic exchange primitives on Linux.
type Swapper struct {
	unixHandler renameProvider
}

// NewSwapper returns a pointer to a new [Swapper].
func NewSwapper(unixHandler renameProvider) *Swapper {
	return &Swapper{
		unixHandler: unixHandler,
	}
}

// RenameSwap atomically exchanges the nodes at both paths.
func (s *Swapper) RenameSwap(a, b string) error {
	if err := s.unixHandler.Renameat2(a, b, unix.RENAME_EXCHANGE); err != nil {
		return &os.LinkError{Op: "renameat2", Old: a, New: b, Err: err}
	}

	return nil
}

// ExchangeData is not available on Linux, no filesystem reports the
// corresponding capability.
func (s *Swapper) ExchangeData(a, b string) error {
	return &os.LinkError{Op: "exchangedata", Old: a, New: b, Err: ErrExchangeDataUnsupported}
}
