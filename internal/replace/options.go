package replace

import (
	"fmt"

	"github.com/desertwitch/fileman/internal/metadata"
)

// Options modify the behavior of [Handler.ReplaceItem].
type Options uint8

const (
	// UsingNewMetadataOnly discards the extended attributes of the original
	// item instead of merging them into the replacement.
	UsingNewMetadataOnly Options = 1 << iota

	// WithoutDeletingBackupItem keeps the displaced original item at the path
	// of the new item instead of removing it.
	WithoutDeletingBackupItem
)

// Has reports if all options of o are contained in opts.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// Strategy is the way an item replacement is carried out.
type Strategy int

const (
	// Manual moves the original aside, the new item into place and the
	// original to the new item's path (or removes it). It is not atomic.
	Manual Strategy = iota

	// RenameSwap exchanges both paths in a single atomic rename.
	RenameSwap

	// Exchange exchanges the data of both files, each keeping its identity.
	Exchange
)

func (s Strategy) String() string {
	switch s {
	case Manual:
		return "manual"
	case RenameSwap:
		return "rename-swap"
	case Exchange:
		return "exchange"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Preference restricts the strategies that may be selected. A strategy the
// volume does not support degrades to the next one it does.
type Preference int

const (
	// PreferAuto selects the best strategy the volume supports.
	PreferAuto Preference = iota

	// PreferRenameSwap is the same as [PreferAuto], as rename-swap is always
	// the first choice.
	PreferRenameSwap

	// PreferExchange never selects [RenameSwap].
	PreferExchange

	// PreferManual always selects [Manual].
	PreferManual
)

//nolint:gochecknoglobals
var preferenceNames = map[string]Preference{
	"auto":        PreferAuto,
	"rename-swap": PreferRenameSwap,
	"exchange":    PreferExchange,
	"manual":      PreferManual,
}

// ParsePreference returns the [Preference] of the given name.
func ParsePreference(name string) (Preference, error) {
	p, ok := preferenceNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPreference, name)
	}

	return p, nil
}

func (p Preference) String() string {
	for name, pref := range preferenceNames {
		if pref == p {
			return name
		}
	}

	return fmt.Sprintf("Preference(%d)", int(p))
}

// mask returns the capabilities the preference permits to be used.
func (p Preference) mask() metadata.Capabilities {
	switch p {
	case PreferExchange:
		return metadata.CapExchangeData
	case PreferManual:
		return 0
	default:
		return metadata.CapRenameSwap | metadata.CapExchangeData
	}
}
