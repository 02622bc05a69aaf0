package fileman

import (
	"github.com/desertwitch/fileman/internal/filesystem"
	"github.com/desertwitch/fileman/internal/metadata"
	"github.com/desertwitch/fileman/internal/replace"
)

type (
	// FileType is the type of a filesystem node.
	FileType = filesystem.FileType

	// Enumerator is a lazy listing of the contents of a directory.
	Enumerator = filesystem.Enumerator

	// TransferInfo tracks the progress of a copy or move.
	TransferInfo = filesystem.TransferInfo

	// TransferStats is a snapshot of a [TransferInfo].
	TransferStats = filesystem.TransferStats

	// Options modify the behavior of [Manager.ReplaceItem].
	Options = replace.Options

	// Strategy is the way an item replacement is carried out.
	Strategy = replace.Strategy

	// VolumeID identifies a mounted filesystem.
	VolumeID = metadata.VolumeID

	// Capabilities are the optional primitives a volume supports.
	Capabilities = metadata.Capabilities

	// Attributes are the extended attributes of a filesystem node.
	Attributes = metadata.Attributes
)

const (
	Regular          = filesystem.Regular
	Directory        = filesystem.Directory
	SymbolicLink     = filesystem.SymbolicLink
	FIFO             = filesystem.FIFO
	CharacterSpecial = filesystem.CharacterSpecial
	BlockSpecial     = filesystem.BlockSpecial
	Socket           = filesystem.Socket
	Whiteout         = filesystem.Whiteout
)

const (
	UsingNewMetadataOnly      = replace.UsingNewMetadataOnly
	WithoutDeletingBackupItem = replace.WithoutDeletingBackupItem
)

const (
	Manual     = replace.Manual
	RenameSwap = replace.RenameSwap
	Exchange   = replace.Exchange
)

const (
	CapRenameSwap   = metadata.CapRenameSwap
	CapExchangeData = metadata.CapExchangeData
)
