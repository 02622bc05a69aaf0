package metadata

import (
	"strings"

	"github.com/google/uuid"
)

// VolumeID identifies a single mounted filesystem instance. Two paths are on
// the same volume if their identities compare equal.
type VolumeID uuid.UUID

//nolint:gochecknoglobals
var volumeNamespace = uuid.MustParse("5b0e3f86-7c52-4b8e-9d0a-3f1f6a1e2c47")

func newVolumeID(name string) VolumeID {
	return VolumeID(uuid.NewSHA1(volumeNamespace, []byte(name)))
}

func (v VolumeID) String() string {
	return uuid.UUID(v).String()
}

// Capabilities is a set of optional native operations a volume supports.
type Capabilities uint32

const (
	// CapRenameSwap is the atomic exchange of two paths by name.
	CapRenameSwap Capabilities = 1 << iota

	// CapExchangeData is the atomic exchange of the content of two files,
	// with each of the files keeping its own identity.
	CapExchangeData
)

// Has reports if all capabilities of o are contained in c.
func (c Capabilities) Has(o Capabilities) bool {
	return c&o == o
}

func (c Capabilities) String() string {
	var names []string

	if c.Has(CapRenameSwap) {
		names = append(names, "rename-swap")
	}
	if c.Has(CapExchangeData) {
		names = append(names, "exchange-data")
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ",")
}

// Filesystem magic numbers as reported in the f_type field of statfs.
const (
	magicBcachefs = 0xca451a4e
	magicBtrfs    = 0x9123683e
	magicCifs     = 0xff534d42
	magicExfat    = 0x2011bab0
	magicExt4     = 0xef53
	magicF2fs     = 0xf2f52010
	magicFuse     = 0x65735546
	magicHfsplus  = 0x482b
	magicMsdos    = 0x4d44
	magicNfs      = 0x6969
	magicNtfs     = 0x5346544e
	magicOverlay  = 0x794c7630
	magicProc     = 0x9fa0
	magicRamfs    = 0x858458f6
	magicSmb2     = 0xfe534d42
	magicSquashfs = 0x73717368
	magicSysfs    = 0x62656572
	magicTmpfs    = 0x01021994
	magicUbifs    = 0x24051905
	magicXfs      = 0x58465342
	magicZfs      = 0x2fc12fc1
)

//nolint:gochecknoglobals
var filesystemNames = map[uint32]string{
	magicBcachefs: "bcachefs",
	magicBtrfs:    "btrfs",
	magicCifs:     "cifs",
	magicExfat:    "exfat",
	magicExt4:     "ext4",
	magicF2fs:     "f2fs",
	magicFuse:     "fuse",
	magicHfsplus:  "hfsplus",
	magicMsdos:    "vfat",
	magicNfs:      "nfs",
	magicNtfs:     "ntfs",
	magicOverlay:  "overlay",
	magicProc:     "proc",
	magicRamfs:    "ramfs",
	magicSmb2:     "smb2",
	magicSquashfs: "squashfs",
	magicSysfs:    "sysfs",
	magicTmpfs:    "tmpfs",
	magicUbifs:    "ubifs",
	magicXfs:      "xfs",
	magicZfs:      "zfs",
}

// renameSwapFilesystems implement renameat2 with RENAME_EXCHANGE.
//
//nolint:gochecknoglobals
var renameSwapFilesystems = map[uint32]struct{}{
	magicBcachefs: {},
	magicBtrfs:    {},
	magicExt4:     {},
	magicF2fs:     {},
	magicRamfs:    {},
	magicTmpfs:    {},
	magicUbifs:    {},
	magicXfs:      {},
}

func capabilitiesOf(fsType uint32) Capabilities {
	var caps Capabilities

	if _, ok := renameSwapFilesystems[fsType]; ok {
		caps |= CapRenameSwap
	}

	return caps
}
