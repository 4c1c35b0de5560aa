// File model contains the structs which match the direct structures of the FAT filesystem.

package gofat

// Size of one physical directory slot in bytes.
const slotSize = 32

// Directory entry attribute bits.
const (
	AttrReadOnly  = 0x01
	AttrHidden    = 0x02
	AttrSystem    = 0x04
	AttrVolumeID  = 0x08
	AttrDirectory = 0x10
	AttrArchive   = 0x20

	// attrLongName marks a slot as part of a long filename chain.
	attrLongName     = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeID
	attrLongNameMask = attrLongName | AttrDirectory | AttrArchive
)

// First-byte sentinels of a directory slot.
const (
	slotEndMarker    = 0x00 // no further entries exist in this region
	slotDeleted      = 0xE5 // this slot is free, following slots may not be
	slotDeletedEsc   = 0x05 // escape for a real leading 0xE5 byte (KANJI)
	lastLongEntry    = 0x40 // OR-ed onto the sequence number of the last LFN slot
	longSeqMask      = 0x3F
	runesPerLongSlot = 13
	longNameMaxLen   = 255
	maxLongSlots     = (longNameMaxLen + runesPerLongSlot - 1) / runesPerLongSlot
)

type BPB struct {
	BSJumpBoot          [3]byte
	BSOEMName           [8]byte
	BytesPerSector      uint16
	SectorsPerCluster   byte
	ReservedSectorCount uint16
	NumFATs             byte
	RootEntryCount      uint16
	TotalSectors16      uint16
	Media               byte
	FATSize16           uint16
	SectorsPerTrack     uint16
	NumberOfHeads       uint16
	HiddenSectors       uint32
	TotalSectors32      uint32
	FATSpecificData     [54]byte
}

type FAT16SpecificData struct {
	BSDriveNumber    byte
	BSReserved1      byte
	BSBootSignature  byte
	BSVolumeId       uint32
	BSVolumeLabel    [11]byte
	BSFileSystemType [8]byte
}

type FAT32SpecificData struct {
	FatSize          uint32
	ExtFlags         uint16
	FSVersion        uint16
	RootCluster      fatEntry
	FSInfo           uint16
	BkBootSector     uint16
	Reserved         [12]byte
	BSDriveNumber    byte
	BSReserved1      byte
	BSBootSignature  byte
	BSVolumeID       uint32
	BSVolumeLabel    [11]byte
	BSFileSystemType [8]byte
}

// EntryHeader is the physical layout of a short-name directory slot.
type EntryHeader struct {
	Name            [11]byte
	Attribute       byte
	NTReserved      byte
	CreateTimeTenth byte
	CreateTime      uint16
	CreateDate      uint16
	LastAccessDate  uint16
	FirstClusterHI  uint16
	WriteTime       uint16
	WriteDate       uint16
	FirstClusterLO  uint16
	FileSize        uint32
}

// LongFilenameEntry is the physical layout of one slot of a long filename
// chain. The name characters are spread over three strides of 5, 6 and 2
// UCS-2 code units.
type LongFilenameEntry struct {
	Sequence  byte
	First     [5]uint16
	Attribute byte
	EntryType byte
	Checksum  byte
	Second    [6]uint16
	Zero      [2]byte
	Third     [2]uint16
}

// ExtendedEntryHeader is a short-name entry together with the long
// filename reconstructed from the preceding chain, if there was a valid
// one.
type ExtendedEntryHeader struct {
	EntryHeader
	ExtendedName string
}
