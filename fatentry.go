package gofat

// FatVariant selects between the three FAT table widths. It is derived
// once at mount time from the data cluster count and is immutable for the
// lifetime of the volume.
type FatVariant uint8

const (
	FAT12 FatVariant = iota
	FAT16
	FAT32
)

// Cluster count thresholds that determine the FAT variant.
// The values aren't round; the specification promises they are right anyway.
const (
	fat12MaxClusters = 4085
	fat16MaxClusters = 65525
)

func variantForClusterCount(dataClusters uint32) FatVariant {
	switch {
	case dataClusters < fat12MaxClusters:
		return FAT12
	case dataClusters < fat16MaxClusters:
		return FAT16
	default:
		return FAT32
	}
}

func (v FatVariant) String() string {
	switch v {
	case FAT12:
		return "FAT12"
	case FAT16:
		return "FAT16"
	case FAT32:
		return "FAT32"
	}
	return "unknown"
}

// entryMask returns the significant bits of a table entry.
// FAT32 entries are 32 bits wide on disk but only use the lower 28;
// the upper four bits must be preserved on write.
func (v FatVariant) entryMask() uint32 {
	switch v {
	case FAT12:
		return 0xFFF
	case FAT16:
		return 0xFFFF
	default:
		return 0x0FFFFFFF
	}
}

// badMarker is the single reserved value denoting a bad cluster.
func (v FatVariant) badMarker() uint32 {
	switch v {
	case FAT12:
		return 0x0FF7
	case FAT16:
		return 0xFFF7
	default:
		return 0x0FFFFFF7
	}
}

// eocThreshold is the first value of the end-of-chain range. Everything
// from here up to entryMask marks the last cluster of a chain.
func (v FatVariant) eocThreshold() uint32 {
	switch v {
	case FAT12:
		return 0x0FF8
	case FAT16:
		return 0xFFF8
	default:
		return 0x0FFFFFF8
	}
}

// fatEntry is the raw value stored at one cluster's slot in the
// allocation table, already masked to the variant's significant bits.
type fatEntry uint32

const (
	entryFree     fatEntry = 0
	entryReserved fatEntry = 1
)

func (e fatEntry) Value() uint32 { return uint32(e) }

func (e fatEntry) IsFree() bool { return e == entryFree }

// IsReserved reports the reserved value 1 which must never appear inside
// a live chain.
func (e fatEntry) IsReserved() bool { return e == entryReserved }

func (e fatEntry) IsBad(v FatVariant) bool { return uint32(e) == v.badMarker() }

func (e fatEntry) IsEOF(v FatVariant) bool {
	return uint32(e) >= v.eocThreshold() && uint32(e) <= v.entryMask()
}

// IsNextCluster reports whether the entry points at a successor cluster.
func (e fatEntry) IsNextCluster(v FatVariant) bool {
	return uint32(e) >= 2 && uint32(e) < v.badMarker()
}
