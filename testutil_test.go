package gofat

import (
	"encoding/binary"
	"io"
	"testing"
)

// ramImage is a read-write volume image living in memory, used instead
// of real image files so the write path can be exercised freely.
type ramImage struct {
	data []byte
	pos  int64
}

func (r *ramImage) Read(p []byte) (int, error) {
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

func (r *ramImage) Write(p []byte) (int, error) {
	if end := r.pos + int64(len(p)); end > int64(len(r.data)) {
		return 0, io.ErrShortWrite
	}
	n := copy(r.data[r.pos:], p)
	r.pos += int64(n)
	return n, nil
}

func (r *ramImage) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		r.pos = offset
	case io.SeekCurrent:
		r.pos += offset
	case io.SeekEnd:
		r.pos = int64(len(r.data)) + offset
	}
	return r.pos, nil
}

// imageGeometry fixes the layout of a generated test volume.
type imageGeometry struct {
	reserved     uint16
	numFATs      uint8
	rootEntries  uint16
	fatSectors   uint32
	dataClusters uint32
	totalSectors uint32
}

func geometryFor(variant FatVariant) imageGeometry {
	switch variant {
	case FAT12:
		// 256 data clusters, well below the FAT12 limit.
		return imageGeometry{reserved: 1, numFATs: 2, rootEntries: 128, fatSectors: 1, dataClusters: 256}
	case FAT16:
		// 4200 data clusters: (4202 entries * 2 bytes) / 512 -> 17 sectors per FAT.
		return imageGeometry{reserved: 1, numFATs: 2, rootEntries: 128, fatSectors: 17, dataClusters: 4200}
	default:
		// 65600 data clusters: (65602 entries * 4 bytes) / 512 -> 513 sectors per FAT.
		return imageGeometry{reserved: 32, numFATs: 2, rootEntries: 0, fatSectors: 513, dataClusters: 65600}
	}
}

func (g imageGeometry) rootSectors() uint32 {
	return (uint32(g.rootEntries)*slotSize + 511) / 512
}

func (g imageGeometry) firstDataSector() uint32 {
	return uint32(g.reserved) + uint32(g.numFATs)*g.fatSectors + g.rootSectors()
}

// buildTestImage assembles a freshly formatted volume of the requested
// variant in memory.
func buildTestImage(variant FatVariant) *ramImage {
	g := geometryFor(variant)
	total := g.firstDataSector() + g.dataClusters
	img := make([]byte, int64(total)*512)

	// Boot sector.
	copy(img[0:], []byte{0xEB, 0x3C, 0x90})
	copy(img[3:], "GOFATTST")
	binary.LittleEndian.PutUint16(img[11:], 512)
	img[13] = 1 // sectors per cluster
	binary.LittleEndian.PutUint16(img[14:], g.reserved)
	img[16] = g.numFATs
	binary.LittleEndian.PutUint16(img[17:], g.rootEntries)
	if total <= 0xFFFF {
		binary.LittleEndian.PutUint16(img[19:], uint16(total))
	} else {
		binary.LittleEndian.PutUint32(img[32:], total)
	}
	img[21] = 0xF8

	switch variant {
	case FAT32:
		binary.LittleEndian.PutUint32(img[36:], g.fatSectors)
		binary.LittleEndian.PutUint32(img[44:], 2) // root cluster
		binary.LittleEndian.PutUint16(img[48:], 1) // FSInfo sector
		binary.LittleEndian.PutUint16(img[50:], 6)
		img[66] = 0x29
		copy(img[71:], "TESTVOL    ")
		copy(img[82:], "FAT32   ")
	default:
		binary.LittleEndian.PutUint16(img[22:], uint16(g.fatSectors))
		img[38] = 0x29
		copy(img[43:], "TESTVOL    ")
		copy(img[54:], "FAT16   ")
	}
	binary.LittleEndian.PutUint16(img[510:], 0xAA55)

	// Reserved FAT entries 0 and 1, mirrored into every copy. On FAT32
	// the root directory cluster is terminated as well.
	for copyIdx := uint32(0); copyIdx < uint32(g.numFATs); copyIdx++ {
		base := (uint32(g.reserved) + copyIdx*g.fatSectors) * 512
		switch variant {
		case FAT12:
			img[base] = 0xF8
			img[base+1] = 0xFF
			img[base+2] = 0xFF
		case FAT16:
			binary.LittleEndian.PutUint16(img[base:], 0xFFF8)
			binary.LittleEndian.PutUint16(img[base+2:], 0xFFFF)
		default:
			binary.LittleEndian.PutUint32(img[base:], 0x0FFFFFF8)
			binary.LittleEndian.PutUint32(img[base+4:], 0x0FFFFFFF)
			binary.LittleEndian.PutUint32(img[base+8:], 0x0FFFFFFF)
		}
	}

	if variant == FAT32 {
		// FSInfo sector with the root cluster already accounted for.
		info := img[512:]
		binary.LittleEndian.PutUint32(info[0:], 0x41615252)
		binary.LittleEndian.PutUint32(info[484:], 0x61417272)
		binary.LittleEndian.PutUint32(info[488:], g.dataClusters-1)
		binary.LittleEndian.PutUint32(info[492:], 3)
	}

	return &ramImage{data: img}
}

// mountTestVolume builds and mounts a fresh volume.
func mountTestVolume(t *testing.T, variant FatVariant) (*Fs, *ramImage) {
	t.Helper()

	img := buildTestImage(variant)
	fs, err := New(img)
	if err != nil {
		t.Fatalf("mounting the test volume failed: %v", err)
	}
	if fs.FSType() != variant {
		t.Fatalf("test volume has type %v, want %v", fs.FSType(), variant)
	}
	return fs, img
}
