package gofat

import (
	"context"
	"errors"
	"testing"
)

// chainOf collects the clusters of a chain for verification.
func chainOf(t *testing.T, table *Table, start uint32) []uint32 {
	t.Helper()

	var clusters []uint32
	err := table.walkChain(context.Background(), start, func(cluster, index uint32) (bool, error) {
		clusters = append(clusters, cluster)
		return false, nil
	})
	if err != nil {
		t.Fatalf("walking the chain failed: %v", err)
	}
	return clusters
}

func TestTable_AllocateAndFreeRoundTrip(t *testing.T) {
	for _, variant := range []FatVariant{FAT12, FAT16, FAT32} {
		t.Run(variant.String(), func(t *testing.T) {
			fs, _ := mountTestVolume(t, variant)
			ctx := context.Background()
			table := fs.FatTable()

			before, err := table.FreeClusterCount(ctx)
			if err != nil {
				t.Fatalf("FreeClusterCount() error = %v", err)
			}

			start, err := table.AllocateChain(ctx, 10)
			if err != nil {
				t.Fatalf("AllocateChain() error = %v", err)
			}

			chain := chainOf(t, table, start)
			if len(chain) != 10 {
				t.Errorf("allocated chain has %v clusters, want 10", len(chain))
			}

			during, err := table.FreeClusterCount(ctx)
			if err != nil {
				t.Fatalf("FreeClusterCount() error = %v", err)
			}
			if during != before-10 {
				t.Errorf("free count while allocated = %v, want %v", during, before-10)
			}

			if err := table.FreeChain(ctx, start); err != nil {
				t.Fatalf("FreeChain() error = %v", err)
			}

			for _, cluster := range chain {
				entry, err := table.ReadEntry(ctx, cluster)
				if err != nil {
					t.Fatalf("ReadEntry(%v) error = %v", cluster, err)
				}
				if !entry.IsFree() {
					t.Errorf("cluster %v is not free after FreeChain", cluster)
				}
			}

			after, err := table.FreeClusterCount(ctx)
			if err != nil {
				t.Fatalf("FreeClusterCount() error = %v", err)
			}
			if after != before {
				t.Errorf("free count after free = %v, want %v", after, before)
			}
		})
	}
}

func TestTable_FreeChainTwice(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT16)
	ctx := context.Background()
	table := fs.FatTable()

	start, err := table.AllocateChain(ctx, 3)
	if err != nil {
		t.Fatalf("AllocateChain() error = %v", err)
	}
	if err := table.FreeChain(ctx, start); err != nil {
		t.Fatalf("first FreeChain() error = %v", err)
	}

	before, _ := table.FreeClusterCount(ctx)
	if err := table.FreeChain(ctx, start); err != nil {
		t.Errorf("second FreeChain() error = %v, want nil", err)
	}
	after, _ := table.FreeClusterCount(ctx)
	if after != before {
		t.Errorf("double free changed the free count from %v to %v", before, after)
	}
}

func TestTable_CycleDetection(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT16)
	ctx := context.Background()
	table := fs.FatTable()

	// 10 -> 11 -> 12 -> 10 is a cycle and must never loop forever.
	for _, link := range [][2]uint32{{10, 11}, {11, 12}, {12, 10}} {
		if err := table.WriteEntry(ctx, link[0], link[1]); err != nil {
			t.Fatalf("WriteEntry() error = %v", err)
		}
	}

	if _, _, err := table.ChainLength(ctx, 10); !errors.Is(err, ErrCorruptChain) {
		t.Errorf("ChainLength() on a cycle error = %v, want ErrCorruptChain", err)
	}
	if err := table.FreeChain(ctx, 10); err != nil && !errors.Is(err, ErrCorruptChain) {
		t.Errorf("FreeChain() on a cycle error = %v, want nil or ErrCorruptChain", err)
	}
}

func TestTable_NextOnChainBreak(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT16)
	ctx := context.Background()
	table := fs.FatTable()

	tests := []struct {
		name  string
		value uint32
	}{
		{"free entry inside a chain", 0},
		{"reserved entry inside a chain", 1},
		{"bad cluster marker", FAT16.badMarker()},
		{"pointer beyond the data region", fs.info.MaxCluster + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := table.WriteEntry(ctx, 20, tt.value); err != nil {
				t.Fatalf("WriteEntry() error = %v", err)
			}
			if _, _, err := table.Next(ctx, 20); !errors.Is(err, ErrCorruptChain) {
				t.Errorf("Next() error = %v, want ErrCorruptChain", err)
			}
		})
	}
}

func TestTable_WriteEntryMirrors(t *testing.T) {
	for _, variant := range []FatVariant{FAT12, FAT16, FAT32} {
		t.Run(variant.String(), func(t *testing.T) {
			fs, _ := mountTestVolume(t, variant)
			ctx := context.Background()
			table := fs.FatTable()

			value := uint32(0x123)
			if err := table.WriteEntry(ctx, 7, value); err != nil {
				t.Fatalf("WriteEntry() error = %v", err)
			}

			for copyIdx := uint8(0); copyIdx < fs.info.NumFATs; copyIdx++ {
				got, err := table.readRaw(ctx, copyIdx, 7)
				if err != nil {
					t.Fatalf("readRaw(copy %v) error = %v", copyIdx, err)
				}
				if got != value {
					t.Errorf("FAT copy %v holds %#x, want %#x", copyIdx, got, value)
				}
			}
		})
	}
}

func TestTable_WriteEntryOutOfRange(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT12)
	ctx := context.Background()
	table := fs.FatTable()

	tests := []struct {
		name    string
		cluster uint32
	}{
		{"cluster 0", 0},
		{"cluster 1", 1},
		{"beyond the data region", fs.info.MaxCluster + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := table.WriteEntry(ctx, tt.cluster, 0x123); !errors.Is(err, ErrClusterOutOfRange) {
				t.Errorf("WriteEntry() error = %v, want ErrClusterOutOfRange", err)
			}
			if _, err := table.ReadEntry(ctx, tt.cluster); !errors.Is(err, ErrClusterOutOfRange) {
				t.Errorf("ReadEntry() error = %v, want ErrClusterOutOfRange", err)
			}
		})
	}
}

func TestTable_FAT12NibblePacking(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT12)
	ctx := context.Background()
	table := fs.FatTable()

	// Adjacent even and odd clusters share bytes; none of the writes may
	// clobber a neighbour.
	values := map[uint32]uint32{2: 0xABC, 3: 0x123, 4: 0xFFF, 5: 0x005}
	for cluster, value := range values {
		if err := table.WriteEntry(ctx, cluster, value); err != nil {
			t.Fatalf("WriteEntry(%v) error = %v", cluster, err)
		}
	}
	for cluster, want := range values {
		entry, err := table.ReadEntry(ctx, cluster)
		if err != nil {
			t.Fatalf("ReadEntry(%v) error = %v", cluster, err)
		}
		if entry.Value() != want {
			t.Errorf("cluster %v holds %#x, want %#x", cluster, entry.Value(), want)
		}
	}
}

func TestTable_ExtendChain(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT16)
	ctx := context.Background()
	table := fs.FatTable()

	start, err := table.AllocateChain(ctx, 3)
	if err != nil {
		t.Fatalf("AllocateChain() error = %v", err)
	}
	_, tail, err := table.ChainLength(ctx, start)
	if err != nil {
		t.Fatalf("ChainLength() error = %v", err)
	}

	newTail, err := table.ExtendChain(ctx, tail, 2)
	if err != nil {
		t.Fatalf("ExtendChain() error = %v", err)
	}

	length, gotTail, err := table.ChainLength(ctx, start)
	if err != nil {
		t.Fatalf("ChainLength() error = %v", err)
	}
	if length != 5 {
		t.Errorf("chain length after extend = %v, want 5", length)
	}
	if gotTail != newTail {
		t.Errorf("chain tail = %v, want %v", gotTail, newTail)
	}
}

func TestTable_TruncateChain(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT16)
	ctx := context.Background()
	table := fs.FatTable()

	start, err := table.AllocateChain(ctx, 5)
	if err != nil {
		t.Fatalf("AllocateChain() error = %v", err)
	}
	chain := chainOf(t, table, start)

	if err := table.TruncateChain(ctx, start, 2); err != nil {
		t.Fatalf("TruncateChain() error = %v", err)
	}

	kept := chainOf(t, table, start)
	if len(kept) != 2 {
		t.Fatalf("chain length after truncate = %v, want 2", len(kept))
	}
	tailEntry, err := table.ReadEntry(ctx, kept[1])
	if err != nil {
		t.Fatalf("ReadEntry() error = %v", err)
	}
	if !tailEntry.IsEOF(FAT16) {
		t.Errorf("new tail entry = %#x, want an end-of-chain marker", tailEntry.Value())
	}

	for _, cluster := range chain[2:] {
		entry, err := table.ReadEntry(ctx, cluster)
		if err != nil {
			t.Fatalf("ReadEntry(%v) error = %v", cluster, err)
		}
		if !entry.IsFree() {
			t.Errorf("truncated cluster %v is not free", cluster)
		}
	}

	// Truncating below the current length again is a no-op when the chain
	// is already short enough.
	if err := table.TruncateChain(ctx, start, 4); err != nil {
		t.Errorf("TruncateChain() beyond the length error = %v", err)
	}
	if got := chainOf(t, table, start); len(got) != 2 {
		t.Errorf("chain length = %v, want still 2", len(got))
	}

	// keepLength 0 frees the whole chain.
	if err := table.TruncateChain(ctx, start, 0); err != nil {
		t.Fatalf("TruncateChain(0) error = %v", err)
	}
	entry, err := table.ReadEntry(ctx, start)
	if err != nil {
		t.Fatalf("ReadEntry() error = %v", err)
	}
	if !entry.IsFree() {
		t.Errorf("start cluster is not free after truncating to 0")
	}
}

func TestTable_AllocateChainNoSpace(t *testing.T) {
	fs, _ := mountTestVolume(t, FAT12)
	ctx := context.Background()
	table := fs.FatTable()

	free, err := table.FreeClusterCount(ctx)
	if err != nil {
		t.Fatalf("FreeClusterCount() error = %v", err)
	}

	if _, err := table.AllocateChain(ctx, free+1); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("AllocateChain() error = %v, want ErrNoSpace", err)
	}

	// The failed allocation must not have claimed anything.
	after, err := table.FreeClusterCount(ctx)
	if err != nil {
		t.Fatalf("FreeClusterCount() error = %v", err)
	}
	if after != free {
		t.Errorf("free count after failed allocation = %v, want %v", after, free)
	}
}

// brokenMirrorDevice passes everything through until writes hit the
// second FAT copy, which then fail.
type brokenMirrorDevice struct {
	BlockDevice
	failFrom, failTo uint32
	armed            bool
}

func (d *brokenMirrorDevice) WriteSector(ctx context.Context, index uint32, src []byte) error {
	if d.armed && index >= d.failFrom && index < d.failTo {
		return errors.New("injected write failure")
	}
	return d.BlockDevice.WriteSector(ctx, index, src)
}

func TestTable_WriteEntryMirrorRollback(t *testing.T) {
	img := buildTestImage(FAT16)
	inner, err := NewDevice(img, 512)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}

	device := &brokenMirrorDevice{BlockDevice: inner}
	fs, err := Mount(device, Config{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	table := fs.FatTable()
	ctx := context.Background()

	if err := table.WriteEntry(ctx, 9, 0x1111); err != nil {
		t.Fatalf("WriteEntry() error = %v", err)
	}

	// All writes into the second FAT copy fail from now on.
	device.failFrom = uint32(fs.info.ReservedSectors) + fs.info.SectorsPerFAT
	device.failTo = device.failFrom + fs.info.SectorsPerFAT
	device.armed = true

	if err := table.WriteEntry(ctx, 9, 0x2222); err == nil {
		t.Fatal("WriteEntry() succeeded although a mirror write failed")
	}

	device.armed = false
	for copyIdx := uint8(0); copyIdx < 2; copyIdx++ {
		got, err := table.readRaw(ctx, copyIdx, 9)
		if err != nil {
			t.Fatalf("readRaw(copy %v) error = %v", copyIdx, err)
		}
		if got != 0x1111 {
			t.Errorf("FAT copy %v holds %#x after the failed write, want %#x", copyIdx, got, 0x1111)
		}
	}
	if table.MirrorInconsistent() {
		t.Error("volume is flagged mirror-inconsistent although the rewind succeeded")
	}
}
