package gofat

import (
	"context"
	"encoding/binary"
	"errors"
	"log/slog"

	"github.com/embedfs/gofat/checkpoint"
)

// These errors may occur while manipulating the allocation table.
var (
	ErrNoSpace            = errors.New("no free clusters left on the volume")
	ErrClusterOutOfRange  = errors.New("cluster index outside the valid data region")
	ErrCorruptChain       = errors.New("corrupt cluster chain")
	ErrMirrorInconsistent = errors.New("allocation table mirrors need a resync")
)

const unknownFreeCount = 0xFFFFFFFF

// Table owns the allocation table of a mounted volume: it resolves chain
// successors and allocates, extends, truncates and frees cluster chains,
// keeping all mirrored FAT copies identical.
//
// The table never retries a failed device access and never defers a dirty
// entry: every mutation is written through to all mirrors before the
// operation returns.
type Table struct {
	fs *Fs

	// rover is the cluster where the next free-cluster scan starts,
	// advanced on every successful allocation so repeated small
	// allocations do not rescan the low clusters over and over.
	rover uint32

	// freeCount caches the number of free clusters, unknownFreeCount
	// until first computed or seeded from the FAT32 FSInfo sector.
	freeCount uint32

	// mirrorBad is set when a mirror write failed in a way that could not
	// be rolled back. Reads keep working from the primary copy, further
	// allocation is rejected until an external repair step runs.
	mirrorBad bool
}

// MirrorInconsistent reports whether the mirrored FAT copies are known to
// diverge.
func (t *Table) MirrorInconsistent() bool { return t.mirrorBad }

// entryOffset returns the byte offset of a cluster's entry inside one FAT
// copy and whether the 12-bit value sits in the upper nibble of its pair.
func (t *Table) entryOffset(cluster uint32) (offset uint32, highNibble bool) {
	switch t.fs.info.FSType {
	case FAT12:
		return cluster + cluster/2, cluster%2 == 1
	case FAT16:
		return cluster * 2, false
	default:
		return cluster * 4, false
	}
}

func (t *Table) checkRange(cluster uint32) error {
	if cluster < 2 || cluster > t.fs.info.MaxCluster {
		return checkpoint.From(ErrClusterOutOfRange)
	}
	return nil
}

// fatSector maps a byte offset inside a FAT copy to the physical sector
// and the offset within it.
func (t *Table) fatSector(copy uint8, byteOffset uint32) (sector uint32, in uint32) {
	ss := uint32(t.fs.info.SectorSize)
	base := uint32(t.fs.info.ReservedSectors) + uint32(copy)*t.fs.info.SectorsPerFAT
	return base + byteOffset/ss, byteOffset % ss
}

func (t *Table) readByte(ctx context.Context, copy uint8, byteOffset uint32) (byte, error) {
	sector, in := t.fatSector(copy, byteOffset)
	if err := t.fs.fetch(ctx, sector); err != nil {
		return 0, err
	}
	return t.fs.window.buffer[in], nil
}

func (t *Table) writeByte(ctx context.Context, copy uint8, byteOffset uint32, value byte) error {
	sector, in := t.fatSector(copy, byteOffset)
	if err := t.fs.fetch(ctx, sector); err != nil {
		return err
	}
	t.fs.window.buffer[in] = value
	t.fs.window.dirty = true
	return t.fs.store(ctx)
}

// readRaw reads the raw entry value of cluster from the given FAT copy.
func (t *Table) readRaw(ctx context.Context, copy uint8, cluster uint32) (uint32, error) {
	offset, highNibble := t.entryOffset(cluster)

	switch t.fs.info.FSType {
	case FAT12:
		// A 12-bit entry may straddle a sector boundary, so the two bytes
		// are read individually.
		b0, err := t.readByte(ctx, copy, offset)
		if err != nil {
			return 0, err
		}
		b1, err := t.readByte(ctx, copy, offset+1)
		if err != nil {
			return 0, err
		}
		value := uint32(b0) | uint32(b1)<<8
		if highNibble {
			value >>= 4
		}
		return value & 0xFFF, nil
	case FAT16:
		sector, in := t.fatSector(copy, offset)
		if err := t.fs.fetch(ctx, sector); err != nil {
			return 0, err
		}
		return uint32(binary.LittleEndian.Uint16(t.fs.window.buffer[in:])), nil
	default:
		sector, in := t.fatSector(copy, offset)
		if err := t.fs.fetch(ctx, sector); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint32(t.fs.window.buffer[in:]) & FAT32.entryMask(), nil
	}
}

// writeRaw writes the entry value of cluster into the given FAT copy,
// preserving the bits outside the variant's entry width.
func (t *Table) writeRaw(ctx context.Context, copy uint8, cluster, value uint32) error {
	offset, highNibble := t.entryOffset(cluster)

	switch t.fs.info.FSType {
	case FAT12:
		b0, err := t.readByte(ctx, copy, offset)
		if err != nil {
			return err
		}
		b1, err := t.readByte(ctx, copy, offset+1)
		if err != nil {
			return err
		}
		pair := uint32(b0) | uint32(b1)<<8
		if highNibble {
			pair = pair&0x000F | (value&0xFFF)<<4
		} else {
			pair = pair&0xF000 | value&0xFFF
		}
		if err := t.writeByte(ctx, copy, offset, byte(pair)); err != nil {
			return err
		}
		return t.writeByte(ctx, copy, offset+1, byte(pair>>8))
	case FAT16:
		sector, in := t.fatSector(copy, offset)
		if err := t.fs.fetch(ctx, sector); err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(t.fs.window.buffer[in:], uint16(value))
		t.fs.window.dirty = true
		return t.fs.store(ctx)
	default:
		sector, in := t.fatSector(copy, offset)
		if err := t.fs.fetch(ctx, sector); err != nil {
			return err
		}
		old := binary.LittleEndian.Uint32(t.fs.window.buffer[in:])
		binary.LittleEndian.PutUint32(t.fs.window.buffer[in:], old&^FAT32.entryMask()|value&FAT32.entryMask())
		t.fs.window.dirty = true
		return t.fs.store(ctx)
	}
}

// ReadEntry returns the allocation table entry of the given cluster, read
// from the primary FAT copy.
func (t *Table) ReadEntry(ctx context.Context, cluster uint32) (fatEntry, error) {
	if err := t.checkRange(cluster); err != nil {
		return 0, err
	}
	value, err := t.readRaw(ctx, 0, cluster)
	if err != nil {
		return 0, err
	}
	return fatEntry(value), nil
}

// WriteEntry updates the entry of the given cluster in every mirrored FAT
// copy. The mirror writes form a single logical operation: if a later
// mirror fails after an earlier one succeeded, the already written copies
// are rewound to their prior value; if even that fails the volume is
// flagged mirror-inconsistent and the error is surfaced.
func (t *Table) WriteEntry(ctx context.Context, cluster, value uint32) error {
	if err := t.checkRange(cluster); err != nil {
		return err
	}

	previous, err := t.readRaw(ctx, 0, cluster)
	if err != nil {
		return err
	}

	for copy := uint8(0); copy < t.fs.info.NumFATs; copy++ {
		if err := t.writeRaw(ctx, copy, cluster, value); err != nil {
			t.rewindMirrors(ctx, copy, cluster, previous)
			return err
		}
	}
	return nil
}

// rewindMirrors restores the prior entry value on the copies that were
// already updated before the failing copy.
func (t *Table) rewindMirrors(ctx context.Context, failed uint8, cluster, previous uint32) {
	for copy := uint8(0); copy < failed; copy++ {
		if err := t.writeRaw(ctx, copy, cluster, previous); err != nil {
			t.mirrorBad = true
			t.fs.log.Error("FAT mirror rewind failed, volume needs a mirror resync",
				slog.Uint64("cluster", uint64(cluster)),
				slog.Uint64("copy", uint64(copy)),
				slog.Any("err", err))
			return
		}
	}
}

// Next resolves the successor of cluster, or ok=false at end-of-chain.
// A free, reserved, bad cluster or out-of-range entry value inside a
// chain means the chain is corrupt.
func (t *Table) Next(ctx context.Context, cluster uint32) (next uint32, ok bool, err error) {
	entry, err := t.ReadEntry(ctx, cluster)
	if err != nil {
		return 0, false, err
	}

	variant := t.fs.info.FSType
	switch {
	case entry.IsEOF(variant):
		return 0, false, nil
	case entry.IsNextCluster(variant) && entry.Value() <= t.fs.info.MaxCluster:
		return entry.Value(), true, nil
	default:
		return 0, false, checkpoint.From(ErrCorruptChain)
	}
}

// maxChainSteps bounds every chain traversal. A healthy chain can never be
// longer than the cluster count, so exceeding it means a cycle.
func (t *Table) maxChainSteps() uint32 {
	return t.fs.info.MaxCluster + 1
}

// walkChain calls visit for every cluster of the chain starting at start.
// Traversal is capped at maxChainSteps to turn cycles into ErrCorruptChain
// instead of looping forever.
func (t *Table) walkChain(ctx context.Context, start uint32, visit func(cluster uint32, index uint32) (stop bool, err error)) error {
	cluster := start
	for step := uint32(0); ; step++ {
		if step >= t.maxChainSteps() {
			return checkpoint.From(ErrCorruptChain)
		}

		stop, err := visit(cluster, step)
		if err != nil || stop {
			return err
		}

		next, ok, err := t.Next(ctx, cluster)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		cluster = next
	}
}

// ChainLength returns the number of clusters and the tail cluster of the
// chain starting at start.
func (t *Table) ChainLength(ctx context.Context, start uint32) (length, tail uint32, err error) {
	err = t.walkChain(ctx, start, func(cluster, index uint32) (bool, error) {
		length = index + 1
		tail = cluster
		return false, nil
	})
	return length, tail, err
}

// findFree scans forward from the rover for the next free cluster,
// wrapping around once.
func (t *Table) findFree(ctx context.Context, from uint32) (uint32, error) {
	cluster := from
	for i := uint32(0); i < t.fs.info.MaxCluster-1; i++ {
		cluster++
		if cluster > t.fs.info.MaxCluster {
			cluster = 2
		}

		entry, err := t.ReadEntry(ctx, cluster)
		if err != nil {
			return 0, err
		}
		if entry.IsFree() {
			return cluster, nil
		}
	}
	return 0, checkpoint.From(ErrNoSpace)
}

// AllocateChain claims length free clusters, links them into a chain
// terminated with an end-of-chain marker and returns the chain's first
// cluster. Allocation is all-or-nothing: a failure partway releases any
// clusters already claimed.
func (t *Table) AllocateChain(ctx context.Context, length uint32) (uint32, error) {
	clusters, err := t.reserve(ctx, length)
	if err != nil {
		return 0, err
	}

	if err := t.link(ctx, clusters); err != nil {
		return 0, err
	}

	return clusters[0], nil
}

// ExtendChain allocates additionalLength clusters and links them after
// tail, returning the new tail of the chain.
func (t *Table) ExtendChain(ctx context.Context, tail, additionalLength uint32) (uint32, error) {
	if err := t.checkRange(tail); err != nil {
		return 0, err
	}

	clusters, err := t.reserve(ctx, additionalLength)
	if err != nil {
		return 0, err
	}

	if err := t.link(ctx, clusters); err != nil {
		return 0, err
	}

	if err := t.WriteEntry(ctx, tail, clusters[0]); err != nil {
		// The fresh segment is unreachable, give it back. It is already a
		// well-formed chain, so FreeChain keeps the free count honest.
		if freeErr := t.FreeChain(ctx, clusters[0]); freeErr != nil {
			t.fs.log.Error("releasing unreachable chain segment failed", slog.Any("err", freeErr))
		}
		return 0, err
	}

	return clusters[len(clusters)-1], nil
}

// reserve picks length free clusters without writing anything yet, so an
// exhausted volume is detected before any entry is touched.
func (t *Table) reserve(ctx context.Context, length uint32) ([]uint32, error) {
	if length == 0 {
		return nil, checkpoint.From(errors.New("chain length must be at least 1"))
	}
	if t.mirrorBad {
		return nil, checkpoint.From(ErrMirrorInconsistent)
	}

	clusters := make([]uint32, 0, length)
	position := t.rover
	for uint32(len(clusters)) < length {
		free, err := t.findFree(ctx, position)
		if err != nil {
			return nil, err
		}
		if len(clusters) > 0 && free == clusters[0] {
			// Wrapped around to the first pick: the volume is exhausted.
			return nil, checkpoint.From(ErrNoSpace)
		}
		clusters = append(clusters, free)
		position = free
	}
	return clusters, nil
}

// link writes the chain links for the reserved clusters, the last one
// getting the end-of-chain marker, and commits the allocation state.
func (t *Table) link(ctx context.Context, clusters []uint32) error {
	eoc := t.fs.info.FSType.entryMask()

	for i, cluster := range clusters {
		value := eoc
		if i+1 < len(clusters) {
			value = clusters[i+1]
		}
		if err := t.WriteEntry(ctx, cluster, value); err != nil {
			t.releaseBestEffort(ctx, clusters[:i+1])
			return err
		}
	}

	t.rover = clusters[len(clusters)-1]
	if t.freeCount != unknownFreeCount {
		t.freeCount -= uint32(len(clusters))
	}
	return nil
}

// releaseBestEffort frees entries claimed by a failed multi-cluster
// operation. Errors are logged, not returned: the caller already has the
// primary failure to surface.
func (t *Table) releaseBestEffort(ctx context.Context, clusters []uint32) {
	for _, cluster := range clusters {
		if err := t.WriteEntry(ctx, cluster, 0); err != nil {
			t.fs.log.Error("releasing partially allocated cluster failed",
				slog.Uint64("cluster", uint64(cluster)),
				slog.Any("err", err))
		}
	}
}

// TruncateChain walks the chain from start, keeps the first keepLength
// clusters, marks the new tail end-of-chain and frees everything beyond.
// keepLength 0 frees the whole chain.
func (t *Table) TruncateChain(ctx context.Context, start, keepLength uint32) error {
	if keepLength == 0 {
		return t.FreeChain(ctx, start)
	}
	if err := t.checkRange(start); err != nil {
		return err
	}

	var newTail, firstFreed uint32
	err := t.walkChain(ctx, start, func(cluster, index uint32) (bool, error) {
		if index == keepLength-1 {
			newTail = cluster
			return false, nil
		}
		if index == keepLength {
			firstFreed = cluster
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	if firstFreed == 0 {
		// Chain is not longer than keepLength, nothing to do.
		return nil
	}

	if err := t.WriteEntry(ctx, newTail, t.fs.info.FSType.entryMask()); err != nil {
		return err
	}
	return t.FreeChain(ctx, firstFreed)
}

// FreeChain frees every cluster of the chain starting at start. Freeing an
// already-free chain is a no-op, not an error, so double frees are
// harmless.
func (t *Table) FreeChain(ctx context.Context, start uint32) error {
	if err := t.checkRange(start); err != nil {
		return err
	}

	entry, err := t.ReadEntry(ctx, start)
	if err != nil {
		return err
	}
	if entry.IsFree() {
		return nil
	}

	variant := t.fs.info.FSType
	cluster := start
	for step := uint32(0); ; step++ {
		if step >= t.maxChainSteps() {
			return checkpoint.From(ErrCorruptChain)
		}

		entry, err := t.ReadEntry(ctx, cluster)
		if err != nil {
			return err
		}

		if err := t.WriteEntry(ctx, cluster, 0); err != nil {
			return err
		}
		if t.freeCount != unknownFreeCount {
			t.freeCount++
		}

		switch {
		case entry.IsEOF(variant):
			return nil
		case entry.IsNextCluster(variant) && entry.Value() <= t.fs.info.MaxCluster:
			cluster = entry.Value()
		default:
			return checkpoint.From(ErrCorruptChain)
		}
	}
}

// FreeClusterCount returns the number of free clusters, scanning the
// whole table once and caching the result afterwards.
func (t *Table) FreeClusterCount(ctx context.Context) (uint32, error) {
	if t.freeCount != unknownFreeCount {
		return t.freeCount, nil
	}

	var free uint32
	for cluster := uint32(2); cluster <= t.fs.info.MaxCluster; cluster++ {
		entry, err := t.ReadEntry(ctx, cluster)
		if err != nil {
			return 0, err
		}
		if entry.IsFree() {
			free++
		}
	}

	t.freeCount = free
	return free, nil
}
