// File cursor implements positioned reads and writes over the two kinds
// of data regions a FAT volume has: cluster chains and the fixed root
// directory area of FAT12/16 volumes.

package gofat

import (
	"context"
	"errors"
	"io"

	"github.com/embedfs/gofat/checkpoint"
)

// ErrFixedRegionFull occurs when the fixed root directory of a FAT12/16
// volume has no room left. Unlike cluster backed regions it cannot grow.
var ErrFixedRegionFull = errors.New("the root directory region is full")

// cursor provides byte addressed access to one region of the volume. A
// cursor does not hold a position, callers pass explicit offsets; the
// only cached state is the most recently resolved chain link, which
// makes sequential access cheap.
type cursor struct {
	fs *Fs

	// root selects the fixed root directory region instead of a chain.
	root  bool
	start uint32
	size  uint32

	// Chain walk memoization: cluster is the chain link at index
	// clusterIdx, counted from start.
	cluster    uint32
	clusterIdx int64
}

func newClusterCursor(fs *Fs, start, size uint32) *cursor {
	return &cursor{fs: fs, start: start, size: size, clusterIdx: -1}
}

func newRootCursor(fs *Fs) *cursor {
	return &cursor{
		fs:   fs,
		root: true,
		size: uint32(fs.info.RootEntryCount) * slotSize,
	}
}

// regionSize is the current logical size of the region in bytes.
func (c *cursor) regionSize() int64 {
	return int64(c.size)
}

// resolveCluster walks the chain to the cluster holding byte index idx
// of the region, reusing the memoized position where possible.
func (c *cursor) resolveCluster(ctx context.Context, idx int64) (uint32, error) {
	if c.clusterIdx == idx && c.cluster != 0 {
		return c.cluster, nil
	}

	current := c.start
	walked := int64(0)
	if c.clusterIdx >= 0 && c.clusterIdx <= idx && c.cluster != 0 {
		current = c.cluster
		walked = c.clusterIdx
	}

	for walked < idx {
		next, ok, err := c.fs.table.Next(ctx, current)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, checkpoint.Wrap(io.ErrUnexpectedEOF, ErrCorruptChain)
		}
		current = next
		walked++
	}

	c.cluster = current
	c.clusterIdx = idx
	return current, nil
}

// sectorFor maps a byte offset of the region onto the physical sector
// holding it and the offset within that sector.
func (c *cursor) sectorFor(ctx context.Context, offset int64) (uint32, uint32, error) {
	sectorSize := int64(c.fs.info.SectorSize)
	if c.root {
		sector := c.fs.info.firstRootSector + uint32(offset/sectorSize)
		return sector, uint32(offset % sectorSize), nil
	}

	clusterBytes := int64(c.fs.info.bytesPerCluster)
	cluster, err := c.resolveCluster(ctx, offset/clusterBytes)
	if err != nil {
		return 0, 0, err
	}

	within := offset % clusterBytes
	sector := c.fs.firstSectorOfCluster(cluster) + uint32(within/sectorSize)
	return sector, uint32(within % sectorSize), nil
}

// readAt reads from the region starting at off. It returns io.EOF when
// off is at or past the region end, matching io.ReaderAt semantics.
func (c *cursor) readAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, checkpoint.From(errors.New("negative offset"))
	}
	if off >= c.regionSize() {
		return 0, io.EOF
	}
	if max := c.regionSize() - off; int64(len(p)) > max {
		p = p[:max]
	}

	read := 0
	for read < len(p) {
		sector, within, err := c.sectorFor(ctx, off+int64(read))
		if err != nil {
			return read, err
		}
		if err := c.fs.fetch(ctx, sector); err != nil {
			return read, err
		}
		read += copy(p[read:], c.fs.window.buffer[within:])
	}
	return read, nil
}

// writeAt writes to the region starting at off, growing it as needed.
// Writing past the current end first zero fills the gap; FAT has no
// sparse representation. Growing a chain backed region may change its
// start cluster (when the region was empty before), callers must persist
// c.start and c.size afterwards.
func (c *cursor) writeAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, checkpoint.From(errors.New("negative offset"))
	}
	if len(p) == 0 {
		return 0, nil
	}

	if gap := off - c.regionSize(); gap > 0 {
		if err := c.zeroFill(ctx, c.regionSize(), gap); err != nil {
			return 0, err
		}
	}
	if err := c.ensureCapacity(ctx, off+int64(len(p))); err != nil {
		return 0, err
	}

	written := 0
	for written < len(p) {
		sector, within, err := c.sectorFor(ctx, off+int64(written))
		if err != nil {
			return written, err
		}
		if err := c.fs.fetch(ctx, sector); err != nil {
			return written, err
		}
		n := copy(c.fs.window.buffer[within:], p[written:])
		c.fs.window.dirty = true
		if err := c.fs.store(ctx); err != nil {
			return written, err
		}
		written += n
	}

	if end := off + int64(len(p)); end > int64(c.size) {
		c.size = uint32(end)
	}
	return written, nil
}

// zeroFill writes count zero bytes starting at off.
func (c *cursor) zeroFill(ctx context.Context, off, count int64) error {
	if err := c.ensureCapacity(ctx, off+count); err != nil {
		return err
	}

	for count > 0 {
		sector, within, err := c.sectorFor(ctx, off)
		if err != nil {
			return err
		}
		if err := c.fs.fetch(ctx, sector); err != nil {
			return err
		}
		chunk := int64(c.fs.info.SectorSize) - int64(within)
		if count < chunk {
			chunk = count
		}
		for i := int64(0); i < chunk; i++ {
			c.fs.window.buffer[int64(within)+i] = 0
		}
		c.fs.window.dirty = true
		if err := c.fs.store(ctx); err != nil {
			return err
		}
		off += chunk
		count -= chunk
	}

	if off > int64(c.size) {
		c.size = uint32(off)
	}
	return nil
}

// ensureCapacity grows the underlying storage so that the region can
// hold upTo bytes. The fixed root region cannot grow.
func (c *cursor) ensureCapacity(ctx context.Context, upTo int64) error {
	if c.root {
		if upTo > c.regionSize() {
			return checkpoint.From(ErrFixedRegionFull)
		}
		return nil
	}

	clusterBytes := int64(c.fs.info.bytesPerCluster)
	needed := (upTo + clusterBytes - 1) / clusterBytes

	if c.start == 0 {
		if needed == 0 {
			return nil
		}
		start, err := c.fs.table.AllocateChain(ctx, uint32(needed))
		if err != nil {
			return err
		}
		c.start = start
		c.cluster = 0
		c.clusterIdx = -1
		return c.clearClusters(ctx, start, needed)
	}

	have, tail, err := c.fs.table.ChainLength(ctx, c.start)
	if err != nil {
		return err
	}
	if int64(have) >= needed {
		return nil
	}

	if _, err := c.fs.table.ExtendChain(ctx, tail, uint32(needed-int64(have))); err != nil {
		return err
	}
	first, ok, err := c.fs.table.Next(ctx, tail)
	if err != nil {
		return err
	}
	if !ok {
		return checkpoint.From(ErrCorruptChain)
	}
	return c.clearClusters(ctx, first, needed-int64(have))
}

// clearClusters zeroes count freshly allocated clusters starting at
// first, so stale sector content never shows through.
func (c *cursor) clearClusters(ctx context.Context, first uint32, count int64) error {
	current := first
	for idx := int64(0); idx < count; idx++ {
		base := c.fs.firstSectorOfCluster(current)
		for s := uint32(0); s < uint32(c.fs.info.SectorsPerCluster); s++ {
			if err := c.fs.fetch(ctx, base+s); err != nil {
				return err
			}
			for i := range c.fs.window.buffer {
				c.fs.window.buffer[i] = 0
			}
			c.fs.window.dirty = true
			if err := c.fs.store(ctx); err != nil {
				return err
			}
		}
		if idx+1 < count {
			next, ok, err := c.fs.table.Next(ctx, current)
			if err != nil {
				return err
			}
			if !ok {
				return checkpoint.Wrap(io.ErrUnexpectedEOF, ErrCorruptChain)
			}
			current = next
		}
	}
	return nil
}

// truncate shrinks or grows the region to newSize bytes. Shrinking frees
// the clusters past the new end; truncating to zero releases the whole
// chain and leaves the region without a start cluster.
func (c *cursor) truncate(ctx context.Context, newSize int64) error {
	if c.root {
		return checkpoint.From(ErrUnsupported)
	}
	if newSize < 0 {
		return checkpoint.From(errors.New("negative size"))
	}

	if newSize > c.regionSize() {
		if err := c.zeroFill(ctx, c.regionSize(), newSize-c.regionSize()); err != nil {
			return err
		}
		c.size = uint32(newSize)
		return nil
	}

	clusterBytes := int64(c.fs.info.bytesPerCluster)
	keep := (newSize + clusterBytes - 1) / clusterBytes

	if c.start != 0 {
		if err := c.fs.table.TruncateChain(ctx, c.start, uint32(keep)); err != nil {
			return err
		}
		if keep == 0 {
			c.start = 0
		}
	}

	c.size = uint32(newSize)
	c.cluster = 0
	c.clusterIdx = -1
	return nil
}
