// File dir implements directory handling: reading entry streams with
// their long filename chains, path resolution and the mutating
// operations of the afero surface.

package gofat

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/embedfs/gofat/checkpoint"
	"github.com/spf13/afero"
)

// dirLoc locates a directory region: either the fixed root area of a
// FAT12/16 volume or the first cluster of a chain.
type dirLoc struct {
	fixedRoot bool
	start     fatEntry
}

// dirItem is one resolved directory entry together with the bookkeeping
// needed to rewrite or delete it in place.
type dirItem struct {
	ExtendedEntryHeader

	// dir is the directory containing the entry. slotIndex is the first
	// physical slot belonging to it (the start of its long name chain, or
	// the short slot itself) and slotCount the total number of slots.
	dir       dirLoc
	slotIndex uint32
	slotCount uint32
}

// name returns the name the entry is known by: the long filename when a
// valid chain exists, the 8.3 name otherwise.
func (item *dirItem) name() string {
	if item.ExtendedName != "" {
		return item.ExtendedName
	}
	return shortNameDisplay(item.Name)
}

// firstCluster combines the two halves of the start cluster field.
func (h *EntryHeader) firstCluster() uint32 {
	return uint32(h.FirstClusterHI)<<16 | uint32(h.FirstClusterLO)
}

func (h *EntryHeader) setFirstCluster(cluster uint32) {
	h.FirstClusterHI = uint16(cluster >> 16)
	h.FirstClusterLO = uint16(cluster)
}

func (h *EntryHeader) isDir() bool {
	return h.Attribute&AttrDirectory != 0
}

// loc returns the directory location an entry with the directory
// attribute refers to.
func (item *dirItem) loc() dirLoc {
	return dirLoc{start: fatEntry(item.firstCluster())}
}

// splitPath breaks a slash separated path into its components. Empty
// components and "." are dropped, ".." removes the preceding component.
func splitPath(path string) []string {
	parts := make([]string, 0, 8)
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, part)
		}
	}
	return parts
}

// dirCursor opens a byte cursor over a directory region.
func (fs *Fs) dirCursor(ctx context.Context, loc dirLoc) (*cursor, error) {
	if loc.fixedRoot {
		return newRootCursor(fs), nil
	}

	start := loc.start.Value()
	length, _, err := fs.table.ChainLength(ctx, start)
	if err != nil {
		return nil, err
	}
	return newClusterCursor(fs, start, length*fs.info.bytesPerCluster), nil
}

// readSlot reads physical slot idx of a directory region.
func (fs *Fs) readSlot(ctx context.Context, cur *cursor, idx uint32) ([]byte, error) {
	slot := make([]byte, slotSize)
	if _, err := cur.readAt(ctx, slot, int64(idx)*slotSize); err != nil {
		return nil, err
	}
	return slot, nil
}

// writeSlot writes physical slot idx of a directory region.
func (fs *Fs) writeSlot(ctx context.Context, cur *cursor, idx uint32, slot []byte) error {
	_, err := cur.writeAt(ctx, slot, int64(idx)*slotSize)
	return err
}

// readDirItems resolves all live entries of a directory. Long name
// chains are validated while streaming; a chain that is out of order,
// incomplete or fails its checksum is dropped with a debug log and the
// short name alone represents the entry.
func (fs *Fs) readDirItems(ctx context.Context, loc dirLoc) ([]dirItem, error) {
	cur, err := fs.dirCursor(ctx, loc)
	if err != nil {
		return nil, err
	}

	var (
		items     []dirItem
		assembler longNameAssembler
		chainFrom uint32
		inChain   bool
	)

	slots := uint32(cur.regionSize() / slotSize)
	for idx := uint32(0); idx < slots; idx++ {
		slot, err := fs.readSlot(ctx, cur, idx)
		if err != nil {
			return nil, err
		}

		switch {
		case slotIsEndMarker(slot):
			return items, nil
		case slotIsDeleted(slot):
			assembler.reset()
			inChain = false
		case slotIsLongName(slot):
			long, err := decodeLongSlot(slot)
			if err != nil {
				return nil, err
			}
			if !inChain {
				chainFrom = idx
				inChain = true
			}
			assembler.feed(long)
		default:
			header, err := decodeEntryHeader(slot)
			if err != nil {
				return nil, err
			}

			item := dirItem{
				ExtendedEntryHeader: ExtendedEntryHeader{EntryHeader: header},
				dir:                 loc,
				slotIndex:           idx,
				slotCount:           1,
			}
			// The checksum protects the raw on-disk name bytes, before
			// the 0x05 escape is undone.
			var raw [shortNameLength]byte
			copy(raw[:], slot[:shortNameLength])
			if long, ok := assembler.finish(raw); ok {
				item.ExtendedName = long
				item.slotIndex = chainFrom
				item.slotCount = idx - chainFrom + 1
			} else if inChain {
				fs.log.Debug("dropping broken long name chain",
					slog.String("short", shortNameDisplay(header.Name)))
			}
			inChain = false

			if header.Attribute&AttrVolumeID != 0 {
				continue
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// findInDir locates the entry of a directory matching name, using exact
// comparison first and case folded comparison second.
func (fs *Fs) findInDir(ctx context.Context, loc dirLoc, name string) (*dirItem, error) {
	items, err := fs.readDirItems(ctx, loc)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if NamesEqual(items[i].name(), name) {
			return &items[i], nil
		}
	}
	return nil, checkpoint.From(ErrNotExist)
}

// lookupPath resolves a slash separated path. The root directory itself
// resolves to a nil item.
func (fs *Fs) lookupPath(ctx context.Context, path string) (*dirItem, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, nil
	}

	loc := fs.rootDir()
	for i, part := range parts {
		item, err := fs.findInDir(ctx, loc, part)
		if err != nil {
			return nil, err
		}
		if i == len(parts)-1 {
			return item, nil
		}
		if !item.isDir() {
			return nil, checkpoint.From(ErrNotExist)
		}
		loc = item.loc()
	}
	return nil, checkpoint.From(ErrNotExist)
}

// lookupParent resolves the directory that holds the last path component
// and returns its location together with that component.
func (fs *Fs) lookupParent(ctx context.Context, path string) (dirLoc, string, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return dirLoc{}, "", checkpoint.From(errors.New("path names the root directory"))
	}

	loc := fs.rootDir()
	for _, part := range parts[:len(parts)-1] {
		item, err := fs.findInDir(ctx, loc, part)
		if err != nil {
			return dirLoc{}, "", err
		}
		if !item.isDir() {
			return dirLoc{}, "", checkpoint.From(ErrNotExist)
		}
		loc = item.loc()
	}
	return loc, parts[len(parts)-1], nil
}

// updateHeader writes the short slot of an entry back, persisting header
// changes like size, timestamps or the start cluster.
func (fs *Fs) updateHeader(ctx context.Context, item *dirItem) error {
	cur, err := fs.dirCursor(ctx, item.dir)
	if err != nil {
		return err
	}

	slot := make([]byte, slotSize)
	if err := encodeEntryHeader(item.EntryHeader, slot); err != nil {
		return err
	}
	return fs.writeSlot(ctx, cur, item.slotIndex+item.slotCount-1, slot)
}

// findFreeSlots locates count consecutive reusable slots in a directory,
// growing the region when no run is found. Cluster backed directories
// grow by a cluster; the fixed root region cannot.
func (fs *Fs) findFreeSlots(ctx context.Context, cur *cursor, count uint32) (uint32, error) {
	var (
		runStart uint32
		runLen   uint32
	)

	slots := uint32(cur.regionSize() / slotSize)
	for idx := uint32(0); idx < slots; idx++ {
		slot, err := fs.readSlot(ctx, cur, idx)
		if err != nil {
			return 0, err
		}

		if slotIsEndMarker(slot) {
			// Everything from here on is free. Writing past the region end
			// grows cluster backed directories, and fresh clusters come
			// zeroed, so the end marker property is preserved.
			if runLen > 0 {
				return runStart, nil
			}
			return idx, nil
		}
		if slotIsDeleted(slot) {
			if runLen == 0 {
				runStart = idx
			}
			runLen++
			if runLen >= count {
				return runStart, nil
			}
		} else {
			runLen = 0
		}
	}

	if runLen > 0 && slots-runStart >= count {
		return runStart, nil
	}
	if cur.root {
		return 0, checkpoint.From(ErrFixedRegionFull)
	}
	return slots, nil
}

// createEntry writes a new directory entry, long name chain included,
// and returns the resulting item.
func (fs *Fs) createEntry(ctx context.Context, loc dirLoc, name string, header EntryHeader) (*dirItem, error) {
	items, err := fs.readDirItems(ctx, loc)
	if err != nil {
		return nil, err
	}

	raw, needsLong, err := makeShortName(name, func(raw [shortNameLength]byte) bool {
		for i := range items {
			if items[i].Name == raw {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	header.Name = raw

	var longs []LongFilenameEntry
	if needsLong {
		// The checksum covers the on-disk bytes, so escape before hashing.
		hashed := raw
		if hashed[0] == slotDeleted {
			hashed[0] = slotDeletedEsc
		}
		longs = buildLongSlots(name, shortNameChecksum(hashed))
	}
	count := uint32(len(longs)) + 1

	cur, err := fs.dirCursor(ctx, loc)
	if err != nil {
		return nil, err
	}
	first, err := fs.findFreeSlots(ctx, cur, count)
	if err != nil {
		return nil, err
	}

	slot := make([]byte, slotSize)
	for i, long := range longs {
		if err := encodeLongSlot(long, slot); err != nil {
			return nil, err
		}
		if err := fs.writeSlot(ctx, cur, first+uint32(i), slot); err != nil {
			return nil, err
		}
	}
	if err := encodeEntryHeader(header, slot); err != nil {
		return nil, err
	}
	if err := fs.writeSlot(ctx, cur, first+count-1, slot); err != nil {
		return nil, err
	}

	item := &dirItem{
		ExtendedEntryHeader: ExtendedEntryHeader{EntryHeader: header},
		dir:                 loc,
		slotIndex:           first,
		slotCount:           count,
	}
	if needsLong {
		item.ExtendedName = name
	}
	return item, nil
}

// deleteSlots marks all slots of an entry as deleted.
func (fs *Fs) deleteSlots(ctx context.Context, item *dirItem) error {
	cur, err := fs.dirCursor(ctx, item.dir)
	if err != nil {
		return err
	}

	for i := uint32(0); i < item.slotCount; i++ {
		slot, err := fs.readSlot(ctx, cur, item.slotIndex+i)
		if err != nil {
			return err
		}
		slot[0] = slotDeleted
		if err := fs.writeSlot(ctx, cur, item.slotIndex+i, slot); err != nil {
			return err
		}
	}
	return nil
}

// dirIsEmpty reports whether a directory holds nothing but its dot
// entries.
func (fs *Fs) dirIsEmpty(ctx context.Context, loc dirLoc) (bool, error) {
	items, err := fs.readDirItems(ctx, loc)
	if err != nil {
		return false, err
	}
	for i := range items {
		switch items[i].name() {
		case ".", "..":
		default:
			return false, nil
		}
	}
	return true, nil
}

// newEntryHeader prepares a header for a fresh entry with the current
// time stamped into the create and write fields.
func (fs *Fs) newEntryHeader(attribute byte) EntryHeader {
	now := fs.now()
	return EntryHeader{
		Attribute:      attribute,
		CreateDate:     EncodeDate(now),
		CreateTime:     EncodeTime(now),
		WriteDate:      EncodeDate(now),
		WriteTime:      EncodeTime(now),
		LastAccessDate: EncodeDate(now),
	}
}

// OpenContext opens the named file or directory for reading under ctx.
func (fs *Fs) OpenContext(ctx context.Context, name string) (afero.File, error) {
	return fs.OpenFileContext(ctx, name, os.O_RDONLY, 0)
}

// OpenFileContext opens the named file with the given flags under ctx,
// creating or truncating it as requested.
func (fs *Fs) OpenFileContext(ctx context.Context, name string, flag int, _ os.FileMode) (afero.File, error) {
	item, err := fs.lookupPath(ctx, name)
	if err != nil && !errors.Is(err, ErrNotExist) {
		return nil, err
	}

	if item == nil && err == nil {
		// The root directory itself.
		return fs.newDirFile(ctx, name, nil), nil
	}

	if err != nil {
		if flag&os.O_CREATE == 0 {
			return nil, err
		}
		loc, base, err := fs.lookupParent(ctx, name)
		if err != nil {
			return nil, err
		}
		item, err = fs.createEntry(ctx, loc, base, fs.newEntryHeader(AttrArchive))
		if err != nil {
			return nil, err
		}
	} else {
		if flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0 {
			return nil, checkpoint.From(ErrExist)
		}
		if item.Attribute&AttrReadOnly != 0 && flag&(os.O_WRONLY|os.O_RDWR|os.O_TRUNC|os.O_APPEND) != 0 {
			return nil, checkpoint.From(syscall.EPERM)
		}
	}

	if item.isDir() {
		if flag&(os.O_WRONLY|os.O_RDWR|os.O_TRUNC|os.O_APPEND) != 0 {
			return nil, checkpoint.From(ErrUnsupported)
		}
		return fs.newDirFile(ctx, name, item), nil
	}

	file := newFile(fs, ctx, name, item, flag)
	if flag&os.O_TRUNC != 0 {
		if err := file.truncateContext(ctx, 0); err != nil {
			return nil, err
		}
	}
	return file, nil
}

// MkdirContext creates a directory under ctx, including its dot entries.
func (fs *Fs) MkdirContext(ctx context.Context, name string, _ os.FileMode) error {
	if _, err := fs.lookupPath(ctx, name); err == nil {
		return checkpoint.From(ErrExist)
	} else if !errors.Is(err, ErrNotExist) {
		return err
	}

	loc, base, err := fs.lookupParent(ctx, name)
	if err != nil {
		return err
	}

	// A directory always owns at least one cluster for its entries.
	cluster, err := fs.table.AllocateChain(ctx, 1)
	if err != nil {
		return err
	}
	dirCur := newClusterCursor(fs, cluster, 0)
	if err := dirCur.clearClusters(ctx, cluster, 1); err != nil {
		return err
	}

	header := fs.newEntryHeader(AttrDirectory)
	header.setFirstCluster(cluster)
	if _, err := fs.createEntry(ctx, loc, base, header); err != nil {
		if freeErr := fs.table.FreeChain(ctx, cluster); freeErr != nil {
			fs.log.Error("releasing directory cluster failed", slog.Any("err", freeErr))
		}
		return err
	}

	if err := fs.writeDotEntries(ctx, cluster, loc); err != nil {
		return err
	}
	return fs.writeFSInfo(ctx)
}

// writeDotEntries writes the "." and ".." entries of a fresh directory.
func (fs *Fs) writeDotEntries(ctx context.Context, cluster uint32, parent dirLoc) error {
	cur := newClusterCursor(fs, cluster, fs.info.bytesPerCluster)

	dot := fs.newEntryHeader(AttrDirectory)
	copy(dot.Name[:], ".          ")
	dot.setFirstCluster(cluster)

	dotdot := fs.newEntryHeader(AttrDirectory)
	copy(dotdot.Name[:], "..         ")
	if !parent.fixedRoot && parent.start != fs.info.RootCluster&fatEntry(FAT32.entryMask()) {
		dotdot.setFirstCluster(parent.start.Value())
	}

	slot := make([]byte, slotSize)
	if err := encodeEntryHeader(dot, slot); err != nil {
		return err
	}
	if err := fs.writeSlot(ctx, cur, 0, slot); err != nil {
		return err
	}
	if err := encodeEntryHeader(dotdot, slot); err != nil {
		return err
	}
	return fs.writeSlot(ctx, cur, 1, slot)
}

// RemoveContext removes a file or an empty directory under ctx.
func (fs *Fs) RemoveContext(ctx context.Context, name string) error {
	item, err := fs.lookupPath(ctx, name)
	if err != nil {
		return err
	}
	if item == nil {
		return checkpoint.From(ErrUnsupported)
	}
	if item.Attribute&AttrReadOnly != 0 {
		return checkpoint.From(syscall.EPERM)
	}

	if item.isDir() {
		empty, err := fs.dirIsEmpty(ctx, item.loc())
		if err != nil {
			return err
		}
		if !empty {
			return checkpoint.From(ErrDirNotEmpty)
		}
	}

	if start := item.firstCluster(); start >= 2 {
		if err := fs.table.FreeChain(ctx, start); err != nil {
			return err
		}
	}
	if err := fs.deleteSlots(ctx, item); err != nil {
		return err
	}
	return fs.writeFSInfo(ctx)
}

// removeAll removes a path and, for directories, everything below it.
// A missing path is not an error.
func (fs *Fs) removeAll(ctx context.Context, path string) error {
	item, err := fs.lookupPath(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return nil
		}
		return err
	}
	if item == nil {
		return checkpoint.From(ErrUnsupported)
	}

	if item.isDir() {
		items, err := fs.readDirItems(ctx, item.loc())
		if err != nil {
			return err
		}
		for i := range items {
			child := items[i].name()
			if child == "." || child == ".." {
				continue
			}
			if err := fs.removeAll(ctx, path+"/"+child); err != nil {
				return err
			}
		}
	}
	return fs.RemoveContext(ctx, path)
}

// RenameContext moves an entry to a new path under ctx, crossing
// directories if needed. A plain file at the destination is replaced,
// matching os.Rename.
func (fs *Fs) RenameContext(ctx context.Context, oldname, newname string) error {
	item, err := fs.lookupPath(ctx, oldname)
	if err != nil {
		return err
	}
	if item == nil {
		return checkpoint.From(ErrUnsupported)
	}

	loc, base, err := fs.lookupParent(ctx, newname)
	if err != nil {
		return err
	}

	if existing, err := fs.lookupPath(ctx, newname); err == nil && existing != nil {
		if existing.dir == item.dir && existing.slotIndex == item.slotIndex {
			// The destination resolves to the source entry itself, so
			// this is at most a case change of the name. The entry must
			// not be removed as a displaced destination would be.
			if base == item.name() {
				return nil
			}
			if err := fs.deleteSlots(ctx, item); err != nil {
				return err
			}
			_, err := fs.createEntry(ctx, loc, base, item.EntryHeader)
			return err
		}
		if existing.isDir() {
			return checkpoint.From(ErrExist)
		}
		if err := fs.RemoveContext(ctx, newname); err != nil {
			return err
		}
	} else if err != nil && !errors.Is(err, ErrNotExist) {
		return err
	}

	// The header travels as-is: same start cluster, size and timestamps,
	// only the name changes.
	if _, err := fs.createEntry(ctx, loc, base, item.EntryHeader); err != nil {
		return err
	}
	return fs.deleteSlots(ctx, item)
}

// StatContext returns file information for the named path under ctx.
func (fs *Fs) StatContext(ctx context.Context, name string) (os.FileInfo, error) {
	item, err := fs.lookupPath(ctx, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return rootFileInfo{}, nil
	}
	return item.ExtendedEntryHeader.FileInfo(), nil
}
