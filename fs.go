package gofat

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/embedfs/gofat/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while mounting or operating on a volume.
var (
	ErrNotFat         = errors.New("no valid FAT volume")
	ErrNotExist       = os.ErrNotExist
	ErrExist          = os.ErrExist
	ErrUnsupported    = errors.New("operation not supported on a FAT volume")
	ErrDirNotEmpty    = errors.New("directory is not empty")
	ErrVolumeReadOnly = errors.New("volume was mounted read-only")
)

// Info contains all information about the whole filesystem.
type Info struct {
	FSType            FatVariant
	SectorSize        uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	NumFATs           uint8
	SectorsPerFAT     uint32
	RootEntryCount    uint16
	RootCluster       fatEntry
	TotalSectors      uint32
	FirstDataSector   uint32
	MaxCluster        uint32

	firstRootSector uint32
	rootDirSectors  uint32
	fsInfoSector    uint32
	bytesPerCluster uint32
}

// Config adjusts how a volume is mounted.
type Config struct {
	// Logger receives structured diagnostics of the engine. Defaults to a
	// discarding logger.
	Logger *slog.Logger

	// SkipChecks disables some boot sector validations which may allow you
	// to mount not perfectly standard FAT filesystems. Use with caution!
	SkipChecks bool
}

type sectorWindow struct {
	current uint32
	dirty   bool
	buffer  []byte
}

type Fs struct {
	device BlockDevice
	log    *slog.Logger

	info   Info
	window sectorWindow
	table  Table
	label  string

	now func() time.Time
}

// invalidSector is a sector number that can never be fetched, used to mark
// the window as holding nothing.
const invalidSector = 0xFFFFFFFF

// New opens the FAT filesystem contained in the given reader, assuming the
// common 512 byte sector size for the initial boot sector read. Write
// operations work if the reader also implements io.Writer.
func New(reader io.ReadSeeker) (*Fs, error) {
	device, err := NewDevice(reader, 512)
	if err != nil {
		return nil, err
	}
	return Mount(device, Config{})
}

// NewSkipChecks opens a FAT filesystem just like New but it skips some
// validations which may allow you to open not perfectly standard FAT
// filesystems. Use with caution!
func NewSkipChecks(reader io.ReadSeeker) (*Fs, error) {
	device, err := NewDevice(reader, 512)
	if err != nil {
		return nil, err
	}
	return Mount(device, Config{SkipChecks: true})
}

// Mount opens the FAT filesystem on the given block device.
func Mount(device BlockDevice, config Config) (*Fs, error) {
	log := config.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fs := &Fs{
		device: device,
		log:    log,
		now:    time.Now,
	}
	fs.table = Table{fs: fs, rover: 1, freeCount: unknownFreeCount}

	if err := fs.initialize(context.Background(), config.SkipChecks); err != nil {
		return nil, err
	}

	return fs, nil
}

func (fs *Fs) initialize(ctx context.Context, skipChecks bool) error {
	fs.info.SectorSize = fs.device.SectorSize()
	fs.window.buffer = make([]byte, fs.info.SectorSize)
	fs.window.current = invalidSector

	if err := fs.fetch(ctx, 0); err != nil {
		return checkpoint.Wrap(err, ErrNotFat)
	}

	bpb := BPB{}
	if err := binary.Read(bytes.NewReader(fs.window.buffer), binary.LittleEndian, &bpb); err != nil {
		return checkpoint.Wrap(err, ErrNotFat)
	}

	// Check if it is really a FAT filesystem.
	if !skipChecks {
		// Check for valid jump instructions.
		if !(bpb.BSJumpBoot[0] == 0xEB && bpb.BSJumpBoot[2] == 0x90) && bpb.BSJumpBoot[0] != 0xE9 {
			return checkpoint.Wrap(errors.New("no valid jump instructions at the beginning"), ErrNotFat)
		}
		if binary.LittleEndian.Uint16(fs.window.buffer[510:]) != 0xAA55 {
			return checkpoint.Wrap(errors.New("missing boot sector signature"), ErrNotFat)
		}
		switch bpb.Media {
		case 0xF0, 0xF8, 0xF9, 0xFA, 0xFB, 0xFC, 0xFD, 0xFE, 0xFF:
		default:
			return checkpoint.Wrap(errors.New("invalid media value"), ErrNotFat)
		}
	}

	// FAT only supports 512, 1024, 2048 and 4096 bytes per sector, and the
	// mounted device must agree because all reads go through it.
	if bpb.BytesPerSector != fs.info.SectorSize {
		return checkpoint.Wrap(errors.New("sector size of the volume does not match the device"), ErrNotFat)
	}

	// Sectors per cluster has to be a power of two and greater than 0.
	// Also the whole cluster should not be more than 32K. The zero check
	// stays even with skipChecks because the geometry divides by it.
	spc := uint16(bpb.SectorsPerCluster)
	if spc == 0 {
		return checkpoint.Wrap(errors.New("invalid sectors per cluster"), ErrNotFat)
	}
	if !skipChecks && (spc&(spc-1) != 0 || bpb.BytesPerSector*spc > 32*1024) {
		return checkpoint.Wrap(errors.New("invalid sectors per cluster"), ErrNotFat)
	}

	// The reserved sector count should not be 0.
	// Note: for FAT12 and FAT16 it is typically 1, for FAT32 typically 32.
	if bpb.ReservedSectorCount == 0 {
		return checkpoint.Wrap(errors.New("invalid reserved sector count"), ErrNotFat)
	}

	if bpb.NumFATs != 1 && bpb.NumFATs != 2 {
		return checkpoint.Wrap(errors.New("invalid FAT count"), ErrNotFat)
	}

	fs.info.SectorsPerCluster = bpb.SectorsPerCluster
	fs.info.ReservedSectors = bpb.ReservedSectorCount
	fs.info.NumFATs = bpb.NumFATs
	fs.info.RootEntryCount = bpb.RootEntryCount
	fs.info.bytesPerCluster = uint32(bpb.BytesPerSector) * uint32(bpb.SectorsPerCluster)

	if bpb.TotalSectors16 != 0 {
		fs.info.TotalSectors = uint32(bpb.TotalSectors16)
	} else {
		fs.info.TotalSectors = bpb.TotalSectors32
	}
	if fs.info.TotalSectors == 0 {
		return checkpoint.Wrap(errors.New("invalid total sector count"), ErrNotFat)
	}

	var fat32 FAT32SpecificData
	if bpb.FATSize16 != 0 {
		fs.info.SectorsPerFAT = uint32(bpb.FATSize16)
	} else {
		if err := binary.Read(bytes.NewReader(bpb.FATSpecificData[:]), binary.LittleEndian, &fat32); err != nil {
			return checkpoint.Wrap(err, ErrNotFat)
		}
		fs.info.SectorsPerFAT = fat32.FatSize
	}
	if fs.info.SectorsPerFAT == 0 {
		return checkpoint.Wrap(errors.New("invalid FAT size"), ErrNotFat)
	}

	// Geometry of the regions following the reserved sectors:
	// FATs, the fixed root directory (FAT12/16 only), then data.
	fs.info.rootDirSectors = (uint32(bpb.RootEntryCount)*slotSize + uint32(bpb.BytesPerSector) - 1) / uint32(bpb.BytesPerSector)
	fs.info.firstRootSector = uint32(bpb.ReservedSectorCount) + uint32(bpb.NumFATs)*fs.info.SectorsPerFAT
	fs.info.FirstDataSector = fs.info.firstRootSector + fs.info.rootDirSectors

	if fs.info.TotalSectors < fs.info.FirstDataSector {
		return checkpoint.Wrap(errors.New("volume smaller than its system area"), ErrNotFat)
	}
	dataClusters := (fs.info.TotalSectors - fs.info.FirstDataSector) / uint32(bpb.SectorsPerCluster)
	if dataClusters == 0 {
		return checkpoint.Wrap(errors.New("volume has no data clusters"), ErrNotFat)
	}

	// The variant is decided by the cluster count alone, never by the
	// FilSysType string in the boot sector.
	fs.info.FSType = variantForClusterCount(dataClusters)
	fs.info.MaxCluster = dataClusters + 1

	switch fs.info.FSType {
	case FAT32:
		if !skipChecks && bpb.RootEntryCount != 0 {
			return checkpoint.Wrap(errors.New("FAT32 root entry count must be 0"), ErrNotFat)
		}
		if !skipChecks && fat32.FSVersion != 0 {
			return checkpoint.Wrap(errors.New("unsupported FAT32 version"), ErrNotFat)
		}
		fs.info.RootCluster = fat32.RootCluster
		fs.info.fsInfoSector = uint32(fat32.FSInfo)
		fs.label = volumeLabelString(fat32.BSVolumeLabel)
		fs.readFSInfo(ctx)
	default:
		if !skipChecks && bpb.RootEntryCount == 0 {
			return checkpoint.Wrap(errors.New("root entry count must not be 0"), ErrNotFat)
		}
		var fat16 FAT16SpecificData
		if err := binary.Read(bytes.NewReader(bpb.FATSpecificData[:]), binary.LittleEndian, &fat16); err != nil {
			return checkpoint.Wrap(err, ErrNotFat)
		}
		fs.label = volumeLabelString(fat16.BSVolumeLabel)
	}

	fs.log.Debug("mounted volume",
		slog.String("type", fs.info.FSType.String()),
		slog.Uint64("clusters", uint64(dataClusters)),
		slog.String("label", fs.label))

	return nil
}

// readFSInfo seeds the free cluster count and the allocation rover from
// the FAT32 FSInfo sector. The hints are advisory; anything implausible
// is ignored and recomputed on demand.
func (fs *Fs) readFSInfo(ctx context.Context) {
	if fs.info.fsInfoSector == 0 || fs.info.fsInfoSector == 0xFFFF {
		return
	}
	if err := fs.fetch(ctx, fs.info.fsInfoSector); err != nil {
		fs.log.Warn("fsinfo read failed", slog.Any("err", err))
		return
	}

	buf := fs.window.buffer
	if binary.LittleEndian.Uint32(buf[0:]) != 0x41615252 ||
		binary.LittleEndian.Uint32(buf[484:]) != 0x61417272 {
		return
	}

	free := binary.LittleEndian.Uint32(buf[488:])
	next := binary.LittleEndian.Uint32(buf[492:])
	if free <= fs.info.MaxCluster-1 {
		fs.table.freeCount = free
	}
	if next >= 2 && next <= fs.info.MaxCluster {
		fs.table.rover = next
	}
}

// writeFSInfo persists the free cluster count and rover hints back to the
// FSInfo sector on FAT32 volumes.
func (fs *Fs) writeFSInfo(ctx context.Context) error {
	if fs.info.FSType != FAT32 || fs.info.fsInfoSector == 0 || fs.info.fsInfoSector == 0xFFFF {
		return nil
	}
	if fs.table.freeCount == unknownFreeCount {
		return nil
	}
	if err := fs.fetch(ctx, fs.info.fsInfoSector); err != nil {
		return err
	}

	buf := fs.window.buffer
	if binary.LittleEndian.Uint32(buf[0:]) != 0x41615252 {
		return nil
	}
	binary.LittleEndian.PutUint32(buf[488:], fs.table.freeCount)
	binary.LittleEndian.PutUint32(buf[492:], fs.table.rover)
	fs.window.dirty = true

	return fs.store(ctx)
}

// fetch loads a specific single sector of the filesystem into the window.
func (fs *Fs) fetch(ctx context.Context, sector uint32) error {
	// Only load it once.
	if sector == fs.window.current {
		return nil
	}

	// If the already fetched sector is dirty, write it first.
	if err := fs.store(ctx); err != nil {
		return err
	}

	if err := fs.device.ReadSector(ctx, sector, fs.window.buffer); err != nil {
		fs.window.current = invalidSector
		return checkpoint.Wrap(err, ErrIO)
	}

	fs.window.current = sector
	return nil
}

// store writes the window back if it is dirty.
func (fs *Fs) store(ctx context.Context) error {
	if !fs.window.dirty {
		return nil
	}

	if err := fs.device.WriteSector(ctx, fs.window.current, fs.window.buffer); err != nil {
		// The modification cannot be persisted. Drop it and invalidate the
		// window so the next fetch rereads the sector instead of failing on
		// this one forever; the caller sees the error and reacts.
		fs.window.dirty = false
		fs.window.current = invalidSector
		return checkpoint.Wrap(err, ErrIO)
	}

	fs.window.dirty = false
	return nil
}

// firstSectorOfCluster translates a cluster number into the physical
// sector where its data starts. Valid only for clusters in [2, MaxCluster].
func (fs *Fs) firstSectorOfCluster(cluster uint32) uint32 {
	return fs.info.FirstDataSector + (cluster-2)*uint32(fs.info.SectorsPerCluster)
}

// rootDir is the location of the root directory, which on FAT12/16 is a
// fixed region outside the data area.
func (fs *Fs) rootDir() dirLoc {
	if fs.info.FSType == FAT32 {
		return dirLoc{start: fs.info.RootCluster & fatEntry(FAT32.entryMask())}
	}
	return dirLoc{fixedRoot: true}
}

// Label returns the volume label from the boot sector, trimmed of its
// space padding.
func (fs *Fs) Label() string {
	return fs.label
}

// FSType returns the detected FAT variant of the mounted volume.
func (fs *Fs) FSType() FatVariant {
	return fs.info.FSType
}

// FatTable exposes the allocation table manager of the mounted volume.
func (fs *Fs) FatTable() *Table {
	return &fs.table
}

func volumeLabelString(raw [11]byte) string {
	return strings.TrimRight(string(raw[:]), " ")
}

// --- afero.Fs surface ---------------------------------------------------
//
// The methods below are thin synchronous shells: each one forwards into
// the context-aware core with context.Background(). Use WithContext to run
// the same operations under a caller-controlled context.

var _ afero.Fs = (*Fs)(nil)

func (fs *Fs) Name() string { return "gofat" }

func (fs *Fs) Open(name string) (afero.File, error) {
	return fs.OpenContext(context.Background(), name)
}

func (fs *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return fs.OpenFileContext(context.Background(), name, flag, perm)
}

func (fs *Fs) Create(name string) (afero.File, error) {
	return fs.OpenFileContext(context.Background(), name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0)
}

func (fs *Fs) Mkdir(name string, perm os.FileMode) error {
	return fs.MkdirContext(context.Background(), name, perm)
}

func (fs *Fs) MkdirAll(path string, perm os.FileMode) error {
	parts := splitPath(path)
	for i := range parts {
		err := fs.Mkdir(strings.Join(parts[:i+1], "/"), perm)
		if err != nil && !errors.Is(err, ErrExist) {
			return err
		}
	}
	return nil
}

func (fs *Fs) Remove(name string) error {
	return fs.RemoveContext(context.Background(), name)
}

func (fs *Fs) RemoveAll(path string) error {
	return fs.removeAll(context.Background(), path)
}

func (fs *Fs) Rename(oldname, newname string) error {
	return fs.RenameContext(context.Background(), oldname, newname)
}

func (fs *Fs) Stat(name string) (os.FileInfo, error) {
	return fs.StatContext(context.Background(), name)
}

// Chmod only maps the write permission bits onto the FAT read-only
// attribute; everything else of mode is discarded.
func (fs *Fs) Chmod(name string, mode os.FileMode) error {
	return fs.ChmodContext(context.Background(), name, mode)
}

func (fs *Fs) ChmodContext(ctx context.Context, name string, mode os.FileMode) error {
	item, err := fs.lookupPath(ctx, name)
	if err != nil {
		return err
	}
	if item == nil {
		return checkpoint.From(syscall.EPERM)
	}

	if mode&0200 == 0 {
		item.Attribute |= AttrReadOnly
	} else {
		item.Attribute &^= AttrReadOnly
	}
	return fs.updateHeader(ctx, item)
}

func (fs *Fs) Chown(name string, uid, gid int) error {
	return checkpoint.Wrap(syscall.EPERM, ErrUnsupported)
}

func (fs *Fs) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return fs.ChtimesContext(context.Background(), name, atime, mtime)
}

func (fs *Fs) ChtimesContext(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	item, err := fs.lookupPath(ctx, name)
	if err != nil {
		return err
	}
	if item == nil {
		return checkpoint.From(syscall.EPERM)
	}

	item.WriteDate = EncodeDate(mtime)
	item.WriteTime = EncodeTime(mtime)
	item.LastAccessDate = EncodeDate(atime)
	return fs.updateHeader(ctx, item)
}

// WithContext returns an afero.Fs view whose operations run under ctx.
// Cancellation is observed only at block device boundaries.
func (fs *Fs) WithContext(ctx context.Context) afero.Fs {
	return &ctxFs{fs: fs, ctx: ctx}
}

type ctxFs struct {
	fs  *Fs
	ctx context.Context
}

func (c *ctxFs) Name() string { return c.fs.Name() }

func (c *ctxFs) Open(name string) (afero.File, error) {
	return c.fs.OpenContext(c.ctx, name)
}

func (c *ctxFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return c.fs.OpenFileContext(c.ctx, name, flag, perm)
}

func (c *ctxFs) Create(name string) (afero.File, error) {
	return c.fs.OpenFileContext(c.ctx, name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0)
}

func (c *ctxFs) Mkdir(name string, perm os.FileMode) error {
	return c.fs.MkdirContext(c.ctx, name, perm)
}

func (c *ctxFs) MkdirAll(path string, perm os.FileMode) error {
	parts := splitPath(path)
	for i := range parts {
		err := c.Mkdir(strings.Join(parts[:i+1], "/"), perm)
		if err != nil && !errors.Is(err, ErrExist) {
			return err
		}
	}
	return nil
}

func (c *ctxFs) Remove(name string) error {
	return c.fs.RemoveContext(c.ctx, name)
}

func (c *ctxFs) RemoveAll(path string) error {
	return c.fs.removeAll(c.ctx, path)
}

func (c *ctxFs) Rename(oldname, newname string) error {
	return c.fs.RenameContext(c.ctx, oldname, newname)
}

func (c *ctxFs) Stat(name string) (os.FileInfo, error) {
	return c.fs.StatContext(c.ctx, name)
}

func (c *ctxFs) Chmod(name string, mode os.FileMode) error {
	return c.fs.ChmodContext(c.ctx, name, mode)
}

func (c *ctxFs) Chown(name string, uid, gid int) error {
	return c.fs.Chown(name, uid, gid)
}

func (c *ctxFs) Chtimes(name string, atime, mtime time.Time) error {
	return c.fs.ChtimesContext(c.ctx, name, atime, mtime)
}
