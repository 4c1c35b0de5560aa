// File file implements the afero.File handles returned by the open
// operations, one for regular files and one for directories.

package gofat

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/spf13/afero"

	"github.com/embedfs/gofat/checkpoint"
)

// ErrFileClosed occurs when a handle is used after Close.
var ErrFileClosed = errors.New("file is closed")

// File is an open regular file. It remembers the context it was opened
// under; all further operations of the handle run with it.
type File struct {
	fs   *Fs
	ctx  context.Context
	path string
	item *dirItem
	cur  *cursor

	pos      int64
	flag     int
	closed   bool
	modified bool
}

var _ afero.File = (*File)(nil)

func newFile(fs *Fs, ctx context.Context, path string, item *dirItem, flag int) *File {
	start := item.firstCluster()
	if start < 2 {
		start = 0
	}
	return &File{
		fs:   fs,
		ctx:  ctx,
		path: path,
		item: item,
		cur:  newClusterCursor(fs, start, item.FileSize),
		flag: flag,
	}
}

func (f *File) readable() bool {
	return f.flag&os.O_WRONLY == 0
}

func (f *File) writable() bool {
	return f.flag&(os.O_WRONLY|os.O_RDWR) != 0
}

func (f *File) Name() string { return f.path }

func (f *File) Read(p []byte) (int, error) {
	n, err := f.ReadAt(p, f.pos)
	f.pos += int64(n)
	return n, err
}

func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, checkpoint.From(ErrFileClosed)
	}
	if !f.readable() {
		return 0, checkpoint.From(syscall.EPERM)
	}

	n, err := f.cur.readAt(f.ctx, p, off)
	if err == nil && n < len(p) {
		err = io.EOF
	}
	return n, err
}

func (f *File) Write(p []byte) (int, error) {
	if f.flag&os.O_APPEND != 0 {
		f.pos = f.cur.regionSize()
	}
	n, err := f.WriteAt(p, f.pos)
	f.pos += int64(n)
	return n, err
}

func (f *File) WriteAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, checkpoint.From(ErrFileClosed)
	}
	if !f.writable() {
		return 0, checkpoint.From(syscall.EPERM)
	}

	n, err := f.cur.writeAt(f.ctx, p, off)
	if n > 0 {
		f.modified = true
	}
	if err != nil {
		return n, err
	}
	return n, nil
}

func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, checkpoint.From(ErrFileClosed)
	}

	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = f.cur.regionSize()
	default:
		return 0, checkpoint.From(errors.New("invalid whence"))
	}
	if base+offset < 0 {
		return 0, checkpoint.From(errors.New("negative position"))
	}

	f.pos = base + offset
	return f.pos, nil
}

func (f *File) Truncate(size int64) error {
	if f.closed {
		return checkpoint.From(ErrFileClosed)
	}
	if !f.writable() {
		return checkpoint.From(syscall.EPERM)
	}
	return f.truncateContext(f.ctx, size)
}

func (f *File) truncateContext(ctx context.Context, size int64) error {
	if err := f.cur.truncate(ctx, size); err != nil {
		return err
	}
	f.modified = true
	return f.syncContext(ctx)
}

// Sync persists the directory entry of the file: its size, start cluster
// and write timestamp.
func (f *File) Sync() error {
	if f.closed {
		return checkpoint.From(ErrFileClosed)
	}
	return f.syncContext(f.ctx)
}

func (f *File) syncContext(ctx context.Context) error {
	if !f.modified {
		return nil
	}

	now := f.fs.now()
	f.item.FileSize = f.cur.size
	f.item.setFirstCluster(f.cur.start)
	f.item.WriteDate = EncodeDate(now)
	f.item.WriteTime = EncodeTime(now)
	f.item.Attribute |= AttrArchive

	if err := f.fs.updateHeader(ctx, f.item); err != nil {
		return err
	}
	if err := f.fs.writeFSInfo(ctx); err != nil {
		return err
	}
	f.modified = false
	return nil
}

func (f *File) Close() error {
	if f.closed {
		return checkpoint.From(ErrFileClosed)
	}
	if err := f.syncContext(f.ctx); err != nil {
		return err
	}
	f.closed = true
	return nil
}

func (f *File) Stat() (os.FileInfo, error) {
	if f.closed {
		return nil, checkpoint.From(ErrFileClosed)
	}

	header := f.item.ExtendedEntryHeader
	header.FileSize = f.cur.size
	return header.FileInfo(), nil
}

func (f *File) Readdir(int) ([]os.FileInfo, error) {
	return nil, checkpoint.From(syscall.ENOTDIR)
}

func (f *File) Readdirnames(int) ([]string, error) {
	return nil, checkpoint.From(syscall.ENOTDIR)
}

// dirFile is an open directory handle. It supports the listing calls and
// rejects byte access.
type dirFile struct {
	fs   *Fs
	ctx  context.Context
	path string
	item *dirItem // nil for the root directory

	offset int
	closed bool
}

var _ afero.File = (*dirFile)(nil)

func (fs *Fs) newDirFile(ctx context.Context, path string, item *dirItem) *dirFile {
	return &dirFile{fs: fs, ctx: ctx, path: path, item: item}
}

func (d *dirFile) loc() dirLoc {
	if d.item == nil {
		return d.fs.rootDir()
	}
	return d.item.loc()
}

func (d *dirFile) Name() string { return d.path }

func (d *dirFile) Close() error {
	if d.closed {
		return checkpoint.From(ErrFileClosed)
	}
	d.closed = true
	return nil
}

func (d *dirFile) Read([]byte) (int, error)          { return 0, checkpoint.From(syscall.EISDIR) }
func (d *dirFile) ReadAt([]byte, int64) (int, error) { return 0, checkpoint.From(syscall.EISDIR) }
func (d *dirFile) Write([]byte) (int, error)         { return 0, checkpoint.From(syscall.EISDIR) }
func (d *dirFile) WriteAt([]byte, int64) (int, error) {
	return 0, checkpoint.From(syscall.EISDIR)
}
func (d *dirFile) WriteString(string) (int, error) { return 0, checkpoint.From(syscall.EISDIR) }
func (d *dirFile) Truncate(int64) error            { return checkpoint.From(syscall.EISDIR) }
func (d *dirFile) Sync() error                     { return nil }

func (d *dirFile) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && whence == io.SeekStart {
		d.offset = 0
		return 0, nil
	}
	return 0, checkpoint.From(syscall.EISDIR)
}

func (d *dirFile) Stat() (os.FileInfo, error) {
	if d.closed {
		return nil, checkpoint.From(ErrFileClosed)
	}
	if d.item == nil {
		return rootFileInfo{}, nil
	}
	return d.item.ExtendedEntryHeader.FileInfo(), nil
}

// Readdir lists the directory. With count <= 0 everything is returned in
// one batch, otherwise up to count entries per call with io.EOF once the
// listing is exhausted, matching os.File.
func (d *dirFile) Readdir(count int) ([]os.FileInfo, error) {
	if d.closed {
		return nil, checkpoint.From(ErrFileClosed)
	}

	items, err := d.fs.readDirItems(d.ctx, d.loc())
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(items))
	for i := range items {
		name := items[i].name()
		if name == "." || name == ".." {
			continue
		}
		infos = append(infos, items[i].ExtendedEntryHeader.FileInfo())
	}

	if count <= 0 {
		d.offset = 0
		return infos, nil
	}
	if d.offset >= len(infos) {
		return nil, io.EOF
	}
	end := d.offset + count
	if end > len(infos) {
		end = len(infos)
	}
	batch := infos[d.offset:end]
	d.offset = end
	return batch, nil
}

func (d *dirFile) Readdirnames(count int) ([]string, error) {
	infos, err := d.Readdir(count)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return names, nil
}
