package gofat

import (
	"context"
	"errors"
	"io"

	"github.com/embedfs/gofat/checkpoint"
)

// These errors may occur while accessing a block device.
var (
	ErrIO               = errors.New("block device access failed")
	ErrDeviceReadOnly   = errors.New("block device is read-only")
	ErrSectorOutOfRange = errors.New("sector index outside the device")
)

// BlockDevice is the sector-granular transport the filesystem runs on.
// The core never issues misaligned or partial-sector transfers; dst and
// src are always exactly one sector long.
//
// The context is the only cancellation point of the whole engine: every
// core operation between two device calls is plain CPU work and never
// observes ctx, so an aborted call can not leave the cached FAT state
// half-updated.
//
// Generated mock using mockgen:
//
//	mockgen -source=device.go -destination=device_mock.go -package gofat
type BlockDevice interface {
	ReadSector(ctx context.Context, index uint32, dst []byte) error
	WriteSector(ctx context.Context, index uint32, src []byte) error
	SectorSize() uint16
	SectorCount() uint32
}

// seekerDevice adapts an io.ReadSeeker (an os.File, an afero.File, a
// bytes.Reader over an image, ...) to the BlockDevice interface. Writes
// work if the underlying stream also implements io.Writer.
type seekerDevice struct {
	stream     io.ReadSeeker
	sectorSize uint16
	sectors    uint32
}

// NewDevice wraps an io.ReadSeeker containing a raw volume image as a
// BlockDevice with the given sector size. Almost all FAT volumes use 512;
// 1024, 2048 and 4096 are also valid but not supported by many drivers.
func NewDevice(stream io.ReadSeeker, sectorSize uint16) (BlockDevice, error) {
	switch sectorSize {
	case 512, 1024, 2048, 4096:
	default:
		return nil, checkpoint.From(errors.New("invalid sector size"))
	}

	end, err := stream.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrIO)
	}

	return &seekerDevice{
		stream:     stream,
		sectorSize: sectorSize,
		sectors:    uint32(end / int64(sectorSize)),
	}, nil
}

func (d *seekerDevice) ReadSector(ctx context.Context, index uint32, dst []byte) error {
	if err := ctx.Err(); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}
	if index >= d.sectors {
		return checkpoint.From(ErrSectorOutOfRange)
	}

	if _, err := d.stream.Seek(int64(index)*int64(d.sectorSize), io.SeekStart); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}
	if _, err := io.ReadFull(d.stream, dst[:d.sectorSize]); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}

	return nil
}

func (d *seekerDevice) WriteSector(ctx context.Context, index uint32, src []byte) error {
	if err := ctx.Err(); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}
	if index >= d.sectors {
		return checkpoint.From(ErrSectorOutOfRange)
	}

	w, ok := d.stream.(io.Writer)
	if !ok {
		return checkpoint.From(ErrDeviceReadOnly)
	}

	if _, err := d.stream.Seek(int64(index)*int64(d.sectorSize), io.SeekStart); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}
	if _, err := w.Write(src[:d.sectorSize]); err != nil {
		return checkpoint.Wrap(err, ErrIO)
	}

	return nil
}

func (d *seekerDevice) SectorSize() uint16 { return d.sectorSize }

func (d *seekerDevice) SectorCount() uint32 { return d.sectors }
