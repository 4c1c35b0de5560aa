package gofat

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
)

func TestNewDevice(t *testing.T) {
	tests := []struct {
		name       string
		sectorSize uint16
		wantErr    bool
	}{
		{"512", 512, false},
		{"1024", 1024, false},
		{"2048", 2048, false},
		{"4096", 4096, false},
		{"zero", 0, true},
		{"not a FAT sector size", 768, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDevice(bytes.NewReader(make([]byte, 4096)), tt.sectorSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDevice() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSeekerDevice_ReadAndWrite(t *testing.T) {
	img := &ramImage{data: make([]byte, 4*512)}
	device, err := NewDevice(img, 512)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	ctx := context.Background()

	if got := device.SectorSize(); got != 512 {
		t.Errorf("SectorSize() = %v, want 512", got)
	}
	if got := device.SectorCount(); got != 4 {
		t.Errorf("SectorCount() = %v, want 4", got)
	}

	src := make([]byte, 512)
	copy(src, "sector two")
	if err := device.WriteSector(ctx, 2, src); err != nil {
		t.Fatalf("WriteSector() error = %v", err)
	}

	dst := make([]byte, 512)
	if err := device.ReadSector(ctx, 2, dst); err != nil {
		t.Fatalf("ReadSector() error = %v", err)
	}
	if !bytes.Equal(dst, src) {
		t.Error("read back sector differs from what was written")
	}

	if err := device.ReadSector(ctx, 4, dst); !errors.Is(err, ErrSectorOutOfRange) {
		t.Errorf("ReadSector() past the end error = %v, want ErrSectorOutOfRange", err)
	}
	if err := device.WriteSector(ctx, 4, src); !errors.Is(err, ErrSectorOutOfRange) {
		t.Errorf("WriteSector() past the end error = %v, want ErrSectorOutOfRange", err)
	}
}

func TestSeekerDevice_ReadOnlyStream(t *testing.T) {
	device, err := NewDevice(bytes.NewReader(make([]byte, 2*512)), 512)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}

	if err := device.WriteSector(context.Background(), 0, make([]byte, 512)); !errors.Is(err, ErrDeviceReadOnly) {
		t.Errorf("WriteSector() error = %v, want ErrDeviceReadOnly", err)
	}
}

func TestSeekerDevice_Cancellation(t *testing.T) {
	img := &ramImage{data: make([]byte, 2*512)}
	device, err := NewDevice(img, 512)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := device.ReadSector(ctx, 0, make([]byte, 512)); !errors.Is(err, ErrIO) {
		t.Errorf("ReadSector() under a cancelled context error = %v, want ErrIO", err)
	}
	if err := device.WriteSector(ctx, 0, make([]byte, 512)); !errors.Is(err, ErrIO) {
		t.Errorf("WriteSector() under a cancelled context error = %v, want ErrIO", err)
	}
}

func TestMount_SurfacesDeviceErrors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	device := NewMockBlockDevice(mockCtrl)
	device.EXPECT().SectorSize().Return(uint16(512)).AnyTimes()
	device.EXPECT().SectorCount().Return(uint32(1024)).AnyTimes()
	device.EXPECT().
		ReadSector(gomock.Any(), uint32(0), gomock.Any()).
		Return(errors.New("boom"))

	if _, err := Mount(device, Config{}); !errors.Is(err, ErrNotFat) {
		t.Errorf("Mount() error = %v, want ErrNotFat", err)
	}
}

func TestTable_SurfacesReadErrors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// A device that mounts fine but fails as soon as the FAT is touched.
	img := buildTestImage(FAT16)
	boot := img.data[:512]

	device := NewMockBlockDevice(mockCtrl)
	device.EXPECT().SectorSize().Return(uint16(512)).AnyTimes()
	device.EXPECT().SectorCount().Return(uint32(len(img.data) / 512)).AnyTimes()
	device.EXPECT().
		ReadSector(gomock.Any(), uint32(0), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint32, dst []byte) error {
			copy(dst, boot)
			return nil
		}).
		AnyTimes()
	device.EXPECT().
		ReadSector(gomock.Any(), gomock.Not(uint32(0)), gomock.Any()).
		Return(errors.New("boom")).
		AnyTimes()

	fs, err := Mount(device, Config{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if _, err := fs.FatTable().ReadEntry(context.Background(), 2); !errors.Is(err, ErrIO) {
		t.Errorf("ReadEntry() error = %v, want ErrIO", err)
	}
}
