package gofat

import "testing"

func Test_variantForClusterCount(t *testing.T) {
	tests := []struct {
		name     string
		clusters uint32
		want     FatVariant
	}{
		{"tiny volume", 1, FAT12},
		{"just below the FAT12 limit", 4084, FAT12},
		{"first FAT16 count", 4085, FAT16},
		{"just below the FAT16 limit", 65524, FAT16},
		{"first FAT32 count", 65525, FAT32},
		{"huge volume", 10_000_000, FAT32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := variantForClusterCount(tt.clusters); got != tt.want {
				t.Errorf("variantForClusterCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFatVariant_entryMask(t *testing.T) {
	tests := []struct {
		name    string
		variant FatVariant
		want    uint32
	}{
		{"FAT12", FAT12, 0xFFF},
		{"FAT16", FAT16, 0xFFFF},
		{"FAT32", FAT32, 0x0FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.entryMask(); got != tt.want {
				t.Errorf("entryMask() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func Test_fatEntry_IsFree(t *testing.T) {
	tests := []struct {
		name  string
		entry fatEntry
		want  bool
	}{
		{"free", 0, true},
		{"reserved", 1, false},
		{"cluster", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsFree(); got != tt.want {
				t.Errorf("IsFree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_fatEntry_IsBad(t *testing.T) {
	tests := []struct {
		name    string
		entry   fatEntry
		variant FatVariant
		want    bool
	}{
		{"FAT12 bad marker", 0x0FF7, FAT12, true},
		{"FAT16 bad marker", 0xFFF7, FAT16, true},
		{"FAT32 bad marker", 0x0FFFFFF7, FAT32, true},
		{"FAT12 end of chain", 0x0FF8, FAT12, false},
		{"FAT16 cluster", 0x1234, FAT16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsBad(tt.variant); got != tt.want {
				t.Errorf("IsBad() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_fatEntry_IsEOF(t *testing.T) {
	tests := []struct {
		name    string
		entry   fatEntry
		variant FatVariant
		want    bool
	}{
		{"FAT12 first end value", 0x0FF8, FAT12, true},
		{"FAT12 canonical end value", 0xFFF, FAT12, true},
		{"FAT12 bad marker", 0x0FF7, FAT12, false},
		{"FAT16 first end value", 0xFFF8, FAT16, true},
		{"FAT16 canonical end value", 0xFFFF, FAT16, true},
		{"FAT32 first end value", 0x0FFFFFF8, FAT32, true},
		{"FAT32 canonical end value", 0x0FFFFFFF, FAT32, true},
		{"FAT32 cluster", 0x00ABCDEF, FAT32, false},
		{"free", 0, FAT16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsEOF(tt.variant); got != tt.want {
				t.Errorf("IsEOF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_fatEntry_IsNextCluster(t *testing.T) {
	tests := []struct {
		name    string
		entry   fatEntry
		variant FatVariant
		want    bool
	}{
		{"free", 0, FAT16, false},
		{"reserved", 1, FAT16, false},
		{"first data cluster", 2, FAT16, true},
		{"just below the bad marker", 0xFFF6, FAT16, true},
		{"bad marker", 0xFFF7, FAT16, false},
		{"end of chain", 0xFFF8, FAT16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsNextCluster(tt.variant); got != tt.want {
				t.Errorf("IsNextCluster() = %v, want %v", got, tt.want)
			}
		})
	}
}
