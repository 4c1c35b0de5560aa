package gofat

import (
	"testing"
)

func Test_shortNameChecksum(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want byte
	}{
		{"upper case with extension", "FOO     BAR", 0x53},
		{"lower case without extension", "foo        ", 0xC0},
		{"short extension", "PICKLE  A  ", 0x32},
		{"lower case with extension", "prettybgbig", 0xD4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw [shortNameLength]byte
			copy(raw[:], tt.raw)
			if got := shortNameChecksum(raw); got != tt.want {
				t.Errorf("shortNameChecksum() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestEntryHeader_Codec(t *testing.T) {
	header := EntryHeader{
		Attribute:      AttrArchive,
		CreateDate:     0x5399,
		CreateTime:     0x4C21,
		WriteDate:      0x5399,
		WriteTime:      0x4C22,
		FirstClusterHI: 0x0001,
		FirstClusterLO: 0x2345,
		FileSize:       5000,
	}
	copy(header.Name[:], "FOO     BAR")

	slot := make([]byte, slotSize)
	if err := encodeEntryHeader(header, slot); err != nil {
		t.Fatalf("encodeEntryHeader() error = %v", err)
	}

	got, err := decodeEntryHeader(slot)
	if err != nil {
		t.Fatalf("decodeEntryHeader() error = %v", err)
	}
	if got != header {
		t.Errorf("decoded header = %+v, want %+v", got, header)
	}
	if got.firstCluster() != 0x12345 {
		t.Errorf("firstCluster() = %#x, want %#x", got.firstCluster(), 0x12345)
	}
}

func TestEntryHeader_DeletedEscape(t *testing.T) {
	var header EntryHeader
	copy(header.Name[:], "\xE5OO     BAR")

	slot := make([]byte, slotSize)
	if err := encodeEntryHeader(header, slot); err != nil {
		t.Fatalf("encodeEntryHeader() error = %v", err)
	}

	// On disk the leading byte must be the 0x05 escape, otherwise the
	// entry would look deleted.
	if slot[0] != slotDeletedEsc {
		t.Fatalf("slot[0] = %#x, want %#x", slot[0], slotDeletedEsc)
	}
	if slotIsDeleted(slot) {
		t.Fatal("slot with an escaped 0xE5 byte reads as deleted")
	}

	got, err := decodeEntryHeader(slot)
	if err != nil {
		t.Fatalf("decodeEntryHeader() error = %v", err)
	}
	if got.Name[0] != slotDeleted {
		t.Errorf("decoded name starts with %#x, want the restored %#x", got.Name[0], slotDeleted)
	}
}

func Test_buildLongSlots(t *testing.T) {
	// 20 characters span two slots: 13 in the first, 7 in the second.
	name := "some very long name!"
	slots := buildLongSlots(name, 0x42)

	if len(slots) != 2 {
		t.Fatalf("buildLongSlots() returned %v slots, want 2", len(slots))
	}

	// Physical order is descending: slot 2 flagged as last, then slot 1.
	if slots[0].Sequence != 2|lastLongEntry {
		t.Errorf("first physical slot sequence = %#x, want %#x", slots[0].Sequence, 2|lastLongEntry)
	}
	if slots[1].Sequence != 1 {
		t.Errorf("second physical slot sequence = %#x, want 1", slots[1].Sequence)
	}
	for i, slot := range slots {
		if slot.Attribute != attrLongName {
			t.Errorf("slot %v attribute = %#x, want %#x", i, slot.Attribute, attrLongName)
		}
		if slot.Checksum != 0x42 {
			t.Errorf("slot %v checksum = %#x, want 0x42", i, slot.Checksum)
		}
	}

	// The last logical slot ends with a zero terminator and 0xFFFF padding.
	units := longSlotUnits(slots[0])
	if units[7] != 0x0000 {
		t.Errorf("terminator unit = %#x, want 0x0000", units[7])
	}
	for i := 8; i < runesPerLongSlot; i++ {
		if units[i] != longSlotPadding {
			t.Errorf("padding unit %v = %#x, want %#x", i, units[i], longSlotPadding)
		}
	}
}

func Test_longNameAssembler(t *testing.T) {
	var short [shortNameLength]byte
	copy(short[:], "SOMEVE~1   ")
	sum := shortNameChecksum(short)

	feedAll := func(a *longNameAssembler, slots []LongFilenameEntry) {
		for _, slot := range slots {
			a.feed(slot)
		}
	}

	t.Run("round trip", func(t *testing.T) {
		name := "some very long name with späces änd ünicode.txt"
		var a longNameAssembler
		feedAll(&a, buildLongSlots(name, sum))

		got, ok := a.finish(short)
		if !ok {
			t.Fatal("finish() rejected a valid chain")
		}
		if got != name {
			t.Errorf("finish() = %q, want %q", got, name)
		}
	})

	t.Run("exactly one full slot", func(t *testing.T) {
		name := "exactly 13 ch"
		var a longNameAssembler
		feedAll(&a, buildLongSlots(name, sum))

		got, ok := a.finish(short)
		if !ok || got != name {
			t.Errorf("finish() = %q, %v, want %q, true", got, ok, name)
		}
	})

	t.Run("checksum mismatch falls back to the short name", func(t *testing.T) {
		var a longNameAssembler
		feedAll(&a, buildLongSlots("whatever name", sum^0xFF))

		if _, ok := a.finish(short); ok {
			t.Error("finish() accepted a chain with a wrong checksum")
		}
	})

	t.Run("missing last flag", func(t *testing.T) {
		slots := buildLongSlots("a name longer than thirteen", sum)
		slots[0].Sequence &^= lastLongEntry

		var a longNameAssembler
		feedAll(&a, slots)
		if _, ok := a.finish(short); ok {
			t.Error("finish() accepted a chain without the last flag")
		}
	})

	t.Run("sequence gap", func(t *testing.T) {
		slots := buildLongSlots("a name spanning three whole slots!!", sum)
		if len(slots) != 3 {
			t.Fatalf("test setup: got %v slots, want 3", len(slots))
		}

		var a longNameAssembler
		a.feed(slots[0])
		a.feed(slots[2]) // skips sequence 2
		if _, ok := a.finish(short); ok {
			t.Error("finish() accepted a chain with a sequence gap")
		}
	})

	t.Run("truncated chain", func(t *testing.T) {
		slots := buildLongSlots("a name longer than thirteen", sum)

		var a longNameAssembler
		a.feed(slots[0]) // the slot with sequence 1 never arrives
		if _, ok := a.finish(short); ok {
			t.Error("finish() accepted an incomplete chain")
		}
	})

	t.Run("no chain at all", func(t *testing.T) {
		var a longNameAssembler
		if _, ok := a.finish(short); ok {
			t.Error("finish() fabricated a long name out of nothing")
		}
	})
}
