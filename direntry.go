// File direntry implements the codec for the 32 byte directory slots,
// both short-name entries and long filename chains.

package gofat

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/embedfs/gofat/checkpoint"
)

// Padding value for unused name characters in a long filename slot.
const longSlotPadding = 0xFFFF

// slotIsEndMarker reports whether this slot terminates the directory:
// no entry ever follows it.
func slotIsEndMarker(slot []byte) bool {
	return slot[0] == slotEndMarker
}

// slotIsDeleted reports whether this slot is free for reuse.
func slotIsDeleted(slot []byte) bool {
	return slot[0] == slotDeleted
}

// slotIsLongName reports whether this slot belongs to a long filename
// chain.
func slotIsLongName(slot []byte) bool {
	return slot[11]&attrLongNameMask == attrLongName
}

// decodeEntryHeader parses a short-name slot. The 0x05 escape for a real
// leading 0xE5 byte is undone, the header holds the logical name bytes.
func decodeEntryHeader(slot []byte) (EntryHeader, error) {
	var header EntryHeader
	if err := binary.Read(bytes.NewReader(slot), binary.LittleEndian, &header); err != nil {
		return EntryHeader{}, checkpoint.From(err)
	}
	if header.Name[0] == slotDeletedEsc {
		header.Name[0] = slotDeleted
	}
	return header, nil
}

// encodeEntryHeader serializes a short-name slot, applying the 0x05
// escape where the logical name starts with 0xE5.
func encodeEntryHeader(header EntryHeader, dst []byte) error {
	if header.Name[0] == slotDeleted {
		header.Name[0] = slotDeletedEsc
	}
	buffer := bytes.NewBuffer(dst[:0])
	if err := binary.Write(buffer, binary.LittleEndian, &header); err != nil {
		return checkpoint.From(err)
	}
	return nil
}

// decodeLongSlot parses one slot of a long filename chain.
func decodeLongSlot(slot []byte) (LongFilenameEntry, error) {
	var entry LongFilenameEntry
	if err := binary.Read(bytes.NewReader(slot), binary.LittleEndian, &entry); err != nil {
		return LongFilenameEntry{}, checkpoint.From(err)
	}
	return entry, nil
}

// encodeLongSlot serializes one slot of a long filename chain.
func encodeLongSlot(entry LongFilenameEntry, dst []byte) error {
	buffer := bytes.NewBuffer(dst[:0])
	if err := binary.Write(buffer, binary.LittleEndian, &entry); err != nil {
		return checkpoint.From(err)
	}
	return nil
}

// longSlotUnits collects the thirteen UCS-2 name units of a slot in
// logical order.
func longSlotUnits(entry LongFilenameEntry) []uint16 {
	units := make([]uint16, 0, runesPerLongSlot)
	units = append(units, entry.First[:]...)
	units = append(units, entry.Second[:]...)
	units = append(units, entry.Third[:]...)
	return units
}

// buildLongSlots lays out the long filename chain for a name, in the
// physical order it is written to the directory: highest sequence number
// first, flagged as the last logical slot, down to sequence one directly
// before the short entry. checksum binds the chain to its short name.
func buildLongSlots(name string, checksum byte) []LongFilenameEntry {
	units := utf16.Encode([]rune(name))
	count := (len(units) + runesPerLongSlot - 1) / runesPerLongSlot

	slots := make([]LongFilenameEntry, 0, count)
	for seq := count; seq >= 1; seq-- {
		entry := LongFilenameEntry{
			Sequence:  byte(seq),
			Attribute: attrLongName,
			Checksum:  checksum,
		}
		if seq == count {
			entry.Sequence |= lastLongEntry
		}

		part := units[(seq-1)*runesPerLongSlot:]
		if len(part) > runesPerLongSlot {
			part = part[:runesPerLongSlot]
		}
		padded := make([]uint16, runesPerLongSlot)
		copy(padded, part)
		if len(part) < runesPerLongSlot {
			// A short final part is zero terminated, the rest is padding.
			for i := len(part) + 1; i < runesPerLongSlot; i++ {
				padded[i] = longSlotPadding
			}
		}

		copy(entry.First[:], padded[0:5])
		copy(entry.Second[:], padded[5:11])
		copy(entry.Third[:], padded[11:13])
		slots = append(slots, entry)
	}
	return slots
}

// longNameAssembler reconstructs a long filename from the chain of slots
// preceding a short entry. Chains are fed in physical order, which means
// descending sequence numbers. Any violation of the chain rules marks the
// assembly as broken; a broken chain is dropped silently and the short
// name stands on its own.
type longNameAssembler struct {
	units    []uint16
	expected byte
	checksum byte
	active   bool
	broken   bool
}

// feed consumes one long name slot.
func (a *longNameAssembler) feed(entry LongFilenameEntry) {
	if a.broken {
		return
	}

	sequence := entry.Sequence & longSeqMask
	if entry.Sequence&lastLongEntry != 0 {
		if a.active || sequence == 0 || sequence > maxLongSlots {
			a.broken = true
			return
		}
		a.units = make([]uint16, int(sequence)*runesPerLongSlot)
		a.expected = sequence
		a.checksum = entry.Checksum
		a.active = true
	} else if !a.active || sequence != a.expected || entry.Checksum != a.checksum {
		a.broken = true
		return
	}

	copy(a.units[(int(sequence)-1)*runesPerLongSlot:], longSlotUnits(entry))
	a.expected = sequence - 1
}

// reset discards any partial state, ready for the next chain.
func (a *longNameAssembler) reset() {
	*a = longNameAssembler{}
}

// finish validates the assembled chain against the short entry that
// follows it and returns the long name. ok is false when there was no
// chain, the chain was incomplete, or its checksum does not match the
// short name.
func (a *longNameAssembler) finish(shortName [11]byte) (string, bool) {
	defer a.reset()

	if a.broken || !a.active || a.expected != 0 {
		return "", false
	}
	if shortNameChecksum(shortName) != a.checksum {
		return "", false
	}

	end := len(a.units)
	for i, unit := range a.units {
		if unit == 0x0000 {
			end = i
			break
		}
	}
	if end == 0 {
		return "", false
	}
	return string(utf16.Decode(a.units[:end])), true
}
