// File stat implements the os.FileInfo view onto directory entries.

package gofat

import (
	"os"
	"time"
)

type entryHeaderFileInfo struct {
	header ExtendedEntryHeader
}

// FileInfo returns an os.FileInfo describing the entry.
func (e ExtendedEntryHeader) FileInfo() os.FileInfo {
	return entryHeaderFileInfo{header: e}
}

func (i entryHeaderFileInfo) Name() string {
	if i.header.ExtendedName != "" {
		return i.header.ExtendedName
	}
	return shortNameDisplay(i.header.Name)
}

func (i entryHeaderFileInfo) Size() int64 {
	return int64(i.header.FileSize)
}

// Mode maps the FAT attributes onto permission bits: everything is
// readable, the read-only attribute removes the write bits.
func (i entryHeaderFileInfo) Mode() os.FileMode {
	mode := os.FileMode(0666)
	if i.header.Attribute&AttrReadOnly != 0 {
		mode = 0444
	}
	if i.header.Attribute&AttrDirectory != 0 {
		mode |= os.ModeDir | 0111
	}
	return mode
}

func (i entryHeaderFileInfo) ModTime() time.Time {
	date := ParseDate(i.header.WriteDate)
	clock := ParseTime(i.header.WriteTime)
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

func (i entryHeaderFileInfo) IsDir() bool {
	return i.header.Attribute&AttrDirectory != 0
}

func (i entryHeaderFileInfo) Sys() interface{} {
	return nil
}

// rootFileInfo describes the root directory, which has no entry of its
// own anywhere on the volume.
type rootFileInfo struct{}

func (rootFileInfo) Name() string       { return "/" }
func (rootFileInfo) Size() int64        { return 0 }
func (rootFileInfo) Mode() os.FileMode  { return os.ModeDir | 0777 }
func (rootFileInfo) ModTime() time.Time { return time.Time{} }
func (rootFileInfo) IsDir() bool        { return true }
func (rootFileInfo) Sys() interface{}   { return nil }
