package gofat

import (
	"errors"
	"strings"
	"testing"
)

func noneTaken([shortNameLength]byte) bool { return false }

func Test_makeShortName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		needsLong bool
	}{
		{"conforming upper case name", "README.TXT", "README  TXT", false},
		{"conforming without extension", "KERNEL", "KERNEL     ", false},
		{"lower case keeps its 8.3 form", "readme.txt", "README  TXT", true},
		{"long base is truncated with a tail", "verylongfilename.txt", "VERYLO~1TXT", true},
		{"long extension is truncated", "archive.tar.gz", "ARCHIV~1GZ ", true},
		{"spaces are stripped", "my file.txt", "MYFILE~1TXT", true},
		{"extra dots are stripped", "a.b.c.txt", "ABC~1   TXT", true},
		{"hyphen is substituted", "REPORT-1.TXT", "REPORT~1TXT", true},
		{"unicode inside the code page", "café.txt", "CAF\x90    TXT", true},
		{"unicode outside the code page", "файл.txt", "____~1  TXT", true},
		{"leading dot starts no extension", ".gitignore", "GITIGN~1   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, needsLong, err := makeShortName(tt.input, noneTaken)
			if err != nil {
				t.Fatalf("makeShortName() error = %v", err)
			}
			if got := string(raw[:]); got != tt.want {
				t.Errorf("makeShortName() = %q, want %q", got, tt.want)
			}
			if needsLong != tt.needsLong {
				t.Errorf("makeShortName() needsLong = %v, want %v", needsLong, tt.needsLong)
			}
		})
	}
}

func Test_makeShortName_NumericTailCollisions(t *testing.T) {
	// Two files whose names collapse to the same 8.3 form must end up
	// with distinct numeric tails.
	taken := map[[shortNameLength]byte]bool{}
	isTaken := func(raw [shortNameLength]byte) bool { return taken[raw] }

	first, _, err := makeShortName("REPORT-1.TXT", isTaken)
	if err != nil {
		t.Fatalf("makeShortName() error = %v", err)
	}
	taken[first] = true

	second, _, err := makeShortName("REPORT-2.TXT", isTaken)
	if err != nil {
		t.Fatalf("makeShortName() error = %v", err)
	}

	if got := shortNameDisplay(first); got != "REPORT~1.TXT" {
		t.Errorf("first short name = %q, want %q", got, "REPORT~1.TXT")
	}
	if got := shortNameDisplay(second); got != "REPORT~2.TXT" {
		t.Errorf("second short name = %q, want %q", got, "REPORT~2.TXT")
	}
}

func Test_makeShortName_TailOnConformingCollision(t *testing.T) {
	// Even a perfectly conforming name gets a tail when its 8.3 form is
	// already in use.
	var existing [shortNameLength]byte
	copy(existing[:], "README  TXT")

	raw, needsLong, err := makeShortName("README.TXT", func(r [shortNameLength]byte) bool {
		return r == existing
	})
	if err != nil {
		t.Fatalf("makeShortName() error = %v", err)
	}
	if got := shortNameDisplay(raw); got != "README~1.TXT" {
		t.Errorf("short name = %q, want %q", got, "README~1.TXT")
	}
	if !needsLong {
		t.Error("a tailed entry must keep the original name in a long name chain")
	}
}

func Test_validateLongName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "hello.txt", false},
		{"unicode name", "grüße an alle.txt", false},
		{"maximum length", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 256), true},
		{"path separator", "a/b", true},
		{"backslash", "a\\b", true},
		{"wildcard star", "a*b", true},
		{"wildcard question mark", "a?b", true},
		{"control character", "a\x01b", true},
		{"only dots", "...", true},
		{"outside the BMP", "emoji-\U0001F600.txt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLongName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLongName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("validateLongName() error = %v, want ErrInvalidName", err)
			}
		})
	}
}

func Test_shortNameDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"base and extension", "README  TXT", "README.TXT"},
		{"no extension", "KERNEL     ", "KERNEL"},
		{"numeric tail", "REPORT~1TXT", "REPORT~1.TXT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw [shortNameLength]byte
			copy(raw[:], tt.raw)
			if got := shortNameDisplay(raw); got != tt.want {
				t.Errorf("shortNameDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}
