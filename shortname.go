package gofat

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/embedfs/gofat/checkpoint"
	"golang.org/x/text/encoding/charmap"
)

// These errors may occur while deriving names.
var (
	ErrInvalidName = errors.New("name violates FAT naming constraints")
)

// shortNameLength is the fixed size of a raw 8.3 name: 8 base characters
// followed by 3 extension characters, space padded, no dot.
const shortNameLength = 11

// codePage is the encoder used to map name characters onto the single
// byte character set stored in short name slots. CP437 is the classic
// OEM code page of FAT media.
var codePage = charmap.CodePage437

// invalidLongNameChars are forbidden anywhere in a long filename.
const invalidLongNameChars = "\"*/:<>?\\|"

// validShortNameByte reports whether an encoded byte may appear in a raw
// short name. The set is deliberately narrow; anything outside of it gets
// substituted and forces numeric tail generation.
func validShortNameByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b >= 0x80:
		// Extended code page characters are storable as-is.
		return true
	}
	return strings.IndexByte("_^$~!#%&@'(){}`", b) >= 0
}

// validateLongName checks the constraints every filename must satisfy
// before any encoding happens: 1 to 255 characters, no path separators or
// wildcard characters, no control characters, not named entirely of dots.
func validateLongName(name string) error {
	runes := []rune(name)
	if len(runes) == 0 {
		return checkpoint.Wrap(errors.New("name is empty"), ErrInvalidName)
	}
	if len(runes) > longNameMaxLen {
		return checkpoint.Wrap(errors.New("name is longer than 255 characters"), ErrInvalidName)
	}
	if strings.Trim(name, ". ") == "" {
		return checkpoint.Wrap(errors.New("name consists only of dots and spaces"), ErrInvalidName)
	}

	for _, r := range runes {
		if r < 0x20 || strings.ContainsRune(invalidLongNameChars, r) {
			return checkpoint.Wrap(fmt.Errorf("character %q is not allowed in a name", r), ErrInvalidName)
		}
		if r > 0xFFFF {
			// Long name slots store UCS-2; no surrogate pairs.
			return checkpoint.Wrap(fmt.Errorf("character %q is outside the basic multilingual plane", r), ErrInvalidName)
		}
	}
	return nil
}

// shortNameBase derives the raw 8.3 bytes from a name without any
// collision handling. lossy reports that information got lost on the way
// (substituted or dropped characters, truncation) and a numeric tail has
// to disambiguate the result.
func shortNameBase(name string) (raw [shortNameLength]byte, lossy bool) {
	for i := range raw {
		raw[i] = ' '
	}

	base, ext, hasDot := splitExtension(name)
	stripped := strings.ReplaceAll(strings.ReplaceAll(base, ".", ""), " ", "")
	if stripped != base {
		lossy = true
	}
	if hasDot && strings.ContainsAny(ext, ". ") {
		ext = strings.ReplaceAll(strings.ReplaceAll(ext, ".", ""), " ", "")
		lossy = true
	}

	fill := func(part string, offset, width int) {
		n := 0
		for _, r := range part {
			if n >= width {
				lossy = true
				return
			}
			b, ok := codePage.EncodeRune(unicode.ToUpper(r))
			if !ok || !validShortNameByte(b) {
				b = '_'
				lossy = true
			}
			raw[offset+n] = b
			n++
		}
	}

	fill(stripped, 0, 8)
	fill(ext, 8, 3)
	return raw, lossy
}

// splitExtension splits at the last dot, the way 8.3 names do. A leading
// dot does not start an extension.
func splitExtension(name string) (base, ext string, hasDot bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, "", false
	}
	return name[:idx], name[idx+1:], true
}

// makeShortName derives the raw short name for a new entry, generating a
// numeric tail (~1, ~2, ...) whenever the plain derivation lost
// information or collides with an existing short name in the directory.
// needsLong reports whether the original name must additionally be stored
// in a long filename chain.
func makeShortName(name string, taken func(raw [shortNameLength]byte) bool) (raw [shortNameLength]byte, needsLong bool, err error) {
	if err := validateLongName(name); err != nil {
		return raw, false, err
	}

	raw, lossy := shortNameBase(name)

	if !lossy && !taken(raw) {
		// The name itself is a conforming 8.3 name; a long name chain is
		// still needed when the stored upper case form loses the original
		// casing.
		return raw, shortNameDisplay(raw) != name, nil
	}

	for tail := 1; tail <= 999999; tail++ {
		candidate := applyNumericTail(raw, tail)
		if !taken(candidate) {
			return candidate, true, nil
		}
	}
	return raw, false, checkpoint.Wrap(errors.New("numeric tails exhausted"), ErrInvalidName)
}

// applyNumericTail places ~n at the end of the base part, shortening it
// as needed.
func applyNumericTail(raw [shortNameLength]byte, tail int) [shortNameLength]byte {
	suffix := fmt.Sprintf("~%d", tail)

	baseLen := 8
	for baseLen > 0 && raw[baseLen-1] == ' ' {
		baseLen--
	}
	if baseLen > 8-len(suffix) {
		baseLen = 8 - len(suffix)
	}

	out := raw
	copy(out[baseLen:8], suffix)
	for i := baseLen + len(suffix); i < 8; i++ {
		out[i] = ' '
	}
	return out
}

// shortNameChecksum computes the checksum stored in every long name slot
// that protects the pairing between a long name chain and its short
// entry: rotate right by one, then add, over all eleven raw bytes.
func shortNameChecksum(raw [shortNameLength]byte) byte {
	var sum byte
	for _, b := range raw {
		sum = sum>>1 | sum<<7
		sum += b
	}
	return sum
}

// shortNameDisplay formats raw 8.3 bytes the way they are presented to
// callers, with the dot restored and the padding removed.
func shortNameDisplay(raw [shortNameLength]byte) string {
	decode := func(part []byte) string {
		var sb strings.Builder
		for _, b := range part {
			sb.WriteRune(codePage.DecodeByte(b))
		}
		return strings.TrimRight(sb.String(), " ")
	}

	base := decode(raw[:8])
	ext := decode(raw[8:])
	if ext == "" {
		return base
	}
	return base + "." + ext
}
