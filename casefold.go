//go:build !gofat_nounicode

package gofat

import "sort"

// foldRune maps a code point onto its simple case folded form, so that
// two names can be compared without regard to letter case. Code points
// without a folding map to themselves.
func foldRune(r rune) rune {
	// ASCII dominates real filenames, skip the table for it.
	if r < 0x80 {
		if r >= 'A' && r <= 'Z' {
			return r + 0x20
		}
		return r
	}
	if r > 0xFFFF {
		return r
	}

	c := uint16(r)
	for _, run := range foldRuns {
		if c >= run.lo && c <= run.hi {
			return rune(int32(c) + run.delta)
		}
	}

	idx := sort.Search(len(foldPairs), func(i int) bool {
		return foldPairs[i][0] >= c
	})
	if idx < len(foldPairs) && foldPairs[idx][0] == c {
		return rune(foldPairs[idx][1])
	}
	return r
}
