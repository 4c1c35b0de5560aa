//go:build gofat_nounicode

package gofat

// foldRune maps a code point onto its case folded form. This build omits
// the Unicode folding table; only ASCII letters fold, everything else
// compares exactly.
func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 0x20
	}
	return r
}
