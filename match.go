package gofat

// NamesEqual reports whether two filenames refer to the same directory
// entry. FAT lookups are case preserving but case insensitive: an exact
// comparison is tried first, then both names are compared under simple
// case folding.
func NamesEqual(a, b string) bool {
	if a == b {
		return true
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if foldRune(ra[i]) != foldRune(rb[i]) {
			return false
		}
	}
	return true
}
