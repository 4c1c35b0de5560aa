package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// minRunSize is the smallest range of consecutive code points with a
// shared folding offset that is worth a run entry instead of single
// pairs.
const minRunSize = 10

type pair struct {
	code, folded uint16
}

type run struct {
	lo, hi uint16
	delta  int32
}

// main regenerates casefold_table.go from a CaseFolding.txt of the
// Unicode character database. Can be executed using 'go generate' from
// the project root:
//
//	go run ./cmd/generate CaseFolding.txt casefold_table.go
func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: generate <CaseFolding.txt> <output.go>")
		os.Exit(1)
	}

	pairs, err := parseCaseFolding(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	runs, singles := compress(pairs)
	if err := write(os.Args[2], runs, singles); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// parseCaseFolding reads the common (C) and simple (S) foldings of the
// basic multilingual plane. Full (F) and Turkic (T) foldings are not
// representable in a one to one table and are skipped.
func parseCaseFolding(path string) ([]pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var pairs []pair
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			continue
		}

		status := strings.TrimSpace(fields[1])
		if status != "C" && status != "S" {
			continue
		}

		code, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 16, 32)
		if err != nil {
			return nil, err
		}
		folded, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 16, 32)
		if err != nil {
			return nil, err
		}
		if code < 0x80 || code > 0xFFFF || folded > 0xFFFF {
			// ASCII is handled by a fast path, everything beyond the BMP
			// can not occur in a directory entry.
			continue
		}

		pairs = append(pairs, pair{code: uint16(code), folded: uint16(folded)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].code < pairs[j].code })
	return pairs, nil
}

// compress splits the mapping into ranges of consecutive code points
// sharing one offset and the remaining single pairs.
func compress(pairs []pair) ([]run, []pair) {
	var (
		runs    []run
		singles []pair
	)

	for i := 0; i < len(pairs); {
		j := i
		delta := int32(pairs[i].folded) - int32(pairs[i].code)
		for j+1 < len(pairs) &&
			pairs[j+1].code == pairs[j].code+1 &&
			int32(pairs[j+1].folded)-int32(pairs[j+1].code) == delta {
			j++
		}

		if j-i+1 >= minRunSize {
			runs = append(runs, run{lo: pairs[i].code, hi: pairs[j].code, delta: delta})
		} else {
			singles = append(singles, pairs[i:j+1]...)
		}
		i = j + 1
	}
	return runs, singles
}

func write(path string, runs []run, singles []pair) error {
	var sb strings.Builder
	sb.WriteString("// Code generated by cmd/generate. DO NOT EDIT.\n\n")
	sb.WriteString("//go:build !gofat_nounicode\n\n")
	sb.WriteString("package gofat\n\n")
	sb.WriteString("// foldRun maps a contiguous range of code points onto their folded\n")
	sb.WriteString("// forms with a shared offset.\n")
	sb.WriteString("type foldRun struct {\n\tlo, hi uint16\n\tdelta  int32\n}\n\n")

	sb.WriteString("var foldRuns = [...]foldRun{\n")
	for _, r := range runs {
		fmt.Fprintf(&sb, "\t{0x%04X, 0x%04X, %d},\n", r.lo, r.hi, r.delta)
	}
	sb.WriteString("}\n\n")

	sb.WriteString("// foldPairs holds the remaining mappings, sorted by code point for\n")
	sb.WriteString("// binary search.\n")
	sb.WriteString("var foldPairs = [...][2]uint16{\n")
	line := "\t"
	for _, p := range singles {
		entry := fmt.Sprintf("{0x%04X, 0x%04X}, ", p.code, p.folded)
		if len(line)+len(entry) > 100 {
			sb.WriteString(strings.TrimRight(line, " ") + "\n")
			line = "\t"
		}
		line += entry
	}
	if strings.TrimSpace(line) != "" {
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	sb.WriteString("}\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
