// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package order implements the input-ordering strategies: plain name,
// natural numeric, and modification time.
package order

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/pdfcombine/pkg/types"
)

// Sort returns a new slice holding the same entries reordered according
// to mode. The input slice is not modified. Unknown modes fall back to
// name order; mode validation belongs to the CLI layer.
func Sort(entries []types.FileEntry, mode types.SortMode) []types.FileEntry {
	out := make([]types.FileEntry, len(entries))
	copy(out, entries)

	switch mode {
	case types.SortNumeric:
		keys := make(map[string][]token, len(out))
		for _, e := range out {
			keys[e.Path] = naturalKey(e.Base)
		}
		sort.SliceStable(out, func(i, j int) bool {
			if c := compareKeys(keys[out[i].Path], keys[out[j].Path]); c != 0 {
				return c < 0
			}
			return out[i].Path < out[j].Path
		})
	case types.SortDate:
		// Stable keeps the incoming alphabetical order on mtime ties.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ModTime.Before(out[j].ModTime)
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			return out[i].Path < out[j].Path
		})
	}
	return out
}

// token is one element of a natural-sort key: either a numeric value
// parsed from a maximal digit run, or a lowercased non-digit run.
type token struct {
	num     int64
	str     string
	numeric bool
}

// naturalKey builds the natural-sort key for a base name. Runes that are
// neither letters nor digits are dropped first, then the remainder is
// split into maximal digit runs (numeric tokens) and non-digit runs
// (lowercased string tokens).
func naturalKey(base string) []token {
	var clean strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			clean.WriteRune(r)
		}
	}
	s := clean.String()

	var tokens []token
	for len(s) > 0 {
		digit := isASCIIDigit(s[0])
		i := 1
		for i < len(s) && isASCIIDigit(s[i]) == digit {
			i++
		}
		run := s[:i]
		s = s[i:]
		if digit {
			// Digit runs in file names fit comfortably in int64;
			// on overflow fall back to a string token.
			if n, err := strconv.ParseInt(run, 10, 64); err == nil {
				tokens = append(tokens, token{num: n, numeric: true})
				continue
			}
		}
		tokens = append(tokens, token{str: strings.ToLower(run)})
	}
	return tokens
}

// compareKeys compares two natural-sort keys token by token. Numeric
// tokens order before string tokens when the types differ.
func compareKeys(a, b []token) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTokens(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareTokens(a, b token) int {
	if a.numeric != b.numeric {
		if a.numeric {
			return -1
		}
		return 1
	}
	if a.numeric {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return strings.Compare(a.str, b.str)
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
