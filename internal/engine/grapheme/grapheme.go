// Package grapheme measures text in user-perceived characters.
//
// The editor's column unit is the extended grapheme cluster: a caret column
// never lands inside a multi-byte rune or a combining sequence. Terminal
// cell widths are derived per cluster, with tabs expanded to the next tab
// stop.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Split returns the grapheme clusters of s in order.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// Prefix returns the first n grapheme clusters of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rest := s
	state := -1
	for ; n > 0 && len(rest) > 0; n-- {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(rest)]
}

// CellWidth returns the terminal width of one cluster that starts at
// visual column visualCol.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

// TabAdvance returns the cells from visualCol to the next tab stop.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return tabWidth - visualCol%tabWidth
}

// Width returns the terminal width of s with tabs expanded.
func Width(s string, tabWidth int) int {
	col := 0
	for _, c := range Split(s) {
		col += CellWidth(c, col, tabWidth)
	}
	return col
}

// PrefixWidth returns the terminal width of the first n clusters of s,
// which is where a caret at grapheme column n is painted.
func PrefixWidth(s string, n, tabWidth int) int {
	return Width(Prefix(s, n), tabWidth)
}
