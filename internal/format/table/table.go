// Package table lays out short label/value blocks such as the overlay's
// metadata lines.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Row is one line of cells. Rows shorter than the widest row are padded with
// empty cells.
type Row []string

// Format pads every column to its widest cell. Widths are measured in
// terminal cells so styled or wide text lines up.
func Format(rows []Row, alignments []Alignment, gap int) []string {
	if len(rows) == 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	sep := strings.Repeat(" ", gap)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(sep)
			}
			pad := strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < cols-1 {
					b.WriteString(pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Pairs renders label/value rows with right-aligned labels, skipping rows
// whose value is empty.
func Pairs(pairs ...[2]string) []string {
	rows := make([]Row, 0, len(pairs))
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		rows = append(rows, Row{p[0], p[1]})
	}
	return Format(rows, []Alignment{AlignRight, AlignLeft}, 2)
}
