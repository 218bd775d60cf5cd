package table

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells, so wide and combining
// characters line up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - cellWidth(cell)
			last := c == len(row)-1
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// FormatMax is Format with every line cut to at most max cells. A max of zero
// or less leaves lines untouched.
func FormatMax(rows [][]string, alignments []Alignment, max int) []string {
	lines := Format(rows, alignments)
	if max <= 0 {
		return lines
	}
	for i, line := range lines {
		if cellWidth(line) > max {
			lines[i] = truncate.StringWithTail(line, uint(max), "…")
		}
	}
	return lines
}

func cellWidth(text string) int {
	return uniseg.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
