package cfmt

import (
	"io"
	"strings"
)

// writeMarkdown renders a GitHub table. Columns are at least three wide so the
// alignment markers fit.
func writeMarkdown(w io.Writer, ds []Directive) error {
	if len(ds) == 0 {
		return nil
	}
	rows := make([][]string, len(ds))
	for i, d := range ds {
		rows[i] = d.Row()
		for j, cell := range rows[i] {
			rows[i][j] = markdownCell(cell)
		}
	}
	widths := computeWidths(reportHeader, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	lw := &lineWriter{w: w}
	lw.line(markdownRow(reportHeader, widths, reportAligns))
	markers := make([]string, len(widths))
	for i, width := range widths {
		switch reportAligns[i] {
		case AlignRight:
			markers[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			markers[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			markers[i] = strings.Repeat("-", width)
		}
	}
	lw.line("| " + strings.Join(markers, " | ") + " |")
	for _, row := range rows {
		lw.line(markdownRow(row, widths, reportAligns))
	}
	return lw.err
}

// markdownCell wraps directive text in a code span so '|', '*' and spaces
// survive rendering.
func markdownCell(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(escapeNonPrintable(s), "|", `\|`)
	return "`" + s + "`"
}

func markdownRow(cells []string, widths []int, aligns []Alignment) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	return "| " + strings.Join(padded, " | ") + " |"
}
