package cfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// writeTable renders one numbered row per directive followed by a count line.
func writeTable(w io.Writer, ds []Directive, cfg reportConfig) error {
	if len(ds) == 0 {
		return nil
	}
	header := append([]string{"#"}, reportHeader...)
	aligns := append([]Alignment{AlignRight}, reportAligns...)
	rows := make([][]string, len(ds))
	for i, d := range ds {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, d.Row()...)
	}
	widths := computeWidths(header, rows)

	var err error
	if _, ok := borderSets[cfg.border]; !ok {
		err = renderPlainTable(w, header, rows, widths, aligns)
	} else {
		err = renderBorderedTable(w, cfg.title, header, rows, widths, aligns, cfg.border)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d directive%s\n", len(ds), plural(len(ds)))
	return err
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// cellText makes a cell safe for a single table line. Directive text can hold
// control bytes and spaces that would otherwise vanish or break the layout.
func cellText(s string) string {
	return escapeNonPrintable(s)
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cellText(cell)); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// lineWriter writes whole lines. After the first error it writes nothing and
// keeps that error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, s+"\n")
	}
}

// renderPlainTable is the BorderNone layout: two spaces between columns and a
// dashed rule under the header.
func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	lw := &lineWriter{w: w}
	lw.line(plainRow(header, widths, aligns))
	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	lw.line(strings.Join(rule, "  "))
	for _, row := range rows {
		lw.line(plainRow(row, widths, aligns))
	}
	return lw.err
}

func plainRow(cells []string, widths []int, aligns []Alignment) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cellText(cells[i])
	}
	return ""
}

func renderBorderedTable(w io.Writer, title string, header []string, rows [][]string, widths []int, aligns []Alignment, style BorderStyle) error {
	bc := borderSets[style]
	lw := &lineWriter{w: w}

	if title != "" {
		lw.line(hLine(widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight))
		// The title spans every cell and the separators between them.
		inner := len(widths) - 1
		for _, width := range widths {
			inner += width + 2
		}
		lw.line(bc.vertical + " " + alignCell(title, inner-2, AlignCenter) + " " + bc.vertical)
		lw.line(hLine(widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee))
	} else {
		lw.line(hLine(widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight))
	}

	lw.line(borderedRow(header, widths, aligns, bc.vertical))
	lw.line(hLine(widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee))
	for _, row := range rows {
		lw.line(borderedRow(row, widths, aligns, bc.vertical))
	}
	lw.line(hLine(widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight))
	return lw.err
}

func hLine(widths []int, left, fill, mid, right string) string {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = strings.Repeat(fill, width+2)
	}
	return left + strings.Join(segs, mid) + right
}

func borderedRow(cells []string, widths []int, aligns []Alignment, vert string) string {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = " " + alignCell(cellAt(cells, i), width, aligns[i]) + " "
	}
	return vert + strings.Join(segs, vert) + vert
}

// alignCell pads s to width display columns.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
