package cfmt

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, ds []Directive) error {
	if len(ds) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(reportHeader, "\t")); err != nil {
		return err
	}
	for _, d := range ds {
		row := d.Row()
		for i, cell := range row {
			row[i] = escapeNonPrintable(cell)
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
