package cfmt

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, ds []Directive) error {
	for _, d := range ds {
		if _, err := fmt.Fprintln(w, escapeNonPrintable(d.Text)); err != nil {
			return err
		}
	}
	return nil
}
