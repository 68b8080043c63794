package cfmt

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, ds []Directive) error {
	if len(ds) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, d := range ds {
		if err := cw.Write(d.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
