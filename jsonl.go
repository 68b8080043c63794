package cfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, ds []Directive) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, d := range ds {
		if err := enc.Encode(d); err != nil {
			return err
		}
	}
	return nil
}
