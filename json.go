package cfmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, ds []Directive, cfg reportConfig) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if cfg.indent != "" {
		enc.SetIndent("", cfg.indent)
	}
	return enc.Encode(ds)
}
