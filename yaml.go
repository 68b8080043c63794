package cfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, ds []Directive, cfg reportConfig) error {
	enc := yaml.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent(len(cfg.indent))
	}
	if err := enc.Encode(ds); err != nil {
		return err
	}
	return enc.Close()
}
