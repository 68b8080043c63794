package cfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Output is a report format for Inspect.
type Output string

const (
	OutputTable    Output = "table"
	OutputMarkdown Output = "markdown"
	OutputCSV      Output = "csv"
	OutputTSV      Output = "tsv"
	OutputJSON     Output = "json"
	OutputJSONL    Output = "jsonl"
	OutputYAML     Output = "yaml"
	OutputPlain    Output = "plain"
)

const goTemplatePrefix = "go-template="

var outputs = []Output{OutputTable, OutputMarkdown, OutputCSV, OutputTSV, OutputJSON, OutputJSONL, OutputYAML, OutputPlain}

// String returns the output name.
func (o Output) String() string { return string(o) }

// Outputs returns all static output names.
// GoTemplate is not included because it is parameterized.
func Outputs() []Output {
	out := make([]Output, len(outputs))
	copy(out, outputs)
	return out
}

// GoTemplate returns an Output that renders each directive with a Go
// text/template, one per line.
func GoTemplate(tmpl string) Output {
	return Output(goTemplatePrefix + tmpl)
}

// ParseOutput parses an output name. Recognizes all static outputs and
// go-template=<tmpl> strings.
func ParseOutput(s string) (Output, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Output(s), nil
	}
	for _, o := range outputs {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutput, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name such as "rounded" or "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return BorderRounded, fmt.Errorf("%w: border %q", ErrUnsupportedOutput, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type reportConfig struct {
	border BorderStyle
	title  string
	indent string
}

// ReportOption configures Inspect.
type ReportOption func(*reportConfig)

// WithBorder sets the table border style. Default: BorderRounded.
func WithBorder(b BorderStyle) ReportOption {
	return func(c *reportConfig) { c.border = b }
}

// WithTitle renders a title above a bordered table.
func WithTitle(title string) ReportOption {
	return func(c *reportConfig) { c.title = title }
}

// WithIndent indents JSON and YAML output. Without it JSON is compact and YAML
// uses its default indent.
func WithIndent(indent string) ReportOption {
	return func(c *reportConfig) { c.indent = indent }
}

var reportHeader = []string{"Offset", "Text", "Flags", "Width", "Precision", "Length", "Verb", "Kind"}

var reportAligns = []Alignment{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignCenter, AlignCenter, AlignLeft}

// Row returns the report cells of d.
func (d Directive) Row() []string {
	width := ""
	switch {
	case d.WidthFromArg:
		width = "*"
	case d.Width > 0:
		width = strconv.Itoa(d.Width)
	}
	precision := ""
	switch {
	case d.PrecisionFromArg:
		precision = ".*"
	case d.HasPrecision:
		precision = "." + strconv.Itoa(d.Precision)
	}
	return []string{
		strconv.Itoa(d.Offset),
		d.Text,
		d.Flags.String(),
		width,
		precision,
		d.Length.String(),
		d.Verb.String(),
		d.Verb.Kind(),
	}
}

// Inspect writes a report of every directive in template. A template that
// ends inside a directive fails with ErrIncompleteDirective and writes nothing.
func Inspect(w io.Writer, out Output, template string, opts ...ReportOption) error {
	cfg := reportConfig{border: BorderRounded}
	for _, opt := range opts {
		opt(&cfg)
	}
	ds := []Directive{}
	for d, err := range Directives(template) {
		if err != nil {
			return err
		}
		ds = append(ds, d)
	}

	switch out {
	case OutputTable:
		return writeTable(w, ds, cfg)
	case OutputMarkdown:
		return writeMarkdown(w, ds)
	case OutputCSV:
		return writeCSV(w, ds)
	case OutputTSV:
		return writeTSV(w, ds)
	case OutputJSON:
		return writeJSON(w, ds, cfg)
	case OutputJSONL:
		return writeJSONL(w, ds)
	case OutputYAML:
		return writeYAML(w, ds, cfg)
	case OutputPlain:
		return writePlain(w, ds)
	default:
		if tmpl, ok := strings.CutPrefix(string(out), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, ds)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, out)
	}
}
