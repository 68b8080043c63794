package cfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bjaus/cfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const inspected = "%-*.*s|%lx"

func TestParseOutput(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    cfmt.Output
		wantErr require.ErrorAssertionFunc
	}{
		"table":       {input: "table", want: cfmt.OutputTable, wantErr: require.NoError},
		"markdown":    {input: "markdown", want: cfmt.OutputMarkdown, wantErr: require.NoError},
		"csv":         {input: "csv", want: cfmt.OutputCSV, wantErr: require.NoError},
		"tsv":         {input: "tsv", want: cfmt.OutputTSV, wantErr: require.NoError},
		"json":        {input: "json", want: cfmt.OutputJSON, wantErr: require.NoError},
		"jsonl":       {input: "jsonl", want: cfmt.OutputJSONL, wantErr: require.NoError},
		"yaml":        {input: "yaml", want: cfmt.OutputYAML, wantErr: require.NoError},
		"plain":       {input: "plain", want: cfmt.OutputPlain, wantErr: require.NoError},
		"go-template": {input: "go-template={{.Verb}}", want: cfmt.GoTemplate("{{.Verb}}"), wantErr: require.NoError},
		"unknown":     {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := cfmt.ParseOutput(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputs(t *testing.T) {
	t.Parallel()
	got := cfmt.Outputs()
	assert.Len(t, got, 8)
	assert.Equal(t, cfmt.OutputTable, got[0])
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, cfmt.OutputTable, cfmt.Outputs()[0])
	assert.Equal(t, "yaml", cfmt.OutputYAML.String())
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	b, err := cfmt.ParseBorder("ASCII")
	require.NoError(t, err)
	assert.Equal(t, cfmt.BorderASCII, b)
	_, err = cfmt.ParseBorder("dotted")
	require.ErrorIs(t, err, cfmt.ErrUnsupportedOutput)
}

func TestInspectTable(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		border   cfmt.BorderStyle
		contains []string
		absent   []string
	}{
		"rounded": {border: cfmt.BorderRounded, contains: []string{"╭", "╰", "│"}},
		"ascii":   {border: cfmt.BorderASCII, contains: []string{"+-", "|"}, absent: []string{"│"}},
		"heavy":   {border: cfmt.BorderHeavy, contains: []string{"┏", "┃"}},
		"double":  {border: cfmt.BorderDouble, contains: []string{"╔", "║"}},
		"none":    {border: cfmt.BorderNone, contains: []string{"------"}, absent: []string{"│", "+-"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := cfmt.Inspect(&buf, cfmt.OutputTable, inspected, cfmt.WithBorder(tt.border))
			require.NoError(t, err)
			out := buf.String()
			for _, s := range append(tt.contains, "%-*.*s", "%lx", "Precision", ".*", "string", "hex", "2 directives") {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestInspectTableTitle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputTable, "%d", cfmt.WithTitle("Directives"))
	require.NoError(t, err)
	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], "Directives")
	assert.Contains(t, buf.String(), "1 directive\n")
}

func TestInspectTableEscapesControlBytes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputTable, "%\tq")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `%\x09`)
}

func TestInspectMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputMarkdown, "%5d|%s")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "| Offset |"))
	assert.Contains(t, lines[1], "---:")
	assert.Contains(t, lines[1], ":---")
	assert.Contains(t, lines[2], "`%5d`")
}

func TestInspectCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputCSV, "%+5d")
	require.NoError(t, err)
	assert.Equal(t, "Offset,Text,Flags,Width,Precision,Length,Verb,Kind\n0,%+5d,+,5,,,d,signed\n", buf.String())
}

func TestInspectTSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputTSV, "%.3hu")
	require.NoError(t, err)
	assert.Equal(t, "Offset\tText\tFlags\tWidth\tPrecision\tLength\tVerb\tKind\n0\t%.3hu\t\t\t.3\th\tu\tunsigned\n", buf.String())
}

func TestInspectJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputJSON, inspected)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "%-*.*s", got[0]["text"])
	assert.Equal(t, "-", got[0]["flags"])
	assert.Equal(t, true, got[0]["width_from_arg"])
	assert.Equal(t, true, got[0]["precision_from_arg"])
	assert.Equal(t, "s", got[0]["verb"])
	assert.Equal(t, float64(7), got[1]["offset"])
	assert.Equal(t, "l", got[1]["length"])
}

func TestInspectJSONIndented(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputJSON, "%d", cfmt.WithIndent("  "))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\n    \"offset\": 0")
}

func TestInspectJSONEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputJSON, "no directives")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestInspectJSONL(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputJSONL, "%5d")
	require.NoError(t, err)
	assert.Equal(t,
		`{"offset":0,"text":"%5d","flags":"","width":5,"width_from_arg":false,"precision":0,"has_precision":false,"precision_from_arg":false,"length":"","verb":"d"}`+"\n",
		buf.String())
}

func TestInspectYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputYAML, "%#08x%%")
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "#0", got[0]["flags"])
	assert.Equal(t, 8, got[0]["width"])
	assert.Equal(t, "x", got[0]["verb"])
	assert.Equal(t, "%", got[1]["verb"])
}

func TestInspectPlain(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.OutputPlain, "a %d b %-4s c %%")
	require.NoError(t, err)
	assert.Equal(t, "%d\n%-4s\n%%\n", buf.String())
}

func TestInspectGoTemplate(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.GoTemplate("{{.Offset}}:{{.Verb}}"), "%d and %lx")
	require.NoError(t, err)
	assert.Equal(t, "0:d\n7:x\n", buf.String())
}

func TestInspectGoTemplateInvalid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := cfmt.Inspect(&buf, cfmt.GoTemplate("{{.Bad"), "%d")
	require.ErrorIs(t, err, cfmt.ErrInvalidTemplate)
}

func TestInspectErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		out      cfmt.Output
		template string
		target   error
	}{
		"incomplete":  {out: cfmt.OutputTable, template: "abc%", target: cfmt.ErrIncompleteDirective},
		"unsupported": {out: cfmt.Output("xml"), template: "%d", target: cfmt.ErrUnsupportedOutput},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := cfmt.Inspect(&buf, tt.out, tt.template)
			require.ErrorIs(t, err, tt.target)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestInspectWriteErrors(t *testing.T) {
	t.Parallel()
	for _, out := range append(cfmt.Outputs(), cfmt.GoTemplate("{{.Text}}")) {
		t.Run(out.String(), func(t *testing.T) {
			t.Parallel()
			err := cfmt.Inspect(errWriter{}, out, "%d")
			require.Error(t, err)
		})
	}
}

func TestInspectEmptyTemplate(t *testing.T) {
	t.Parallel()
	for _, out := range []cfmt.Output{cfmt.OutputTable, cfmt.OutputMarkdown, cfmt.OutputCSV, cfmt.OutputTSV, cfmt.OutputPlain, cfmt.OutputJSONL} {
		var buf bytes.Buffer
		require.NoError(t, cfmt.Inspect(&buf, out, "plain"))
		assert.Zero(t, buf.Len(), out.String())
	}
}

func TestDirectives(t *testing.T) {
	t.Parallel()
	var verbs []cfmt.Verb
	var errs []error
	for d, err := range cfmt.Directives("%d %q %") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		verbs = append(verbs, d.Verb)
	}
	assert.Equal(t, []cfmt.Verb{cfmt.VerbDecimal, 'q'}, verbs)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], cfmt.ErrIncompleteDirective)
}

func TestDirectivesStopEarly(t *testing.T) {
	t.Parallel()
	n := 0
	for range cfmt.Directives("%a%b%c") {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestVerbKind(t *testing.T) {
	t.Parallel()
	assert.True(t, cfmt.VerbRot13.Known())
	assert.False(t, cfmt.Verb('q').Known())
	assert.Equal(t, "signed", cfmt.VerbInteger.Kind())
	assert.Equal(t, "unknown", cfmt.Verb('q').Kind())
	assert.Equal(t, "X", cfmt.VerbHexUpper.String())
}

func TestDirectiveRow(t *testing.T) {
	t.Parallel()
	for d := range cfmt.Directives("%- 012.5ld") {
		assert.Equal(t, []string{"0", "%- 012.5ld", "- 0", "12", ".5", "l", "d", "signed"}, d.Row())
	}
}
