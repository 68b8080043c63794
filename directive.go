package cfmt

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Flags is the set of flag characters given in a directive.
type Flags uint8

const (
	FlagMinus Flags = 1 << iota // '-' left-align
	FlagPlus                    // '+' force sign
	FlagSpace                   // ' ' sign slot for non-negative values
	FlagAlt                     // '#' alternate form
	FlagZero                    // '0' zero-pad
)

var flagChars = [...]struct {
	flag Flags
	char byte
}{
	{FlagMinus, '-'},
	{FlagPlus, '+'},
	{FlagSpace, ' '},
	{FlagAlt, '#'},
	{FlagZero, '0'},
}

// Has reports whether every flag in f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// String returns the flag characters in canonical order.
func (f Flags) String() string {
	var sb strings.Builder
	for _, fc := range flagChars {
		if f.Has(fc.flag) {
			sb.WriteByte(fc.char)
		}
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (f Flags) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func flagOf(c byte) (Flags, bool) {
	for _, fc := range flagChars {
		if fc.char == c {
			return fc.flag, true
		}
	}
	return 0, false
}

// Length is the argument width requested by a length modifier.
type Length uint8

const (
	LengthNone  Length = iota
	LengthShort        // h
	LengthLong         // l
)

// String returns the modifier letter, or "" for LengthNone.
func (l Length) String() string {
	switch l {
	case LengthShort:
		return "h"
	case LengthLong:
		return "l"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Verb is the conversion byte that ends a directive.
type Verb byte

const (
	VerbChar     Verb = 'c'
	VerbString   Verb = 's'
	VerbPercent  Verb = '%'
	VerbDecimal  Verb = 'd'
	VerbInteger  Verb = 'i'
	VerbUnsigned Verb = 'u'
	VerbOctal    Verb = 'o'
	VerbHex      Verb = 'x'
	VerbHexUpper Verb = 'X'
	VerbPointer  Verb = 'p'
	VerbEscaped  Verb = 'S'
	VerbBinary   Verb = 'b'
	VerbReverse  Verb = 'r'
	VerbRot13    Verb = 'R'
)

var verbKinds = map[Verb]string{
	VerbChar:     "char",
	VerbString:   "string",
	VerbPercent:  "percent",
	VerbDecimal:  "signed",
	VerbInteger:  "signed",
	VerbUnsigned: "unsigned",
	VerbOctal:    "octal",
	VerbHex:      "hex",
	VerbHexUpper: "hex",
	VerbPointer:  "pointer",
	VerbEscaped:  "escaped",
	VerbBinary:   "binary",
	VerbReverse:  "reverse",
	VerbRot13:    "rot13",
}

// Known reports whether v is a conversion the dispatcher renders.
func (v Verb) Known() bool {
	_, ok := verbKinds[v]
	return ok
}

// Kind names the conversion family of v, or "unknown".
func (v Verb) Kind() string {
	if k, ok := verbKinds[v]; ok {
		return k
	}
	return "unknown"
}

func (v Verb) String() string { return string(rune(v)) }

// MarshalText implements encoding.TextMarshaler.
func (v Verb) MarshalText() ([]byte, error) { return []byte{byte(v)}, nil }

// Directive describes one parsed '%' directive. Width and Precision hold the
// literal values until resolve replaces '*' placeholders with fetched ones.
type Directive struct {
	Offset           int    `json:"offset" yaml:"offset"`
	Text             string `json:"text" yaml:"text"`
	Flags            Flags  `json:"flags" yaml:"flags"`
	Width            int    `json:"width" yaml:"width"`
	WidthFromArg     bool   `json:"width_from_arg" yaml:"width_from_arg"`
	Precision        int    `json:"precision" yaml:"precision"`
	HasPrecision     bool   `json:"has_precision" yaml:"has_precision"`
	PrecisionFromArg bool   `json:"precision_from_arg" yaml:"precision_from_arg"`
	Length           Length `json:"length" yaml:"length"`
	Verb             Verb   `json:"verb" yaml:"verb"`
}

// parseDirective scans the directive whose '%' sits at tmpl[start] and returns
// it together with the offset just past its conversion byte.
func parseDirective(tmpl string, start int) (Directive, int, error) {
	d := Directive{Offset: start}
	i := start + 1
	incomplete := func() (Directive, int, error) {
		return Directive{Offset: start}, len(tmpl), fmt.Errorf("%w at offset %d", ErrIncompleteDirective, start)
	}

	for ; i < len(tmpl); i++ {
		f, ok := flagOf(tmpl[i])
		if !ok {
			break
		}
		d.Flags |= f
	}
	if i >= len(tmpl) {
		return incomplete()
	}

	if tmpl[i] == '*' {
		d.WidthFromArg = true
		i++
	} else {
		d.Width, i = parseNum(tmpl, i)
	}
	if i >= len(tmpl) {
		return incomplete()
	}

	if tmpl[i] == '.' {
		d.HasPrecision = true
		i++
		if i < len(tmpl) && tmpl[i] == '*' {
			d.PrecisionFromArg = true
			i++
		} else {
			d.Precision, i = parseNum(tmpl, i)
		}
		if i >= len(tmpl) {
			return incomplete()
		}
	}

	switch tmpl[i] {
	case 'h':
		d.Length = LengthShort
		i++
	case 'l':
		d.Length = LengthLong
		i++
	}
	if i >= len(tmpl) {
		return incomplete()
	}

	d.Verb = Verb(tmpl[i])
	i++
	d.Text = tmpl[start:i]
	return d, i, nil
}

// parseNum reads decimal digits from tmpl[i:], saturating at math.MaxInt32.
func parseNum(tmpl string, i int) (int, int) {
	n := 0
	for ; i < len(tmpl) && tmpl[i] >= '0' && tmpl[i] <= '9'; i++ {
		d := int(tmpl[i] - '0')
		if n > (math.MaxInt32-d)/10 {
			n = math.MaxInt32
		} else {
			n = n*10 + d
		}
	}
	return n, i
}

// resolve fetches '*' width and precision from args, width first.
func (d *Directive) resolve(args Args) {
	if d.WidthFromArg {
		w := int64(args.NextInt())
		if w < 0 {
			d.Flags |= FlagMinus
			w = -w
		}
		d.Width = int(w)
	}
	if d.PrecisionFromArg {
		p := args.NextInt()
		if p < 0 {
			d.HasPrecision = false
			d.Precision = 0
		} else {
			d.Precision = int(p)
		}
	}
}

// Directives yields the directives of template in order without fetching any
// arguments. A template that ends inside a directive yields the error once and
// stops. Like the formatter, scanning ends at the first NUL byte.
func Directives(template string) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		tmpl := cString(template)
		for i := 0; i < len(tmpl); {
			j := strings.IndexByte(tmpl[i:], '%')
			if j < 0 {
				return
			}
			d, next, err := parseDirective(tmpl, i+j)
			if !yield(d, err) || err != nil {
				return
			}
			i = next
		}
	}
}

// cString truncates s at its first NUL byte.
func cString(s string) string {
	if k := strings.IndexByte(s, 0); k >= 0 {
		return s[:k]
	}
	return s
}
