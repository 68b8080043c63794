// Package cfmt is a self-hosted implementation of C printf formatting.
//
// A template is copied byte for byte except for '%' directives, which are
// rendered from a sequence of typed arguments. The entry points are
// [Printer.Print] and the convenience wrappers [Fprintf], [Printf] and
// [Sprintf]:
//
//	n, err := cfmt.Fprintf(os.Stdout, "%-8s|%05d|%#x\n", "id", 42, 255)
//
// # Directives
//
// A directive is '%' followed, in order, by flags, width, precision, a length
// modifier and a conversion byte:
//
//	%[-+ #0]*[width|*][.precision|.*][h|l]verb
//
// Flags:
//
//   - '-' left-align in the field (overrides '0')
//   - '+' always print a sign for signed conversions
//   - ' ' print a space where a '+' would go
//   - '#' alternate form: "0" for octal, "0x"/"0X" for hex, non-zero values only
//   - '0' pad with zeros after the sign and prefix, unless a precision is given
//
// A '*' width or precision is fetched from the arguments before the value. A
// negative width means left-align; a negative precision is ignored.
//
// Conversions:
//
//   - c      one byte
//   - s      string; precision is the maximum number of bytes; null is "(null)"
//   - S      string with bytes outside printable ASCII written as \xHH
//   - r      string reversed
//   - R      string with ASCII letters rotated by 13
//   - d, i   signed decimal
//   - u      unsigned decimal
//   - o      unsigned octal
//   - x, X   unsigned hex in lower or upper case
//   - b      unsigned binary
//   - p      pointer as 0x..., or "(nil)"
//   - %      a literal '%'
//
// The length modifiers 'h' and 'l' select 16-bit and 64-bit integer arguments;
// without one, integers are 32-bit. They have no effect on other conversions.
//
// Any other conversion byte is echoed as text according to the Printer's
// [UnknownPolicy].
//
// # Arguments
//
// Arguments are read through the [Args] cursor, one fetch per expected type.
// [Values] adapts Go values and [Strings] parses command-line strings.
//
// # Errors
//
// A template that ends inside a directive, such as "abc%", is fatal: the call
// returns -1 and an error wrapping [ErrIncompleteDirective]. A nil template
// passed to [Printer.Write] returns -1 and [ErrNilTemplate].
//
// # Inspection
//
// [Inspect] reports the directives of a template as a table, Markdown, CSV,
// TSV, JSON, JSON lines, YAML, plain text, or through a Go template:
//
//	cfmt.Inspect(os.Stdout, cfmt.OutputTable, "%-*.*s|%lx")
package cfmt
