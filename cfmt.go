package cfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilTemplate         = errors.New("nil template")
	ErrIncompleteDirective = errors.New("template ends inside a directive")
	ErrUnknownPolicy       = errors.New("unknown policy")
	ErrUnsupportedOutput   = errors.New("unsupported output")
	ErrInvalidTemplate     = errors.New("invalid template")
)

// UnknownPolicy selects what is echoed for a directive whose conversion byte
// is not recognized.
type UnknownPolicy int

const (
	// EchoVerb writes '%' followed by the unrecognized byte. Flags, width,
	// precision and length text are dropped.
	EchoVerb UnknownPolicy = iota
	// EchoDirective writes the directive text exactly as it appeared.
	EchoDirective
)

var unknownPolicyNames = map[UnknownPolicy]string{
	EchoVerb:      "verb",
	EchoDirective: "directive",
}

func (p UnknownPolicy) String() string {
	if s, ok := unknownPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("UnknownPolicy(%d)", int(p))
}

// ParseUnknownPolicy parses "verb" or "directive".
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	for p, name := range unknownPolicyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return EchoVerb, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Printer formats templates onto a writer. It holds configuration only: every
// call owns its own output buffer, so one Printer can serve many calls.
type Printer struct {
	w       io.Writer
	bufSize int
	unknown UnknownPolicy
	log     *zap.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithBufferSize sets the capacity of the per-call output buffer. Values below
// one fall back to DefaultBufferSize.
func WithBufferSize(n int) Option {
	return func(p *Printer) { p.bufSize = n }
}

// WithUnknownPolicy sets how unrecognized conversions are echoed.
func WithUnknownPolicy(u UnknownPolicy) Option {
	return func(p *Printer) { p.unknown = u }
}

// WithLogger sets a logger for debug events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, bufSize: DefaultBufferSize, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Write formats template with args. A nil template is absent and fails with
// ErrNilTemplate without writing anything.
func (p *Printer) Write(template []byte, args Args) (int, error) {
	if template == nil {
		p.log.Debug("nil template")
		return -1, ErrNilTemplate
	}
	return p.Print(string(template), args)
}

// Print formats template with args and returns the number of bytes produced.
//
// A template that ends inside a directive returns -1 and an error wrapping
// ErrIncompleteDirective; bytes produced before it are still flushed. A write
// error from the destination is returned with the number of bytes the
// template produced.
func (p *Printer) Print(template string, args Args) (int, error) {
	if args == nil {
		args = Values()
	}
	s := newSink(p.w, p.bufSize)
	err := p.run(s, cString(template), args)
	ferr := s.flush()
	if err != nil {
		p.log.Debug("template aborted", zap.Error(err), zap.Int("produced", s.count))
		return -1, err
	}
	return s.count, ferr
}

// run walks the template, copying literal runs and rendering directives.
func (p *Printer) run(s *sink, tmpl string, args Args) error {
	for i := 0; i < len(tmpl); {
		j := strings.IndexByte(tmpl[i:], '%')
		if j < 0 {
			s.writeString(tmpl[i:])
			return nil
		}
		s.writeString(tmpl[i : i+j])

		d, next, err := parseDirective(tmpl, i+j)
		if err != nil {
			return err
		}
		d.resolve(args)
		if !convert(s, &d, args) {
			p.echoUnknown(s, &d)
		}
		i = next
	}
	return nil
}

func (p *Printer) echoUnknown(s *sink, d *Directive) {
	p.log.Debug("unknown conversion",
		zap.String("directive", d.Text),
		zap.Int("offset", d.Offset),
		zap.Stringer("policy", p.unknown),
	)
	if p.unknown == EchoDirective {
		s.writeString(d.Text)
		return
	}
	s.writeByte('%')
	s.writeByte(byte(d.Verb))
}

// Fprintf formats according to format and writes to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return New(w).Print(format, Values(args...))
}

// Printf formats according to format and writes to standard output.
func Printf(format string, args ...any) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}

// Sprintf formats according to format and returns the result. On a template
// error the result is empty.
func Sprintf(format string, args ...any) (string, error) {
	var buf bytes.Buffer
	if _, err := Fprintf(&buf, format, args...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
