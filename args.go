package cfmt

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

// Args is a sequential cursor over the arguments of one formatting call. Each
// directive fetches exactly the types its conversion and length demand, in
// template order. Fetching a type the caller did not supply is the caller's
// mistake; implementations return zero values rather than failing.
type Args interface {
	NextChar() byte
	NextInt() int32
	NextUint() uint32
	NextLong() int64
	NextUlong() uint64
	// NextPointer returns 0 for a nil pointer.
	NextPointer() uintptr
	// NextString returns false for a null string.
	NextString() (string, bool)
}

// ValueArgs reads arguments from Go values, converting each one to the type
// requested by the fetch. Integer conversions truncate the way C does.
type ValueArgs struct {
	vals []any
	pos  int
}

// Values returns a cursor over vals.
func Values(vals ...any) *ValueArgs {
	return &ValueArgs{vals: vals}
}

// Remaining returns the number of values not yet fetched.
func (a *ValueArgs) Remaining() int { return len(a.vals) - a.pos }

func (a *ValueArgs) next() any {
	if a.pos >= len(a.vals) {
		return nil
	}
	v := a.vals[a.pos]
	a.pos++
	return v
}

func (a *ValueArgs) NextChar() byte {
	v := a.next()
	switch x := v.(type) {
	case string:
		if x == "" {
			return 0
		}
		return x[0]
	case []byte:
		if len(x) == 0 {
			return 0
		}
		return x[0]
	}
	return byte(bitsOf(v))
}

func (a *ValueArgs) NextInt() int32   { return int32(bitsOf(a.next())) }
func (a *ValueArgs) NextUint() uint32 { return uint32(bitsOf(a.next())) }
func (a *ValueArgs) NextLong() int64  { return int64(bitsOf(a.next())) }
func (a *ValueArgs) NextUlong() uint64 {
	return bitsOf(a.next())
}

func (a *ValueArgs) NextPointer() uintptr {
	v := a.next()
	switch x := v.(type) {
	case nil:
		return 0
	case uintptr:
		return x
	case unsafe.Pointer:
		return uintptr(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Slice:
		if rv.IsNil() {
			return 0
		}
		return rv.Pointer()
	}
	return uintptr(bitsOf(v))
}

func (a *ValueArgs) NextString() (string, bool) {
	switch x := a.next().(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		if x == nil {
			return "", false
		}
		return string(x), true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

// bitsOf returns the two's complement bit pattern of an integer value, sign
// extended to 64 bits. Non-integers yield 0.
func bitsOf(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	}
	return 0
}

// StringArgs reads arguments from strings, parsing each one as the fetch
// requires. Integers accept the 0x, 0o and 0b prefixes. Parse failures yield
// zero and are collected for Err; missing integers are zero and missing
// strings are null.
type StringArgs struct {
	vals []string
	pos  int
	errs []error
}

// Strings returns a cursor over vals.
func Strings(vals ...string) *StringArgs {
	return &StringArgs{vals: vals}
}

// Remaining returns the number of values not yet fetched.
func (a *StringArgs) Remaining() int { return len(a.vals) - a.pos }

// Err returns the parse failures seen so far, or nil.
func (a *StringArgs) Err() error { return errors.Join(a.errs...) }

func (a *StringArgs) next() (string, bool) {
	if a.pos >= len(a.vals) {
		return "", false
	}
	s := a.vals[a.pos]
	a.pos++
	return s, true
}

func (a *StringArgs) NextChar() byte {
	s, _ := a.next()
	if s == "" {
		return 0
	}
	return s[0]
}

func (a *StringArgs) NextInt() int32   { return int32(a.signed(32)) }
func (a *StringArgs) NextUint() uint32 { return uint32(a.unsigned(32)) }
func (a *StringArgs) NextLong() int64  { return a.signed(64) }
func (a *StringArgs) NextUlong() uint64 {
	return a.unsigned(64)
}

func (a *StringArgs) NextPointer() uintptr {
	s, _ := a.next()
	switch strings.TrimSpace(s) {
	case "", "nil", "(nil)", "NULL":
		return 0
	}
	return uintptr(a.parseUint(s, 64))
}

func (a *StringArgs) NextString() (string, bool) {
	return a.next()
}

func (a *StringArgs) signed(bits int) int64 {
	s, ok := a.next()
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 0, bits)
	if err != nil {
		a.errs = append(a.errs, fmt.Errorf("argument %d: %w", a.pos, err))
		return 0
	}
	return n
}

func (a *StringArgs) unsigned(bits int) uint64 {
	s, ok := a.next()
	if !ok {
		return 0
	}
	return a.parseUint(s, bits)
}

// parseUint also accepts negative values, wrapping them like a C cast.
func (a *StringArgs) parseUint(s string, bits int) uint64 {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			a.errs = append(a.errs, fmt.Errorf("argument %d: %w", a.pos, err))
			return 0
		}
		return uint64(n)
	}
	n, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		a.errs = append(a.errs, fmt.Errorf("argument %d: %w", a.pos, err))
		return 0
	}
	return n
}
