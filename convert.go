package cfmt

const (
	nullString  = "(null)"
	nilPointer  = "(nil)"
	escapeWidth = len(`\xHH`)
)

// convert renders one resolved directive into s, fetching its value from
// args. It reports false for a conversion it does not know; nothing is
// fetched or written in that case.
func convert(s *sink, d *Directive, args Args) bool {
	switch d.Verb {
	case VerbPercent:
		padText(s, d, "%")
	case VerbChar:
		c := args.NextChar()
		padText(s, d, string([]byte{c}))
	case VerbString:
		padText(s, d, truncate(fetchString(args), d))
	case VerbReverse:
		padText(s, d, reverse(truncate(fetchString(args), d)))
	case VerbRot13:
		padText(s, d, rot13(truncate(fetchString(args), d)))
	case VerbEscaped:
		padText(s, d, escapeNonPrintable(truncate(fetchString(args), d)))
	case VerbDecimal, VerbInteger:
		v := fetchSigned(args, d.Length)
		mag := uint64(v)
		if v < 0 {
			mag = -mag
		}
		padNumber(s, d, v < 0, true, mag, Decimal, false, "")
	case VerbUnsigned:
		padNumber(s, d, false, false, fetchUnsigned(args, d.Length), Decimal, false, "")
	case VerbBinary:
		padNumber(s, d, false, false, fetchUnsigned(args, d.Length), Binary, false, "")
	case VerbOctal:
		v := fetchUnsigned(args, d.Length)
		prefix := ""
		if d.Flags.Has(FlagAlt) && v != 0 {
			prefix = "0"
		}
		padNumber(s, d, false, false, v, Octal, false, prefix)
	case VerbHex, VerbHexUpper:
		v := fetchUnsigned(args, d.Length)
		upper := d.Verb == VerbHexUpper
		prefix := ""
		if d.Flags.Has(FlagAlt) && v != 0 {
			prefix = "0x"
			if upper {
				prefix = "0X"
			}
		}
		padNumber(s, d, false, false, v, Hex, upper, prefix)
	case VerbPointer:
		p := args.NextPointer()
		if p == 0 {
			padText(s, d, nilPointer)
			return true
		}
		padNumber(s, d, false, false, uint64(p), Hex, false, "0x")
	default:
		return false
	}
	return true
}

func fetchSigned(args Args, l Length) int64 {
	switch l {
	case LengthLong:
		return args.NextLong()
	case LengthShort:
		return int64(int16(args.NextInt()))
	default:
		return int64(args.NextInt())
	}
}

func fetchUnsigned(args Args, l Length) uint64 {
	switch l {
	case LengthLong:
		return args.NextUlong()
	case LengthShort:
		return uint64(uint16(args.NextUint()))
	default:
		return uint64(args.NextUint())
	}
}

func fetchString(args Args) string {
	str, ok := args.NextString()
	if !ok {
		return nullString
	}
	return str
}

// truncate applies a string precision: at most d.Precision bytes.
func truncate(str string, d *Directive) string {
	if d.HasPrecision && d.Precision < len(str) {
		return str[:d.Precision]
	}
	return str
}

// padText writes body within the field width using spaces only.
func padText(s *sink, d *Directive, body string) {
	pad := d.Width - len(body)
	if d.Flags.Has(FlagMinus) {
		s.writeString(body)
		s.pad(' ', pad)
		return
	}
	s.pad(' ', pad)
	s.writeString(body)
}

// padNumber writes an integer field: sign slot, prefix, precision zeros and
// digits, padded to the field width.
func padNumber(s *sink, d *Directive, neg, signed bool, mag uint64, base Base, upper bool, prefix string) {
	var buf [64]byte
	digits := appendUint(buf[:0], mag, base, upper)
	if d.HasPrecision && d.Precision == 0 && mag == 0 {
		digits = digits[:0]
	}

	zeros := 0
	if d.HasPrecision && d.Precision > len(digits) {
		zeros = d.Precision - len(digits)
	}

	var sign byte
	if signed {
		switch {
		case neg:
			sign = '-'
		case d.Flags.Has(FlagPlus):
			sign = '+'
		case d.Flags.Has(FlagSpace):
			sign = ' '
		}
	}

	content := len(digits) + zeros + len(prefix)
	if sign != 0 {
		content++
	}
	pad := d.Width - content

	head := func() {
		if sign != 0 {
			s.writeByte(sign)
		}
		s.writeString(prefix)
	}
	switch {
	case d.Flags.Has(FlagMinus):
		head()
		s.pad('0', zeros)
		s.write(digits)
		s.pad(' ', pad)
	case d.Flags.Has(FlagZero) && !d.HasPrecision:
		head()
		s.pad('0', pad+zeros)
		s.write(digits)
	default:
		s.pad(' ', pad)
		head()
		s.pad('0', zeros)
		s.write(digits)
	}
}

func reverse(str string) string {
	b := []byte(str)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func rot13(str string) string {
	b := []byte(str)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			b[i] = 'A' + (c-'A'+13)%26
		}
	}
	return string(b)
}

// escapeNonPrintable replaces every byte outside printable ASCII with \xHH.
func escapeNonPrintable(str string) string {
	n := 0
	for i := 0; i < len(str); i++ {
		if isPrint(str[i]) {
			n++
		} else {
			n += escapeWidth
		}
	}
	if n == len(str) {
		return str
	}
	b := make([]byte, 0, n)
	for i := 0; i < len(str); i++ {
		c := str[i]
		if isPrint(c) {
			b = append(b, c)
			continue
		}
		b = append(b, '\\', 'x', upperDigits[c>>4], upperDigits[c&0xF])
	}
	return string(b)
}

func isPrint(c byte) bool { return c >= 0x20 && c < 0x7F }
