package cfmt

import "fmt"

// Base is a radix supported by the integer conversions.
type Base int

const (
	Binary  Base = 2
	Octal   Base = 8
	Decimal Base = 10
	Hex     Base = 16
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// FormatUint renders v in the given base, most significant digit first, with
// no sign and no prefix. Zero renders as "0".
func FormatUint(v uint64, base Base, upper bool) string {
	return string(appendUint(nil, v, base, upper))
}

// appendUint is the allocation-free form of FormatUint. A uint64 never needs
// more than 64 digits, so the scratch array covers base 2.
func appendUint(dst []byte, v uint64, base Base, upper bool) []byte {
	switch base {
	case Binary, Octal, Decimal, Hex:
	default:
		panic(fmt.Sprintf("cfmt: unsupported base %d", base))
	}
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	var tmp [64]byte
	i := len(tmp)
	b := uint64(base)
	for {
		i--
		tmp[i] = digits[v%b]
		v /= b
		if v == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}
