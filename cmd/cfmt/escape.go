package main

import (
	"fmt"
	"strconv"
	"strings"
)

// unescape interprets Go backslash escapes such as \n, \t, \\, \xHH, \uHHHH
// and \101. Bytes outside escapes are copied unchanged, including invalid
// UTF-8.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		value, multibyte, tail, err := strconv.UnquoteChar(s[i:], 0)
		if err != nil {
			return "", fmt.Errorf("invalid escape at offset %d in %q: %w", i, s, err)
		}
		if multibyte {
			sb.WriteRune(value)
		} else {
			sb.WriteByte(byte(value))
		}
		i = len(s) - len(tail)
	}
	return sb.String(), nil
}
