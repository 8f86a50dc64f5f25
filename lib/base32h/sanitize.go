package base32h

import "strings"

// IsValidChar reports whether r is accepted by the decoder.
func IsValidChar(r rune) bool {
	if r < 0 || r >= 0x80 {
		return false
	}
	_, ok := DecodeDigit(byte(r))
	return ok
}

// Sanitize returns the characters of s that belong to the decode alphabet,
// in order. Everything else is dropped, including every byte of a multi-byte
// UTF-8 sequence, so the result is always plain ASCII.
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if _, ok := DecodeDigit(s[i]); ok {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isClean(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := DecodeDigit(s[i]); !ok {
			return false
		}
	}
	return true
}
