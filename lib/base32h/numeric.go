package base32h

import (
	"lukechampine.com/uint128"
)

// maxNumericLen is the number of symbols needed for the largest 128-bit value.
const maxNumericLen = 26

// EncodeToString returns the base32h representation of v, most significant
// digit first and without padding. Zero encodes as "0".
func EncodeToString(v uint128.Uint128) string {
	return string(EncodeBytes(v))
}

// EncodeUint64 is EncodeToString for values that fit in 64 bits.
func EncodeUint64(v uint64) string {
	return EncodeToString(uint128.From64(v))
}

// EncodeBytes is EncodeToString returning the symbols as a byte slice.
func EncodeBytes(v uint128.Uint128) []byte {
	if v.IsZero() {
		return []byte{EncodeAlphabet[0]}
	}
	var buf [maxNumericLen]byte
	i := len(buf)
	for !v.IsZero() {
		i--
		buf[i] = EncodeDigit(byte(v.Lo))
		v = v.Rsh(5)
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}

// DecodeString returns the value represented by s. Characters outside the
// decode alphabet are ignored, and a string with no valid characters decodes
// to zero.
//
// Overflow is not checked: digits beyond 128 bits are shifted out and the low
// 128 bits are returned. Use ValidateNumeric to reject such input.
func DecodeString(s string) uint128.Uint128 {
	var v uint128.Uint128
	for i := 0; i < len(s); i++ {
		d, ok := DecodeDigit(s[i])
		if !ok {
			continue
		}
		v = v.Lsh(5).Or64(uint64(d))
	}
	return v
}

// DecodeUint64 returns the low 64 bits of DecodeString(s).
func DecodeUint64(s string) uint64 {
	return DecodeString(s).Lo
}
