package base32h

// EncodeAlphabet is the canonical base32h alphabet. The index of a character
// is its digit value.
const EncodeAlphabet = "0123456789ABCDEFGHJKLMNPQRTVWXYZ"

// invalidDigit marks bytes that are not part of the decode alphabet.
const invalidDigit = 0xff

// decodeMap maps every accepted input byte to its digit value.
// It is filled once in init and only read afterwards.
var decodeMap [256]byte

// aliases lists the non-canonical glyphs accepted on decode.
var aliases = map[byte]byte{
	'O': '0',
	'I': '1',
	'S': '5',
	'U': 'V',
}

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalidDigit
	}
	for i := 0; i < len(EncodeAlphabet); i++ {
		c := EncodeAlphabet[i]
		decodeMap[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			decodeMap[c+'a'-'A'] = byte(i)
		}
	}
	for alias, canonical := range aliases {
		decodeMap[alias] = decodeMap[canonical]
		decodeMap[alias+'a'-'A'] = decodeMap[canonical]
	}
}

// EncodeDigit returns the canonical character for digit d.
// Only the low five bits of d are used.
func EncodeDigit(d byte) byte {
	return EncodeAlphabet[d&0x1f]
}

// DecodeDigit returns the digit value of c, accepting canonical characters in
// either case and their aliases. ok is false if c is not in the decode alphabet.
func DecodeDigit(c byte) (digit byte, ok bool) {
	digit = decodeMap[c]
	return digit, digit != invalidDigit
}
