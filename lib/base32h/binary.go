package base32h

import (
	"github.com/go-i2p/logger"
	"lukechampine.com/uint128"
)

var log = logger.GetGoI2PLogger()

const (
	// GroupBytes is the number of input bytes in one binary group.
	GroupBytes = 5
	// GroupSymbols is the number of symbols one binary group encodes to.
	GroupSymbols = 8

	padChar = '0'
)

// debugEnabled keeps the per-call log fields from being built when nobody reads them.
func debugEnabled() bool {
	return log.GetLevel() >= logger.DebugLevel
}

// EncodeBinaryToString encodes data in 5-byte groups. data is left-padded
// with zero bytes to a multiple of 5, and every group becomes exactly 8
// symbols. Empty input encodes to "".
func EncodeBinaryToString(data []byte) string {
	padding := (GroupBytes - len(data)%GroupBytes) % GroupBytes
	if debugEnabled() {
		log.WithFields(logger.Fields{
			"at":          "base32h.EncodeBinaryToString",
			"input_bytes": len(data),
			"pad_bytes":   padding,
		}).Debug("encoding_binary")
	}

	padded := make([]byte, padding, padding+len(data))
	padded = append(padded, data...)

	out := make([]byte, 0, len(padded)/GroupBytes*GroupSymbols)
	for i := 0; i < len(padded); i += GroupBytes {
		group := EncodeBytes(uint128.From64(bytesToUint40(padded[i : i+GroupBytes])))
		out = append(out, Pad(group)...)
	}
	return string(Pad(out))
}

// DecodeStringToBinary decodes s in 8-symbol groups, each yielding 5 bytes.
// Invalid characters are dropped first and the remaining symbols are
// left-padded with '0' to a multiple of 8.
//
// Zero bytes added by EncodeBinaryToString are not removed; see StripPadding.
// Input with no valid characters decodes to an empty slice.
func DecodeStringToBinary(s string) []byte {
	symbols := Pad([]byte(Sanitize(s)))
	if debugEnabled() {
		log.WithFields(logger.Fields{
			"at":           "base32h.DecodeStringToBinary",
			"input_length": len(s),
			"symbols":      len(symbols),
		}).Debug("decoding_binary")
	}

	out := make([]byte, 0, len(symbols)/GroupSymbols*GroupBytes)
	for i := 0; i < len(symbols); i += GroupSymbols {
		v := DecodeString(string(symbols[i : i+GroupSymbols]))
		out = uint40AppendBytes(out, v.Lo)
	}
	return out
}

// Pad left-pads symbols with '0' to a multiple of 8. The slice is returned
// unchanged when it is already aligned.
func Pad(symbols []byte) []byte {
	rem := len(symbols) % GroupSymbols
	if rem == 0 {
		return symbols
	}
	out := make([]byte, GroupSymbols-rem, len(symbols)+GroupSymbols-rem)
	for i := range out {
		out[i] = padChar
	}
	return append(out, symbols...)
}

// StripPadding returns the last originalLen bytes of data, undoing the zero
// padding of a decoded buffer whose unpadded length is known to the caller.
// data is returned unchanged if originalLen is negative or not shorter than data.
func StripPadding(data []byte, originalLen int) []byte {
	if originalLen < 0 || originalLen >= len(data) {
		return data
	}
	return data[len(data)-originalLen:]
}

// bytesToUint40 packs a 5-byte group big-endian.
func bytesToUint40(b []byte) uint64 {
	_ = b[4]
	return uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])
}

// uint40AppendBytes appends the low 40 bits of v to b, big-endian.
func uint40AppendBytes(b []byte, v uint64) []byte {
	return append(b, byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
