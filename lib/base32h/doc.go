// Package base32h implements the base32h encoding: a 32 symbol alphabet
// built for humans to read, type and say aloud.
//
// The canonical alphabet is
//
//	0123456789ABCDEFGHJKLMNPQRTVWXYZ
//
// Decoding is case-insensitive and accepts the ambiguous glyphs a person is
// likely to type in place of a canonical digit:
//
//   - O and o decode as 0
//   - I and i decode as 1
//   - S and s decode as 5
//   - U and u decode as V
//
// # Numeric encoding
//
// EncodeToString and DecodeString convert between unsigned 128-bit integers
// and minimal, unpadded symbol strings, most significant digit first.
//
// # Binary encoding
//
// EncodeBinaryToString works on 5-byte groups. Each group is 40 bits and maps
// to exactly 8 symbols. Input is left-padded with zero bytes to a multiple of
// 5 bytes and output is left-padded with '0' to a multiple of 8 symbols.
//
// DecodeStringToBinary is the structural inverse of that padded form. It does
// not know how many padding bytes were added, so decoding the encoding of a
// slice whose length is not a multiple of 5 returns the slice with leading
// zero bytes prepended. Callers that need the original length back must keep
// it themselves; StripPadding trims a decoded buffer to a known length.
//
// # Malformed input
//
// Decoding never fails. Characters outside the decode alphabet, including
// any non-ASCII text, are dropped before decoding. Use Validate,
// ValidateNumeric or ValidateBinary first when malformed input should be
// rejected instead.
package base32h
