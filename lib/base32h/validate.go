package base32h

import (
	"errors"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var (
	// ErrInvalidCharacter is wrapped by errors for characters outside the decode alphabet.
	ErrInvalidCharacter = errors.New("invalid base32h character")
	// ErrOverflow is wrapped by errors for numeric strings wider than 128 bits.
	ErrOverflow = errors.New("base32h value overflows 128 bits")
	// ErrMisaligned is wrapped by errors for binary strings that are not a
	// whole number of 8-symbol groups.
	ErrMisaligned = errors.New("base32h binary string is not a multiple of 8 symbols")
)

// Validate returns an error for the first character of s that the decoder
// would drop. It returns nil for the empty string.
func Validate(s string) error {
	for i, r := range s {
		if IsValidChar(r) {
			continue
		}
		log.WithFields(logger.Fields{
			"at":    "base32h.Validate",
			"index": i,
			"char":  string(r),
		}).Debug("invalid_character")
		return oops.
			Code("invalid_character").
			With("index", i, "char", string(r)).
			Wrapf(ErrInvalidCharacter, "character %q at index %d", r, i)
	}
	return nil
}

// ValidateNumeric is Validate plus a check that s decodes without losing
// bits. Leading zero digits do not count towards the width.
func ValidateNumeric(s string) error {
	if err := Validate(s); err != nil {
		return err
	}
	i := 0
	for i < len(s) && decodeMap[s[i]] == 0 {
		i++
	}
	digits := s[i:]
	// 26 symbols hold 130 bits, so the leading one may use only 3 of its 5.
	if len(digits) > maxNumericLen || (len(digits) == maxNumericLen && decodeMap[digits[0]] > 7) {
		return oops.
			Code("overflow").
			With("symbols", len(digits)).
			Wrapf(ErrOverflow, "%d significant symbols", len(digits))
	}
	return nil
}

// ValidateBinary is Validate plus a check that s is made of whole 8-symbol
// groups, as produced by EncodeBinaryToString.
func ValidateBinary(s string) error {
	if err := Validate(s); err != nil {
		return err
	}
	if len(s)%GroupSymbols != 0 {
		return oops.
			Code("misaligned").
			With("symbols", len(s)).
			Wrapf(ErrMisaligned, "%d symbols", len(s))
	}
	return nil
}
