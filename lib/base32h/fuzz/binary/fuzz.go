package exportable

import (
	"bytes"

	"github.com/go-i2p/base32h/lib/base32h"
)

func Fuzz(data []byte) int {
	base32h.DecodeStringToBinary(string(data))

	decoded := base32h.DecodeStringToBinary(base32h.EncodeBinaryToString(data))
	if !bytes.Equal(base32h.StripPadding(decoded, len(data)), data) {
		panic("binary round trip mismatch")
	}
	if base32h.ValidateBinary(string(data)) != nil {
		return 0
	}
	return 1
}
