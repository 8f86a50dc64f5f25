package exportable

import "github.com/go-i2p/base32h/lib/base32h"

func Fuzz(data []byte) int {
	v := base32h.DecodeString(string(data))
	if base32h.DecodeString(base32h.EncodeToString(v)) != v {
		panic("numeric round trip mismatch")
	}
	if base32h.ValidateNumeric(string(data)) != nil {
		return 0
	}
	return 1
}
