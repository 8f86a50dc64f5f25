package base32h

import (
	"bytes"
	"testing"

	"lukechampine.com/uint128"
)

func BenchmarkEncodeToString(b *testing.B) {
	v := uint128.From64(4294967295)
	for i := 0; i < b.N; i++ {
		EncodeToString(v)
	}
}

func BenchmarkDecodeString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DecodeString("3zZzZzZ")
	}
}

func BenchmarkEncodeBinaryToString(b *testing.B) {
	data := bytes.Repeat([]byte{255}, 10)
	for i := 0; i < b.N; i++ {
		EncodeBinaryToString(data)
	}
}

func BenchmarkDecodeStringToBinary(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DecodeStringToBinary("zZzZzZzZzZzZzZzZ")
	}
}
