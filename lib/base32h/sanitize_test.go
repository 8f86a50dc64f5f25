package base32h

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"clean", "0123456789ABCDEFGHJKLMNPQRTVWXYZ", "0123456789ABCDEFGHJKLMNPQRTVWXYZ"},
		{"keeps aliases", "OISU oisu", "OISUoisu"},
		{"drops punctuation", "3z-Zz_Zz.Z", "3zZzZzZ"},
		{"drops whitespace", " 0000\t007Z\n", "0000007Z"},
		{"drops non-ascii", "Z€Zé✓Z", "ZZZ"},
		{"all invalid", "!@#$%^&*()", ""},
		{"invalid utf-8", "\xff\xfeAB\xc3", "AB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.input))
		})
	}
}

func TestIsValidChar(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidChar('a'))
	assert.True(IsValidChar('Z'))
	assert.True(IsValidChar('u'))
	assert.False(IsValidChar('='))
	assert.False(IsValidChar('é'))
	assert.False(IsValidChar(-1))
	// U+0141 shares its low byte with 'A'
	assert.False(IsValidChar('Ł'))
}
