package config

import (
	"strings"

	"github.com/samber/oops"
)

// BinaryFormat selects how the CLI reads and writes byte sequences.
type BinaryFormat string

const (
	// FormatRaw passes bytes through unchanged.
	FormatRaw BinaryFormat = "raw"
	// FormatHex reads and writes bytes as hexadecimal text.
	FormatHex BinaryFormat = "hex"
)

// ParseBinaryFormat returns the BinaryFormat named by s, case-insensitively.
func ParseBinaryFormat(s string) (BinaryFormat, error) {
	switch f := BinaryFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatRaw, FormatHex:
		return f, nil
	default:
		return "", oops.
			Code("invalid_binary_format").
			With("format", s).
			Errorf("unknown binary format %q: want %q or %q", s, FormatRaw, FormatHex)
	}
}

// BinaryConfig holds settings for the binary commands.
type BinaryConfig struct {
	Format BinaryFormat `yaml:"format"`
}

// CodecConfig is the complete CLI configuration.
type CodecConfig struct {
	Binary  BinaryConfig `yaml:"binary"`
	Strict  bool         `yaml:"strict"`
	Newline bool         `yaml:"newline"`
}

// DefaultCodecConfig returns the built-in settings.
func DefaultCodecConfig() CodecConfig {
	return CodecConfig{
		Binary: BinaryConfig{
			Format: FormatRaw,
		},
		Strict:  false,
		Newline: true,
	}
}
