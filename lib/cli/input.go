package cli

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/go-i2p/base32h/lib/config"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// inputs returns args, or the non-blank lines of stdin when args is empty.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, oops.Wrapf(err, "reading standard input")
	}
	return lines, nil
}

// readBytes reads all of path, or stdin when path is empty or "-", and
// decodes it according to format.
func readBytes(cmd *cobra.Command, path string, format config.BinaryFormat) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, oops.With("file", path).Wrapf(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, oops.Wrapf(err, "reading input")
	}
	if format != config.FormatHex {
		return data, nil
	}

	decoded, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, oops.Code("invalid_hex").Wrapf(err, "decoding hex input")
	}
	return decoded, nil
}

// writeText writes s, followed by a newline when configured.
func (a *app) writeText(cmd *cobra.Command, s string) error {
	if a.cfg.Newline {
		s += "\n"
	}
	_, err := io.WriteString(cmd.OutOrStdout(), s)
	return err
}

// writeBytes writes data in the configured binary format.
func (a *app) writeBytes(cmd *cobra.Command, data []byte) error {
	if a.cfg.Binary.Format == config.FormatHex {
		return a.writeText(cmd, hex.EncodeToString(data))
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
