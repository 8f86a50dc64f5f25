package cli

import (
	"strings"

	"github.com/go-i2p/base32h/lib/base32h"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEncodeBinaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode-binary [FILE]",
		Short: "Encode bytes from a file or standard input",
		Long: `Encode the contents of FILE, or standard input, as one base32h string.

Input is read as raw bytes, or as hexadecimal text with --format hex. The
result is always a multiple of 8 symbols.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readBytes(cmd, path, a.cfg.Binary.Format)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"at":    "cli.encode-binary",
				"bytes": len(data),
			}).Debug("encoding_input")
			return a.writeText(cmd, base32h.EncodeBinaryToString(data))
		},
	}
}

func newDecodeBinaryCommand(a *app) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "decode-binary [SYMBOLS...]",
		Short: "Decode base32h strings to bytes",
		Long: `Decode each argument, or all of standard input, to bytes.

The output keeps the zero bytes added to pad the input to a multiple of 5
bytes. Pass --length with the original byte count to strip them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				lines, err := inputs(cmd, nil)
				if err != nil {
					return err
				}
				args = []string{strings.Join(lines, "")}
			}
			for _, s := range args {
				s = strings.Join(strings.Fields(s), "")
				if a.cfg.Strict {
					if err := base32h.ValidateBinary(s); err != nil {
						return err
					}
				}
				data := base32h.DecodeStringToBinary(s)
				if cmd.Flags().Changed("length") {
					data = base32h.StripPadding(data, length)
				}
				log.WithFields(logrus.Fields{
					"at":    "cli.decode-binary",
					"bytes": len(data),
				}).Debug("decoded_input")
				if err := a.writeBytes(cmd, data); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", -1, "original byte count; strips leading padding bytes")
	return cmd
}
