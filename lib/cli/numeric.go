package cli

import (
	"github.com/go-i2p/base32h/lib/base32h"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"lukechampine.com/uint128"
)

func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [NUMBER...]",
		Short: "Encode unsigned 128-bit decimal integers",
		Long:  "Encode each decimal argument, or each line of standard input, as a base32h string.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, s := range values {
				v, err := uint128.FromString(s)
				if err != nil {
					return oops.
						Code("invalid_number").
						With("input", s).
						Wrapf(err, "parsing %q as an unsigned 128-bit integer", s)
				}
				if err := a.writeText(cmd, base32h.EncodeToString(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [SYMBOLS...]",
		Short: "Decode base32h strings to decimal integers",
		Long: `Decode each argument, or each line of standard input, to a decimal integer.

Characters outside the alphabet are ignored unless --strict is set. Without
--strict, values wider than 128 bits keep only their low 128 bits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, s := range values {
				if a.cfg.Strict {
					if err := base32h.ValidateNumeric(s); err != nil {
						return err
					}
				}
				v := base32h.DecodeString(s)
				log.WithFields(logrus.Fields{
					"at":    "cli.decode",
					"input": s,
					"value": v.String(),
				}).Debug("decoded_number")
				if err := a.writeText(cmd, v.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
