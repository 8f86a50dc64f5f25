package cli

import (
	"github.com/go-i2p/base32h/lib/base32h"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	var numeric, binary bool

	cmd := &cobra.Command{
		Use:   "validate [SYMBOLS...]",
		Short: "Check that strings use only the base32h alphabet",
		Long: `Check each argument, or each line of standard input, and print "ok" for
every valid one. Stops with an error at the first invalid input.

--numeric also rejects values wider than 128 bits; --binary also rejects
strings that are not a multiple of 8 symbols.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			check := base32h.Validate
			switch {
			case numeric:
				check = base32h.ValidateNumeric
			case binary:
				check = base32h.ValidateBinary
			}
			for _, s := range values {
				if err := check(s); err != nil {
					return err
				}
				if err := a.writeText(cmd, "ok"); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&numeric, "numeric", false, "validate as a 128-bit number")
	cmd.Flags().BoolVar(&binary, "binary", false, "validate as binary data")
	cmd.MarkFlagsMutuallyExclusive("numeric", "binary")
	return cmd
}
