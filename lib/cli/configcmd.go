package cli

import (
	"github.com/go-i2p/base32h/lib/config"
	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the base32h config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long:  "Write the built-in settings to --config, or to $HOME/.base32h/config.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.CfgFile
			if path == "" {
				path = config.DefaultConfigFilePath()
			}
			if err := config.WriteDefaultConfig(path, force); err != nil {
				return err
			}
			return a.writeText(cmd, path)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	// Loading the config would fail before init could create it.
	initCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		a.routeLogs(cmd)
		newline, err := cmd.Flags().GetBool("newline")
		if err != nil {
			return err
		}
		a.cfg = &config.CodecConfig{Newline: newline}
		return nil
	}

	cmd.AddCommand(initCmd)
	return cmd
}
