// Package cli maps command-line arguments and standard input onto the
// base32h codec.
package cli

import (
	"github.com/go-i2p/base32h/lib/config"
	"github.com/go-i2p/base32h/lib/util/logger"
	i2plogger "github.com/go-i2p/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetBase32hLogger()

// app carries the resolved configuration to every subcommand.
type app struct {
	cfg     *config.CodecConfig
	verbose bool
}

// NewRootCommand builds the base32h command tree. Flags are bound to the
// global viper instance, so callers running several trees in one process
// should reset viper in between.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "base32h",
		Short: "Encode and decode numbers and bytes with the base32h alphabet",
		Long: `base32h converts unsigned 128-bit integers and byte sequences to and from
the base32h alphabet (0123456789ABCDEFGHJKLMNPQRTVWXYZ).

Decoding is case-insensitive, accepts O, I, S and U for 0, 1, 5 and V, and
ignores any other character unless --strict is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.base32h/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.Bool("strict", false, "reject input containing characters outside the alphabet")
	flags.String("format", string(config.FormatRaw), "byte format for binary input and output: raw or hex")
	flags.Bool("newline", true, "end text results with a newline")

	cobra.CheckErr(viper.BindPFlag("strict", flags.Lookup("strict")))
	cobra.CheckErr(viper.BindPFlag("binary.format", flags.Lookup("format")))
	cobra.CheckErr(viper.BindPFlag("newline", flags.Lookup("newline")))

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newEncodeBinaryCommand(a),
		newDecodeBinaryCommand(a),
		newValidateCommand(a),
		newConfigCommand(a),
	)
	return root
}

// routeLogs keeps every logger off stdout, which carries only results.
// --verbose turns on debug output for the CLI and the library packages.
func (a *app) routeLogs(cmd *cobra.Command) {
	libLog := i2plogger.GetGoI2PLogger()
	libLog.SetOutput(cmd.ErrOrStderr())
	if a.verbose {
		log.EnableVerbose(cmd.ErrOrStderr())
		libLog.SetLevel(i2plogger.DebugLevel)
	}
}

func (a *app) load(cmd *cobra.Command) error {
	a.routeLogs(cmd)
	if err := config.InitConfig(); err != nil {
		return err
	}
	cfg, err := config.NewCodecConfigFromViper()
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.WithFields(logrus.Fields{
		"at":      "cli.load",
		"command": cmd.Name(),
		"format":  cfg.Binary.Format,
		"strict":  cfg.Strict,
	}).Debug("configuration_loaded")
	return nil
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
