package config

import (
	"errors"
	"path/filepath"

	"github.com/go-i2p/base32h/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const BASE32H_BASE_DIR = ".base32h"

// InitConfig loads defaults and the config file into viper.
// An explicit CfgFile must exist; the default file is optional.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildConfigDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	return handleConfigFile()
}

func setDefaults() {
	defaults := DefaultCodecConfig()
	viper.SetDefault("binary.format", string(defaults.Binary.Format))
	viper.SetDefault("strict", defaults.Strict)
	viper.SetDefault("newline", defaults.Newline)
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && CfgFile == "" {
		log.Debug("No config file found, using defaults")
		return nil
	}
	return oops.
		Code("config_read_failed").
		With("file", CfgFile).
		Wrapf(err, "reading config file")
}

// NewCodecConfigFromViper creates a CodecConfig from current viper settings.
func NewCodecConfigFromViper() (*CodecConfig, error) {
	format, err := ParseBinaryFormat(viper.GetString("binary.format"))
	if err != nil {
		return nil, err
	}
	return &CodecConfig{
		Binary: BinaryConfig{
			Format: format,
		},
		Strict:  viper.GetBool("strict"),
		Newline: viper.GetBool("newline"),
	}, nil
}

// BuildConfigDirPath returns the directory holding the default config file.
func BuildConfigDirPath() string {
	return filepath.Join(util.UserHome(), BASE32H_BASE_DIR)
}

// DefaultConfigFilePath returns the path of the default config file.
func DefaultConfigFilePath() string {
	return filepath.Join(BuildConfigDirPath(), "config.yaml")
}
