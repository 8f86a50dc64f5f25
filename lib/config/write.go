package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/base32h/lib/util"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// StandardFilePermissions for non-sensitive configuration files
const StandardFilePermissions = 0o644

// StandardDirPermissions for non-sensitive directories
const StandardDirPermissions = 0o755

// WriteDefaultConfig writes the built-in settings as YAML to path, creating
// parent directories. An existing file is left alone unless overwrite is set.
func WriteDefaultConfig(path string, overwrite bool) error {
	if util.CheckFileExists(path) && !overwrite {
		return oops.
			Code("config_exists").
			With("file", path).
			Errorf("config file %s already exists", path)
	}

	out, err := yaml.Marshal(DefaultCodecConfig())
	if err != nil {
		return oops.Wrapf(err, "encoding default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), StandardDirPermissions); err != nil {
		return oops.With("file", path).Wrapf(err, "creating config directory")
	}
	if err := os.WriteFile(path, out, StandardFilePermissions); err != nil {
		return oops.With("file", path).Wrapf(err, "writing config file")
	}

	log.Debugf("Created default configuration at: %s", path)
	return nil
}
