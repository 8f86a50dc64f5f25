package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper isolates each test from global viper state and the real home directory.
func resetViper(t *testing.T) string {
	t.Helper()
	viper.Reset()
	CfgFile = ""
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() {
		viper.Reset()
		CfgFile = ""
	})
	return home
}

func TestInitConfigWithoutFileUsesDefaults(t *testing.T) {
	resetViper(t)

	require.NoError(t, InitConfig())
	cfg, err := NewCodecConfigFromViper()
	require.NoError(t, err)

	assert.Equal(t, DefaultCodecConfig(), *cfg)
}

func TestInitConfigReadsDefaultFile(t *testing.T) {
	home := resetViper(t)

	dir := filepath.Join(home, BASE32H_BASE_DIR)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "binary:\n  format: hex\nstrict: true\nnewline: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	require.NoError(t, InitConfig())
	cfg, err := NewCodecConfigFromViper()
	require.NoError(t, err)

	assert.Equal(t, FormatHex, cfg.Binary.Format)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Newline)
}

func TestInitConfigExplicitFileMustExist(t *testing.T) {
	home := resetViper(t)
	CfgFile = filepath.Join(home, "missing.yaml")

	assert.Error(t, InitConfig())
}

func TestNewCodecConfigFromViperRejectsUnknownFormat(t *testing.T) {
	resetViper(t)
	require.NoError(t, InitConfig())
	viper.Set("binary.format", "base64")

	_, err := NewCodecConfigFromViper()
	assert.Error(t, err)
}

func TestParseBinaryFormat(t *testing.T) {
	assert := assert.New(t)

	f, err := ParseBinaryFormat(" HEX ")
	assert.NoError(err)
	assert.Equal(FormatHex, f)

	f, err = ParseBinaryFormat("raw")
	assert.NoError(err)
	assert.Equal(FormatRaw, f)

	_, err = ParseBinaryFormat("")
	assert.Error(err)
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	home := resetViper(t)
	path := filepath.Join(home, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path, false))
	assert.Error(t, WriteDefaultConfig(path, false), "existing file must not be overwritten")
	assert.NoError(t, WriteDefaultConfig(path, true))

	CfgFile = path
	require.NoError(t, InitConfig())
	assert.Equal(t, path, viper.ConfigFileUsed())

	cfg, err := NewCodecConfigFromViper()
	require.NoError(t, err)
	assert.Equal(t, DefaultCodecConfig(), *cfg)
}

func TestDefaultConfigFilePath(t *testing.T) {
	home := resetViper(t)
	assert.Equal(t, filepath.Join(home, ".base32h", "config.yaml"), DefaultConfigFilePath())
}
