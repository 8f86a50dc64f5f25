package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHomePrefersHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, UserHome())
}

func TestCheckFileExists(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	assert.False(CheckFileExists(path))

	assert.NoError(os.WriteFile(path, []byte("strict: false\n"), 0o644))
	assert.True(CheckFileExists(path))
	assert.True(CheckFileExists(dir))
}

func TestCheckFileExistsTreatsUnreadablePathsAsPresent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can stat any path")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	assert.NoError(t, os.Mkdir(dir, 0o000))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	assert.True(t, CheckFileExists(filepath.Join(dir, "config.yaml")))
}
