package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(logrus.WarnLevel, parseLevel("WARN"))
	assert.Equal(logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(logrus.DebugLevel, parseLevel("anything"))
}

func TestEnableVerbose(t *testing.T) {
	assert := assert.New(t)

	l := &Logger{Logger: logrus.New()}
	var buf bytes.Buffer
	l.EnableVerbose(&buf)
	l.WithField("command", "encode").Debug("running_command")

	assert.Contains(buf.String(), "running_command")
	assert.Contains(buf.String(), "command=encode")
}

func TestGetBase32hLoggerIsShared(t *testing.T) {
	assert.Same(t, GetBase32hLogger(), GetBase32hLogger())
}
