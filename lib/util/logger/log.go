package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvLogLevel enables CLI logging when set to debug, warn or error.
const EnvLogLevel = "BASE32H_DEBUG"

var (
	log  *Logger
	once sync.Once
)

type Logger struct {
	*logrus.Logger
}

// InitializeBase32hLogger creates the shared logger. Logging is discarded
// unless EnvLogLevel is set.
func InitializeBase32hLogger() {
	once.Do(func() {
		log = &Logger{}
		log.Logger = logrus.New()
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		if logLevel := os.Getenv(EnvLogLevel); logLevel != "" {
			log.SetOutput(os.Stderr)
			log.SetLevel(parseLevel(logLevel))
			log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
		}
	})
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.DebugLevel
	}
}

// EnableVerbose sends debug output to w, overriding the environment.
func (l *Logger) EnableVerbose(w io.Writer) {
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
}

// GetBase32hLogger returns the initialized Logger
func GetBase32hLogger() *Logger {
	if log == nil {
		InitializeBase32hLogger()
	}
	return log
}

func init() {
	InitializeBase32hLogger()
}
