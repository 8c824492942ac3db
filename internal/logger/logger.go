// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults
// so packages and tests never see a nil logger.
var Log = logrus.New()

// Init configures the global logger from the environment:
//   - LOG_LEVEL: logrus level name (default "info")
//   - LOG_FORMAT: "json" for JSON lines, anything else for text
//   - LOG_FILE: file to append to; when empty, logs go to fallback
//
// The returned closer releases the log file, if one was opened.
func Init(fallback io.Writer) (io.Closer, error) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		Log.SetOutput(fallback)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.SetOutput(fallback)
		return nopCloser{}, err
	}
	Log.SetOutput(f)
	return f, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
