// Package logging sets up file-based structured logging for
// cmd/festival, adapted from the teacher's internal/server/log.go.
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	l "github.com/sirupsen/logrus"
)

const logFilename = "festival.log"

// Setup opens (creating if necessary) logDir/festival.log for append and
// points logrus at it with the given level. It must be called before any
// package-level `log = l.WithFields(...)` entry is used.
func Setup(logDir, logLevel string) error {
	level, err := l.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logLevel)
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return errors.Wrapf(err, "cannot create log directory %q", logDir)
	}

	path := filepath.Join(logDir, logFilename)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "cannot open log file %q", path)
	}

	l.SetOutput(f)
	l.SetLevel(level)
	l.SetFormatter(&l.TextFormatter{FullTimestamp: true})
	return nil
}
