// Package applog provides the CLI-boundary structured logger. The core
// packages (units, atmosphere, drag, stability, coriolis, wind, solver)
// never import this package: logging lives at the host layer only.
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger at the given level ("debug", "info",
// "warn", "error"), writing structured JSON to stdout.
func New(level string) *logrus.Logger {
	logger := logrus.New()

	switch level {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	return logger
}
