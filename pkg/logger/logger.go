package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем из конфигурации.
// Некорректный уровень не считается фатальным, используется info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("log_level", logLevel).Warn("Unknown log level, falling back to info")
		return log
	}
	log.SetLevel(level)
	return log
}
