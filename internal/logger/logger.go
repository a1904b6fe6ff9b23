package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configura logrus a partir del entorno: LOG_LEVEL y LOG_FORMAT
// (json o text). Por defecto info + json, como corre en producción.
func Init() {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if os.Getenv("LOG_FORMAT") == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
