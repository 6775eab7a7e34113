// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"

	"github.com/brandkit/api/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Setup applies the configured level and formatter and sends output to out.
// Dev mode forces debug level. An unknown level falls back to info.
func Setup(out io.Writer) {
	logrus.SetOutput(out)

	if viper.GetBool(config.LogJSON) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(config.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	if viper.GetBool(config.DevMode) && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
