// Package logging configures the process-wide logrus logger.
package logging

import (
	"badgeofshame/internal/env"

	"github.com/sirupsen/logrus"
)

// Init applies the level and formatter from the logging configuration.
func Init(c env.Logging) {
	logrus.SetLevel(logrus.InfoLevel)
	if c.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if c.Text {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Color,
			DisableColors: !c.Color,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Pretty,
		})
	}
}
