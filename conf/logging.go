package conf

import (
	"github.com/sirupsen/logrus"
)

// ConfigureLogging applies the log section of the configuration to the
// standard logger and returns an entry to hand around.
func ConfigureLogging(config *Configuration) (*logrus.Entry, error) {
	if config.Log.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if config.Log.Level != "" {
		level, err := logrus.ParseLevel(config.Log.Level)
		if err != nil {
			return nil, err
		}
		logrus.SetLevel(level)
	}

	return logrus.StandardLogger().WithField("application", "gozones"), nil
}
