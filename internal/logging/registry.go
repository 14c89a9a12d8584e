package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	global  *logrus.Logger
	loggers []*logrus.Logger
)

// GetLogger returns the shared application logger, creating it on first use.
// Packages typically hold the result in a package-level `log` variable.
func GetLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = logrus.New()
		global.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		loggers = append(loggers, global)
	}
	return global
}

// register tracks a logger so SetAllLogLevels can reach it later.
func register(logger *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	loggers = append(loggers, logger)
}

// SetAllLogLevels applies the given level to every logger created through this
// package. Used at startup so early-created package loggers pick up the
// configured level.
func SetAllLogLevels(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(level)
	}
}
