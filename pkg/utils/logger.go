package utils

import (
	"sync"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"
)

var (
	initGlobalLoggerOnce sync.Once
	initGlobalLoggerErr  error
)

// InitGlobalLogger initializes the global logger from the given configuration.
// Only the first call configures the logger, later calls return the result of the first one.
func InitGlobalLogger(config *configuration.Configuration) error {
	initGlobalLoggerOnce.Do(func() {
		initGlobalLoggerErr = logger.InitGlobalLogger(config)
	})
	return initGlobalLoggerErr
}

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *logger.Logger
}

// NewWrappedLogger creates a new WrappedLogger.
func NewWrappedLogger(logger *logger.Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// Logger return the underlying logger.
func (l *WrappedLogger) Logger() *logger.Logger {
	return l.logger
}

// LoggerNamed adds a sub-scope to the logger's name. See Logger.Named for details.
func (l *WrappedLogger) LoggerNamed(name string) *logger.Logger {
	if l.logger != nil {
		return l.logger.Named(name)
	}
	return nil
}

// LogDebugf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogDebugf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Debugf(template, args...)
	}
}

// LogInfof uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogInfof(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Infof(template, args...)
	}
}

// LogWarnf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogWarnf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Warnf(template, args...)
	}
}

// LogErrorf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogErrorf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Errorf(template, args...)
	}
}
