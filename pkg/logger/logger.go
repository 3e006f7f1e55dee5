package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *Logger

// Logger wraps zap.SugaredLogger so call sites stay decoupled from zap.
type Logger struct {
	*zap.SugaredLogger
}

// Init builds the global logger. Production environments get JSON output,
// everything else gets the colored development encoder.
func Init(level string, env string) error {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	globalLogger = &Logger{SugaredLogger: built.Sugar()}
	return nil
}

// Get returns the global logger, falling back to a development logger
// when Init has not run (useful in tests).
func Get() *Logger {
	if globalLogger == nil {
		built, _ := zap.NewDevelopment()
		globalLogger = &Logger{SugaredLogger: built.Sugar()}
	}
	return globalLogger
}

// With creates a child logger with additional key/value fields.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
