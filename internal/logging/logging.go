package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hmse-unipi/portal/internal/config"
)

// New builds the application logger: human-readable development output
// for the console format, production JSON otherwise.
func New(c *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if strings.ToLower(c.Log.Format) == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(parseLevel(c.Log.Level))

	return zc.Build()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
