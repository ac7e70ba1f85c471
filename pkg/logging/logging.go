// Package logging bootstraps the process-wide zap logger; everything else
// logs through zap.S().
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a production logger at the given level ("debug", "info", ...)
// and installs it as the zap global. An empty or unknown level means info.
func Init(level string) error {
	lvl := zapcore.InfoLevel
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
