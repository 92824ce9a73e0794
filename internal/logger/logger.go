package logger

import (
	"fmt"

	"github.com/TudorHulban/slotledger/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON logger for production and a coloured console logger
// otherwise, at the configured level.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, errLevel := zapcore.ParseLevel(cfg.LogLevel)
	if errLevel != nil {
		return nil,
			fmt.Errorf("log level %q: %w", cfg.LogLevel, errLevel)
	}

	var zapConfig zap.Config

	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)

	return zapConfig.Build()
}
