package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	outputPaths []string
}

// Option настраивает логгер
type Option func(*options)

// WithOutputPaths overrides the default stdout sink. The MCP stdio server uses
// it to keep stdout free for protocol frames.
func WithOutputPaths(paths ...string) Option {
	return func(o *options) {
		o.outputPaths = paths
	}
}

func New(level string, opts ...Option) (*zap.Logger, error) {
	o := options{outputPaths: []string{"stdout"}}
	for _, opt := range opts {
		opt(&o)
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      o.outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	if level == "debug" {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}
