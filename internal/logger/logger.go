// Package logger builds the zap loggers used by the command-line tool and
// the HTTP server.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a structured *zap.Logger tagged with the service name.
// Development loggers log at DebugLevel and above, production ones at
// InfoLevel and above.
func New(service string, development bool) (*zap.Logger, error) {
	cfg := zapdriver.NewProductionConfig()
	if development {
		cfg = zapdriver.NewDevelopmentConfig()
	}
	return newLoggerFromConfig(cfg, service)
}

func newLoggerFromConfig(cfg zap.Config, service string) (*zap.Logger, error) {
	// stdout carries command output, logs go to stderr.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}
