// Package logger provides opinionated logging capabilities for the chatbot services
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger writing to stdout.
func NewLogger(debug bool) *zap.Logger {
	return newLogger(debug, os.Stdout)
}

// NewStderrLogger returns a console logger writing to stderr, for commands
// whose stdout carries a wire protocol (the MCP stdio bridge).
func NewStderrLogger(debug bool) *zap.Logger {
	return newLogger(debug, os.Stderr)
}

func newLogger(debug bool, out *os.File) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	// Set log level
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(out),
		level,
	)

	return zap.New(core, zap.AddCaller())
}
