// Package report is a simple encapsulation of the go.uber.org/zap package
// behind the solver's progress interface.
package report

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where the reporter writes and how much.
type Config struct {
	Level      string // zap level name, e.g. "INFO"
	FileName   string // optional rotating log file; empty = stderr only
	MaxSize    int    // megabytes per log file before rotation
	MaxAge     int    // days to retain rotated files
	MaxBackups int
	Compress   bool
}

// DefaultConfig returns the settings the CLI uses when no log file is
// requested.
func DefaultConfig() *Config {
	return &Config{
		Level:      "INFO",
		MaxSize:    10,
		MaxAge:     30,
		MaxBackups: 5,
	}
}

// Reporter adapts a zap SugaredLogger to the solver's progress interface.
type Reporter struct {
	logger *zap.SugaredLogger
}

// New builds a reporter from cfg. Progress always goes to stderr; when
// cfg.FileName is set it is additionally written to a rotating file.
func New(cfg *Config) (*Reporter, error) {
	level := new(zapcore.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	sink := zapcore.AddSync(os.Stderr)
	if cfg.FileName != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(rotated))
	}

	core := zapcore.NewCore(encoder, sink, level)
	return &Reporter{logger: zap.New(core).Sugar()}, nil
}

// Progressf implements the solver's Reporter interface.
func (r *Reporter) Progressf(format string, args ...interface{}) {
	r.logger.Infof(format, args...)
}

// Sync flushes any buffered log entries.
func (r *Reporter) Sync() error {
	return r.logger.Sync()
}
