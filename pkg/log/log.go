// Copyright 2025 Netsock Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides logging for the whole code base. It is a thin wrapper
// around go.uber.org/zap with a key-value based API.
package log

import (
	"fmt"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/netsock/netsock/pkg/private/serrors"
)

// Config is the configuration for the logger.
type Config struct {
	// Console is the configuration for the console logging.
	Console ConsoleConfig `toml:"console,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values.
func (c *Config) InitDefaults() {
	c.Console.InitDefaults()
}

// Validate validates that the config is valid.
func (c *Config) Validate() error {
	return c.Console.validate()
}

// ConsoleConfig is the config for the console logger.
type ConsoleConfig struct {
	// Level of console logging (defaults to info).
	Level string `toml:"level,omitempty"`
	// Format of the console logging, either "human" or "json" (defaults to
	// human).
	Format string `toml:"format,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values.
func (c *ConsoleConfig) InitDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "human"
	}
}

func (c *ConsoleConfig) validate() error {
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return serrors.Wrap("parsing log level", err, "level", c.Level)
	}
	if c.Format != "human" && c.Format != "json" {
		return serrors.New("format not supported", "format", c.Format)
	}
	return nil
}

var root = zap.NewNop()

// Setup configures the logging library with the given config.
func Setup(cfg Config) error {
	cfg.InitDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Console.Level))
	if err != nil {
		return serrors.Wrap("parsing log level", err, "level", cfg.Console.Level)
	}
	encoding := "console"
	if cfg.Console.Format == "json" {
		encoding = "json"
	}
	zCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig(encoding),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	logger, err := zCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return serrors.Wrap("creating logger", err)
	}
	root = logger
	return nil
}

func encoderConfig(encoding string) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return ec
}

// Flush writes the logs to the underlying buffer.
func Flush() {
	_ = root.Sync()
}

// HandlePanic catches panics and logs them.
func HandlePanic() {
	if msg := recover(); msg != nil {
		root.Error("Panic", zap.Any("msg", msg),
			zap.String("stack", string(debug.Stack())))
		Flush()
		panic(msg)
	}
}

// Debug logs at debug level.
func Debug(msg string, ctx ...interface{}) {
	if enabled(DebugLevel) {
		root.Debug(msg, convertCtx(ctx)...)
	}
}

// Info logs at info level.
func Info(msg string, ctx ...interface{}) {
	if enabled(InfoLevel) {
		root.Info(msg, convertCtx(ctx)...)
	}
}

// Error logs at error level.
func Error(msg string, ctx ...interface{}) {
	if enabled(ErrorLevel) {
		root.Error(msg, convertCtx(ctx)...)
	}
}

// Level is the log level.
type Level = zapcore.Level

// The supported levels.
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	ErrorLevel = zapcore.ErrorLevel
)

func enabled(lvl Level) bool {
	return root.Core().Enabled(lvl)
}

// Logger describes the logger interface.
type Logger interface {
	// New returns a Logger that has the given context attached to every
	// entry it logs.
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Enabled(lvl Level) bool
}

type logger struct {
	logger *zap.Logger
}

// Root returns the root logger. It never returns nil.
func Root() Logger {
	return &logger{logger: root}
}

// New creates a logger with the given context, derived from the root logger.
func New(ctx ...interface{}) Logger {
	return Root().New(ctx...)
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	if l.Enabled(DebugLevel) {
		l.logger.Debug(msg, convertCtx(ctx)...)
	}
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	if l.Enabled(InfoLevel) {
		l.logger.Info(msg, convertCtx(ctx)...)
	}
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	if l.Enabled(ErrorLevel) {
		l.logger.Error(msg, convertCtx(ctx)...)
	}
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(lvl)
}

func convertCtx(ctx []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprint(ctx[i]), ctx[i+1]))
	}
	return fields
}

// Discard sets the logger up to discard all log entries. This is useful for
// testing.
func Discard() {
	root = zap.NewNop()
}

// discardLogger implements the Logger interface and discards all messages.
type discardLogger struct{}

// DiscardLogger returns a logger that drops everything it is given.
func DiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) New(ctx ...interface{}) Logger          { return discardLogger{} }
func (discardLogger) Debug(msg string, ctx ...interface{})   {}
func (discardLogger) Info(msg string, ctx ...interface{})    {}
func (discardLogger) Error(msg string, ctx ...interface{})   {}
func (discardLogger) Enabled(lvl Level) bool                 { return false }
