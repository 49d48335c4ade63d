// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultName is the logger name used when Options.Name is empty.
const DefaultName = "consolelog"

// Options configures a Registry.
type Options struct {
	// Name of the logger handle.
	Name string
	// Enabled is the initial state of the gate.
	Enabled bool
	// BaseLevel is the logger threshold used by GetLogger, DEBUG when zero.
	BaseLevel Level
	// ConsoleLevel is the console sink threshold used by GetLogger, INFO when zero.
	ConsoleLevel Level
	// Output of the console sink, os.Stderr when nil.
	Output io.Writer
	// Color controls the coloring of the severity on the console.
	Color hclog.ColorOption
	// TimeFn overrides the clock used for timestamps.
	TimeFn func() time.Time
}

// Registry owns the logger handle, its console sink and the gate deciding
// whether the emit methods have any effect. The logger is created on first use.
type Registry struct {
	opts    Options
	enabled atomic.Bool

	mu      sync.Mutex
	logger  *Logger
	console *ConsoleSink
}

// NewRegistry creates a registry. No logger is built until it is first needed.
func NewRegistry(opts Options) *Registry {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.BaseLevel == 0 {
		opts.BaseLevel = DEBUG
	}
	if opts.ConsoleLevel == 0 {
		opts.ConsoleLevel = INFO
	}

	r := &Registry{opts: opts}
	r.enabled.Store(opts.Enabled)
	return r
}

// Enable opens or closes the gate and returns the resulting state.
func (r *Registry) Enable(flag bool) bool {
	r.enabled.Store(flag)
	return r.enabled.Load()
}

// IsEnabled reports whether the gate is open.
func (r *Registry) IsEnabled() bool {
	return r.enabled.Load()
}

// GetLogger returns the logger, initializing it with the registry thresholds on first call.
func (r *Registry) GetLogger() *Logger {
	return r.GetLoggerWithLevels(r.opts.BaseLevel, r.opts.ConsoleLevel)
}

// GetLoggerWithLevels returns the logger, initializing it with the given
// thresholds on first call. Once the logger exists the levels are ignored:
// use Init or SetConsoleLevel to change them.
func (r *Registry) GetLoggerWithLevels(base, console Level) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.logger == nil {
		r.init(base, console)
	}
	return r.logger
}

// Init (re)initializes the logger with the given thresholds. The same handle is
// kept but all its sinks are replaced by a single new console sink.
func (r *Registry) Init(base, console Level) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.init(base, console)
	return r.logger
}

func (r *Registry) init(base, console Level) {
	if r.logger == nil {
		r.logger = newLogger(r.opts.Name)
	}

	r.logger.resetSinks()
	r.logger.SetLevel(base)

	r.console = NewConsoleSink(ConsoleOptions{
		Output:    r.opts.Output,
		Level:     console,
		Formatter: NewFormatter(),
		Color:     r.opts.Color,
		TimeFn:    r.opts.TimeFn,
	})
	r.logger.RegisterSink(r.console)
}

// SetConsoleLevel updates the console threshold, initializing the logger if
// needed, and returns the resulting threshold.
func (r *Registry) SetConsoleLevel(level Level) Level {
	r.GetLogger()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.console.SetLevel(level)
}

// ConsoleLevel returns the console threshold, initializing the logger if needed.
func (r *Registry) ConsoleLevel() Level {
	r.GetLogger()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.console.Level()
}

// Critical emits at CRITICAL when the gate is open.
func (r *Registry) Critical(msg string, args ...interface{}) {
	if r.IsEnabled() {
		r.GetLogger().Critical(msg, args...)
	}
}

// Error emits at ERROR when the gate is open.
func (r *Registry) Error(msg string, args ...interface{}) {
	if r.IsEnabled() {
		r.GetLogger().Error(msg, args...)
	}
}

// Warning emits at WARNING when the gate is open.
func (r *Registry) Warning(msg string, args ...interface{}) {
	if r.IsEnabled() {
		r.GetLogger().Warning(msg, args...)
	}
}

// Info emits at INFO when the gate is open.
func (r *Registry) Info(msg string, args ...interface{}) {
	if r.IsEnabled() {
		r.GetLogger().Info(msg, args...)
	}
}

// Debug emits at DEBUG when the gate is open.
func (r *Registry) Debug(msg string, args ...interface{}) {
	if r.IsEnabled() {
		r.GetLogger().Debug(msg, args...)
	}
}

// Exception emits err with its stack trace at ERROR when the gate is open.
// It is meant to be called where the error is handled.
func (r *Registry) Exception(err error, args ...interface{}) {
	if r.IsEnabled() {
		r.GetLogger().Exception(err, args...)
	}
}

// SelfTest opens the gate and emits one info and one debug message.
func (r *Registry) SelfTest() {
	r.Enable(true)
	r.Info("testing info msg")
	r.Debug("testing debug msg")
}
