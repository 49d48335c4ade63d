// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// stackTracer is implemented by the errors of github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Logger is a named channel that filters records by its own threshold and
// forwards them to every attached sink.
type Logger struct {
	name  string
	level atomic.Int64
	log   hclog.InterceptLogger

	mu    sync.Mutex
	sinks []hclog.SinkAdapter
}

// newLogger creates a logger with no sinks. Its own hclog output is switched
// off, so records only surface through registered sinks.
func newLogger(name string) *Logger {
	l := &Logger{
		name: name,
		log: hclog.NewInterceptLogger(&hclog.LoggerOptions{
			Name:   name,
			Output: io.Discard,
			Level:  hclog.Off,
		}),
	}
	l.SetLevel(DEBUG)
	return l
}

// Name returns the logger name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel updates the logger threshold. Sink thresholds are untouched.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int64(level))
}

// RegisterSink attaches sink to the logger. Registering the same sink twice is a no-op.
func (l *Logger) RegisterSink(sink hclog.SinkAdapter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, attached := range l.sinks {
		if attached == sink {
			return
		}
	}
	l.sinks = append(l.sinks, sink)
	l.log.RegisterSink(sink)
}

// DeregisterSink detaches sink from the logger.
func (l *Logger) DeregisterSink(sink hclog.SinkAdapter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, attached := range l.sinks {
		if attached == sink {
			l.sinks = append(l.sinks[:i], l.sinks[i+1:]...)
			l.log.DeregisterSink(sink)
			return
		}
	}
}

// Sinks returns the currently attached sinks.
func (l *Logger) Sinks() []hclog.SinkAdapter {
	l.mu.Lock()
	defer l.mu.Unlock()

	sinks := make([]hclog.SinkAdapter, len(l.sinks))
	copy(sinks, l.sinks)
	return sinks
}

// resetSinks detaches every sink.
func (l *Logger) resetSinks() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, sink := range l.sinks {
		l.log.DeregisterSink(sink)
	}
	l.sinks = nil
}

// Log emits msg and key/value pairs at level.
func (l *Logger) Log(level Level, msg string, args ...interface{}) {
	if !l.Level().Enabled(level) {
		return
	}

	l.log.Log(level.convertedLevel(), msg, append([]interface{}{severityKey, level}, args...)...)
}

// Critical emit a message and key/value pairs at the CRITICAL level.
func (l *Logger) Critical(msg string, args ...interface{}) {
	l.Log(CRITICAL, msg, args...)
}

// Error emit a message and key/value pairs at the ERROR level.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Log(ERROR, msg, args...)
}

// Warning emit a message and key/value pairs at the WARNING level.
func (l *Logger) Warning(msg string, args ...interface{}) {
	l.Log(WARNING, msg, args...)
}

// Info emit a message and key/value pairs at the INFO level.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Log(INFO, msg, args...)
}

// Debug emit a message and key/value pairs at the DEBUG level.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Log(DEBUG, msg, args...)
}

// Exception emits err at the ERROR level with its stack trace. The trace
// carried by err is used when present, otherwise it is captured here.
func (l *Logger) Exception(err error, args ...interface{}) {
	if err == nil || !l.Level().Enabled(ERROR) {
		return
	}

	reserved := []interface{}{severityKey, ERROR, stackKey, stackOf(err)}
	l.log.Log(ERROR.convertedLevel(), err.Error(), append(reserved, args...)...)
}

func stackOf(err error) string {
	var tracer stackTracer
	if !errors.As(err, &tracer) {
		tracer = errors.WithStack(err).(stackTracer)
	}

	return fmt.Sprintf("%+v", tracer.StackTrace())
}
