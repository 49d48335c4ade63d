// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

// recordKey marks the arguments the Logger reserves for itself when handing
// records to the hclog sinks. Its own type keeps caller keys from colliding.
type recordKey string

const (
	severityKey recordKey = "severity"
	stackKey    recordKey = "stack"
)

var levelColors = map[Level]*color.Color{
	DEBUG:    color.New(color.FgHiWhite),
	INFO:     color.New(color.FgHiBlue),
	WARNING:  color.New(color.FgHiYellow),
	ERROR:    color.New(color.FgHiRed),
	CRITICAL: color.New(color.FgRed, color.Bold),
}

func init() {
	// color is decided per sink, not by the global stdout detection of fatih/color
	for _, c := range levelColors {
		c.EnableColor()
	}
}

// ConsoleOptions configures a ConsoleSink.
type ConsoleOptions struct {
	// Output is where lines are written, os.Stderr when nil.
	Output io.Writer
	// Level is the minimum severity written by the sink.
	Level Level
	// Formatter renders each record.
	Formatter Formatter
	// Color controls the coloring of the severity token.
	Color hclog.ColorOption
	// TimeFn returns the timestamp of each record, time.Now when nil.
	TimeFn func() time.Time
}

// Make sure that ConsoleSink can be registered on hclog intercept loggers.
var _ hclog.SinkAdapter = &ConsoleSink{}

// ConsoleSink writes formatted records to a stream, with its own threshold.
type ConsoleSink struct {
	mu        sync.Mutex
	output    io.Writer
	level     atomic.Int64
	formatter Formatter
	colored   bool
	timeFn    func() time.Time
}

// NewConsoleSink creates a sink writing to opts.Output.
func NewConsoleSink(opts ConsoleOptions) *ConsoleSink {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	timeFn := opts.TimeFn
	if timeFn == nil {
		timeFn = time.Now
	}

	sink := &ConsoleSink{
		output:    output,
		formatter: opts.Formatter,
		colored:   useColor(opts.Color, output),
		timeFn:    timeFn,
	}
	sink.SetLevel(opts.Level)
	return sink
}

// Level returns the sink threshold.
func (s *ConsoleSink) Level() Level {
	return Level(s.level.Load())
}

// SetLevel updates the sink threshold and returns the resulting value.
func (s *ConsoleSink) SetLevel(level Level) Level {
	s.level.Store(int64(level))
	return s.Level()
}

// Accept implements hclog.SinkAdapter.
func (s *ConsoleSink) Accept(name string, level hclog.Level, msg string, args ...interface{}) {
	rec := newRecord(name, level, msg, args)
	if !s.Level().Enabled(rec.Level) {
		return
	}
	rec.Time = s.timeFn()

	severity := rec.Level.String()
	if s.colored {
		if c, ok := levelColors[rec.Level]; ok {
			severity = c.Sprint(severity)
		}
	}
	line := s.formatter.format(rec, severity)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.output, line)
}

// newRecord rebuilds a Record from what an hclog sink receives, pulling out
// the reserved severity and stack arguments.
func newRecord(name string, level hclog.Level, msg string, args []interface{}) Record {
	rec := Record{
		Name:    name,
		Level:   levelFromHclog(level),
		Message: msg,
	}

	for i := 0; i+1 < len(args); i += 2 {
		key, reserved := args[i].(recordKey)
		if !reserved {
			rec.Args = append(rec.Args, args[i], args[i+1])
			continue
		}

		switch key {
		case severityKey:
			if severity, ok := args[i+1].(Level); ok {
				rec.Level = severity
			}
		case stackKey:
			if stack, ok := args[i+1].(string); ok {
				rec.Stack = stack
			}
		}
	}
	if len(args)%2 != 0 {
		rec.Args = append(rec.Args, args[len(args)-1])
	}

	return rec
}

func useColor(option hclog.ColorOption, output io.Writer) bool {
	switch option {
	case hclog.ForceColor:
		return true
	case hclog.AutoColor:
		file, ok := output.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	default:
		return false
	}
}
