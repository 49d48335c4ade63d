// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimeFormat renders timestamps as YYYY-MM-DD HH:MM:SS.
	DefaultTimeFormat = "2006-01-02 15:04:05"

	missingKey = "EXTRA_VALUE_AT_END"
)

// Record is a single log entry as seen by a sink.
type Record struct {
	Time    time.Time
	Name    string
	Level   Level
	Message string
	Args    []interface{}
	Stack   string
}

// Formatter renders records as "[<timestamp>] <SEVERITY>: <message>".
// The zero value uses DefaultTimeFormat.
type Formatter struct {
	TimeFormat string
}

// NewFormatter returns the formatter used by console sinks.
func NewFormatter() Formatter {
	return Formatter{TimeFormat: DefaultTimeFormat}
}

// Format renders rec as a single newline terminated line, followed by the
// stack trace lines when the record carries one.
func (f Formatter) Format(rec Record) string {
	return f.format(rec, rec.Level.String())
}

func (f Formatter) format(rec Record, severity string) string {
	timeFormat := f.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	var builder strings.Builder
	builder.WriteByte('[')
	builder.WriteString(rec.Time.Format(timeFormat))
	builder.WriteString("] ")
	builder.WriteString(severity)
	builder.WriteString(": ")
	builder.WriteString(rec.Message)
	writeArgs(&builder, rec.Args)
	builder.WriteString(rec.Stack)
	builder.WriteByte('\n')

	return builder.String()
}

// writeArgs appends key/value pairs the way hclog renders them in its text format.
func writeArgs(builder *strings.Builder, args []interface{}) {
	if len(args)%2 != 0 {
		extra := args[len(args)-1]
		args = append(args[:len(args)-1:len(args)-1], missingKey, extra)
	}

	for i := 0; i < len(args); i += 2 {
		builder.WriteByte(' ')
		builder.WriteString(fmt.Sprint(args[i]))
		builder.WriteByte('=')
		builder.WriteString(formatValue(args[i+1]))
	}
}

func formatValue(value interface{}) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		text = v
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		return fmt.Sprintf("%v", v)
	}

	if text == "" || strings.ContainsAny(text, " \t\n\r\"=") {
		return strconv.Quote(text)
	}
	return text
}
