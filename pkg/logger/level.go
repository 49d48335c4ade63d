// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ErrInvalidLevel is returned when a string cannot be parsed into a Level.
var ErrInvalidLevel = errors.New("invalid logging level")

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	DEBUG    Level = 10
	INFO     Level = 20
	WARNING  Level = 30
	ERROR    Level = 40
	CRITICAL Level = 50
)

const maxLevel = CRITICAL

// AllLevels lists the named levels in ascending order of severity.
var AllLevels = []Level{DEBUG, INFO, WARNING, ERROR, CRITICAL}

// ParseLevel converts a level name or a numeric value between 0 and 50 into a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARNING", "WARN":
		return WARNING, nil
	case "ERROR":
		return ERROR, nil
	case "CRITICAL", "FATAL":
		return CRITICAL, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil || value < 0 || Level(value) > maxLevel {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	return Level(value), nil
}

// LevelFromString is like ParseLevel but returns INFO for unknown values.
func LevelFromString(level string) Level {
	parsed, err := ParseLevel(level)
	if err != nil {
		return INFO
	}
	return parsed
}

// Enabled reports whether a record at level passes the threshold l.
func (l Level) Enabled(level Level) bool {
	return level >= l
}

// convertedLevel maps the level on the closest hclog level. CRITICAL has no
// hclog counterpart and collapses on Error.
func (l Level) convertedLevel() hclog.Level {
	switch {
	case l < INFO:
		return hclog.Debug
	case l < WARNING:
		return hclog.Info
	case l < ERROR:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// levelFromHclog is the inverse of convertedLevel, used for records coming
// from sinks that did not receive an explicit severity.
func levelFromHclog(level hclog.Level) Level {
	switch level {
	case hclog.Trace, hclog.Debug:
		return DEBUG
	case hclog.Info, hclog.NoLevel:
		return INFO
	case hclog.Warn:
		return WARNING
	default:
		return ERROR
	}
}
