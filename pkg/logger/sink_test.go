// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSinkThreshold(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	sink := NewConsoleSink(ConsoleOptions{Output: buffer, Level: WARNING, TimeFn: testTimeFn})
	assert.Equal(t, WARNING, sink.Level())

	sink.Accept("test", hclog.Info, "hidden", severityKey, INFO)
	sink.Accept("test", hclog.Warn, "shown", severityKey, WARNING)
	sink.Accept("test", hclog.Error, "from hclog level")

	assert.Equal(t, []string{
		"[2026-10-19 12:30:45] WARNING: shown",
		"[2026-10-19 12:30:45] ERROR: from hclog level",
	}, outputLines(buffer))

	buffer.Reset()
	assert.Equal(t, DEBUG, sink.SetLevel(DEBUG))
	sink.Accept("test", hclog.Info, "now shown", severityKey, INFO)
	assert.Equal(t, []string{"[2026-10-19 12:30:45] INFO: now shown"}, outputLines(buffer))
}

func TestConsoleSinkColor(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		option        hclog.ColorOption
		expectEscapes bool
	}{
		"color off": {
			option: hclog.ColorOff,
		},
		"auto color on a buffer": {
			option: hclog.AutoColor,
		},
		"forced color": {
			option:        hclog.ForceColor,
			expectEscapes: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := new(bytes.Buffer)
			sink := NewConsoleSink(ConsoleOptions{Output: buffer, Level: DEBUG, Color: tc.option, TimeFn: testTimeFn})
			sink.Accept("test", hclog.Error, "colored", severityKey, CRITICAL)

			if tc.expectEscapes {
				assert.Contains(t, buffer.String(), "\x1b[")
				assert.Contains(t, buffer.String(), "CRITICAL")
				assert.Contains(t, buffer.String(), ": colored\n")
				return
			}
			assert.Equal(t, "[2026-10-19 12:30:45] CRITICAL: colored\n", buffer.String())
		})
	}
}

func TestConsoleSinkDefaults(t *testing.T) {
	t.Parallel()

	sink := NewConsoleSink(ConsoleOptions{})
	assert.Equal(t, os.Stderr, sink.output)
	assert.NotNil(t, sink.timeFn)
	assert.Equal(t, Level(0), sink.Level())
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	rec := newRecord("name", hclog.Error, "msg", []interface{}{
		severityKey, CRITICAL,
		"key", "value",
		stackKey, "\nframe",
		"orphan",
	})

	require.Equal(t, CRITICAL, rec.Level)
	assert.Equal(t, "name", rec.Name)
	assert.Equal(t, "msg", rec.Message)
	assert.Equal(t, "\nframe", rec.Stack)
	assert.Equal(t, []interface{}{"key", "value", "orphan"}, rec.Args)
}
