// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		record   Record
		expected string
	}{
		"plain message": {
			record:   Record{Level: INFO, Message: "hello"},
			expected: "[2026-10-19 12:30:45] INFO: hello\n",
		},
		"key value pairs": {
			record:   Record{Level: WARNING, Message: "disk", Args: []interface{}{"free", 10, "unit", "GB"}},
			expected: "[2026-10-19 12:30:45] WARNING: disk free=10 unit=GB\n",
		},
		"values with spaces are quoted": {
			record:   Record{Level: ERROR, Message: "failed", Args: []interface{}{"reason", "no space left", "empty", ""}},
			expected: "[2026-10-19 12:30:45] ERROR: failed reason=\"no space left\" empty=\"\"\n",
		},
		"error and stringer values": {
			record:   Record{Level: DEBUG, Message: "values", Args: []interface{}{"err", errors.New("boom"), "level", CRITICAL, "nil", nil}},
			expected: "[2026-10-19 12:30:45] DEBUG: values err=boom level=CRITICAL nil=<nil>\n",
		},
		"dangling value": {
			record:   Record{Level: INFO, Message: "odd", Args: []interface{}{"key", "value", "orphan"}},
			expected: "[2026-10-19 12:30:45] INFO: odd key=value EXTRA_VALUE_AT_END=orphan\n",
		},
		"stack trace after the message": {
			record:   Record{Level: ERROR, Message: "boom", Stack: "\nmain.main\n\t/src/main.go:10"},
			expected: "[2026-10-19 12:30:45] ERROR: boom\nmain.main\n\t/src/main.go:10\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tc.record.Time = testTime
			assert.Equal(t, tc.expected, NewFormatter().Format(tc.record))
		})
	}
}

func TestFormatterDoesNotMutateArgs(t *testing.T) {
	t.Parallel()

	args := []interface{}{"key", "value", "orphan", "unused"}
	record := Record{Time: testTime, Level: INFO, Message: "odd", Args: args[:3]}

	Formatter{}.Format(record)
	assert.Equal(t, "unused", args[3])
}

func TestFormatterTimestampShape(t *testing.T) {
	t.Parallel()

	line := Formatter{}.Format(Record{Level: INFO, Message: "hello"})
	assert.Regexp(t, regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] INFO: hello\n$`), line)
}
