// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var testTime = time.Date(2026, time.October, 19, 12, 30, 45, 0, time.UTC)

func testTimeFn() time.Time {
	return testTime
}

// newTestRegistry returns a registry writing to buffer with a fixed clock.
func newTestRegistry(tb testing.TB, buffer *bytes.Buffer, enabled bool) *Registry {
	tb.Helper()

	return NewRegistry(Options{
		Name:    "test",
		Enabled: enabled,
		Output:  buffer,
		TimeFn:  testTimeFn,
	})
}

// outputLines splits buffer content into lines, dropping the trailing empty one.
func outputLines(buffer *bytes.Buffer) []string {
	content := strings.TrimSuffix(buffer.String(), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
