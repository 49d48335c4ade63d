// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger is a gated console logging wrapper built on hclog.
//
// A Registry lazily creates a single named Logger with one console sink that
// writes lines like
//
//	[2006-01-02 15:04:05] INFO: message key=value
//
// Nothing is emitted until the gate is opened with Enable(true). The package
// level functions operate on the Default registry; a Registry can also be
// passed around explicitly or through a context with WithContext.
package logger
