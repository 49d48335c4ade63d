// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"sync/atomic"
)

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry(Options{}))
}

// Default returns the registry behind the package level functions.
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault replaces the default registry and returns the previous one.
func SetDefault(r *Registry) *Registry {
	return defaultRegistry.Swap(r)
}

func Enable(flag bool) bool { return Default().Enable(flag) }

func IsEnabled() bool { return Default().IsEnabled() }

func GetLogger() *Logger { return Default().GetLogger() }

func GetLoggerWithLevels(base, console Level) *Logger {
	return Default().GetLoggerWithLevels(base, console)
}

func SetConsoleLevel(level Level) Level { return Default().SetConsoleLevel(level) }

func Critical(msg string, args ...interface{}) { Default().Critical(msg, args...) }

func Error(msg string, args ...interface{}) { Default().Error(msg, args...) }

func Warning(msg string, args ...interface{}) { Default().Warning(msg, args...) }

func Info(msg string, args ...interface{}) { Default().Info(msg, args...) }

func Debug(msg string, args ...interface{}) { Default().Debug(msg, args...) }

func Exception(err error, args ...interface{}) { Default().Exception(err, args...) }

// SelfTest runs Registry.SelfTest on the default registry.
func SelfTest() { Default().SelfTest() }
