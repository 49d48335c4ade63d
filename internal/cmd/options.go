// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/mia-platform/consolelog/pkg/logger"
)

// options configures a single emit run.
type options struct {
	levelName string
	message   string
	fields    []interface{}
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if o.message == "" {
		return errNoArguments
	}

	if _, ok := availableLevels[o.levelName]; !ok {
		return fmt.Errorf("%w: %s", errInvalidLevelArgument, o.levelName)
	}

	return nil
}

// execute emits the message through the registry found in ctx.
func (o *options) execute(ctx context.Context) {
	registry := logger.FromContext(ctx)

	switch o.levelName {
	case exceptionLevelName:
		registry.Exception(errors.New(o.message), o.fields...)
	case "critical":
		registry.Critical(o.message, o.fields...)
	case "error":
		registry.Error(o.message, o.fields...)
	case "warning":
		registry.Warning(o.message, o.fields...)
	case "info":
		registry.Info(o.message, o.fields...)
	case "debug":
		registry.Debug(o.message, o.fields...)
	}
}
