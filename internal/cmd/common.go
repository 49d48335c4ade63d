// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

const exceptionLevelName = "exception"

var (
	errNoArguments          = errors.New("no level or message provided")
	errInvalidLevelArgument = errors.New("invalid level provided")
	errInvalidField         = errors.New("invalid message argument")

	// availableLevels holds the levels accepted by the emit command and their description
	// for command completion and help messages.
	availableLevels = map[string]string{
		"critical":         "the program may not be able to continue",
		"error":            "an operation failed",
		"warning":          "something unexpected happened",
		"info":             "confirmation that things work as expected",
		"debug":            "detailed diagnostic information",
		exceptionLevelName: "an error with its stack trace",
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidLevelArgument):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

func levelNames() []string {
	return slices.Sorted(maps.Keys(availableLevels))
}

func validArgsFunc(levels map[string]string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var comps []string
		if len(args) == 0 {
			for name, description := range levels {
				if strings.HasPrefix(name, toComplete) {
					comps = append(comps, cobra.CompletionWithDesc(name, description))
				}
			}
		}

		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}

// parseFields turns key<separator>value arguments into key/value pairs.
func parseFields(args []string, separator string) ([]interface{}, error) {
	fields := make([]interface{}, 0, len(args)*2)
	for _, arg := range args {
		key, value, found := strings.Cut(arg, separator)
		if !found || key == "" {
			return nil, fmt.Errorf("%w %q: expected key%svalue", errInvalidField, arg, separator)
		}
		fields = append(fields, key, value)
	}

	return fields, nil
}
