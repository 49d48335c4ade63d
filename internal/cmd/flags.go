// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

const (
	separatorFlagName  = "separator"
	separatorFlagUsage = "separator between keys and values in the message arguments"
	defaultSeparator   = "="
)

// flags collects the CLI options of the emit command.
type flags struct {
	separator string
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.separator, separatorFlagName, defaultSeparator, separatorFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments.
func (f *flags) toOptions(args []string) (*options, error) {
	if len(args) < 2 {
		return nil, errNoArguments
	}

	fields, err := parseFields(args[2:], f.separator)
	if err != nil {
		return nil, err
	}

	return &options{
		levelName: strings.ToLower(args[0]),
		message:   args[1],
		fields:    fields,
	}, nil
}
