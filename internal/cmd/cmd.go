// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/consolelog/pkg/logger"
)

const (
	testCmdUse   = "test"
	testCmdShort = "emit a couple of messages to check the console output"
	testCmdLong  = `Enable logging and emit one info and one debug message.
	The debug message is only visible when the console level is DEBUG.`

	testCmdExample = `# Check the console output with debug messages visible
	consolelog test --log-level DEBUG`

	emitCmdUsageTemplate = "emit [%s] MESSAGE [key=value...]"
	emitCmdShort         = "emit a single message at the given level"
	emitCmdLong          = `Emit a single message at the given level.
	Additional key=value arguments are appended to the message.
	Nothing is printed unless logging is enabled with --enable,
	LOGGER_ENABLED or the configuration file.

	The exception level logs the message as an error with its stack trace.`

	emitCmdExample = `# Emit a warning with some context
	consolelog --enable emit warning "disk almost full" free=10GB`
)

// TestCmd returns the Cobra command running the logging self test.
func TestCmd() *cobra.Command {
	return &cobra.Command{
		Use:     testCmdUse,
		Short:   heredoc.Doc(testCmdShort),
		Long:    heredoc.Doc(testCmdLong),
		Example: heredoc.Doc(testCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			logger.FromContext(cmd.Context()).SelfTest()
		},
	}
}

// EmitCmd returns the Cobra command that emits one message.
func EmitCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     fmt.Sprintf(emitCmdUsageTemplate, strings.Join(levelNames(), "|")),
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc(availableLevels),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			opts.execute(cmd.Context())
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
