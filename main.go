// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/consolelog/internal/cmd"
	"github.com/mia-platform/consolelog/internal/config"
	"github.com/mia-platform/consolelog/internal/info"
	"github.com/mia-platform/consolelog/pkg/logger"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate

	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "consolelog writes gated, leveled log lines to the console"

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	baseLevelFlagName  = "base-level"
	baseLevelFlagUsage = "set the level of the logger itself, sinks never see records below it"

	enableFlagName  = "enable"
	enableFlagUsage = "enable logging, overriding LOGGER_ENABLED and the configuration file"

	configFlagName  = "config"
	configFlagUsage = "path to a YAML configuration file"

	versionCmdName = "version"
)

var (
	allLoggerLevels = func() []string {
		names := make([]string, 0, len(logger.AllLevels))
		for _, level := range logger.AllLevels {
			names = append(names, level.String())
		}
		return names
	}()
	logLevelDefaultValue = logger.INFO.String()
	baseLevelDefault     = logger.DEBUG.String()
	logLevelFlagUsage    = "set the console logging level (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel   string
	baseLevel  string
	enable     bool
	configPath string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, logLevelDefaultValue, heredoc.Doc(logLevelFlagUsage))
	flags.StringVar(&f.baseLevel, baseLevelFlagName, baseLevelDefault, baseLevelFlagUsage)
	flags.BoolVar(&f.enable, enableFlagName, false, enableFlagUsage)
	flags.StringVar(&f.configPath, configFlagName, "", configFlagUsage)
}

// registry builds the logging registry from the configuration, with the
// explicitly set flags taking precedence.
func (f *rootFlags) registry(cmd *cobra.Command) (*logger.Registry, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(logLevelFlagName) {
		cfg.ConsoleLevel = f.logLevel
	}
	if flags.Changed(baseLevelFlagName) {
		cfg.BaseLevel = f.baseLevel
	}
	if flags.Changed(enableFlagName) {
		cfg.Enabled = f.enable
	}

	opts, err := cfg.RegistryOptions(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return logger.NewRegistry(opts), nil
}

func main() {
	cmd := rootCmd()

	exitCode := 0
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := flag.registry(cmd)
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}

			cmd.SetContext(logger.WithContext(cmd.Context(), registry))
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.TestCmd(),
		internalcmd.EmitCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
