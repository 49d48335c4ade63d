// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/consolelog/pkg/logger"
)

func writeConfigFile(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "config.yaml")
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Name:         "consolelog",
		Enabled:      false,
		BaseLevel:    "DEBUG",
		ConsoleLevel: "INFO",
		Color:        "off",
	}, config)
}

func TestLoadEnvironmentVariables(t *testing.T) {
	t.Run("valid variables", func(t *testing.T) {
		t.Setenv("LOGGER_NAME", "bdbc")
		t.Setenv("LOGGER_ENABLED", "true")
		t.Setenv("LOGGER_CONSOLE_LEVEL", "warning")
		t.Setenv("LOGGER_COLOR", "auto")

		config, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "bdbc", config.Name)
		assert.True(t, config.Enabled)
		assert.Equal(t, "warning", config.ConsoleLevel)
		assert.Equal(t, "auto", config.Color)
	})

	t.Run("unparsable boolean", func(t *testing.T) {
		t.Setenv("LOGGER_ENABLED", "maybe")

		_, err := Load("")
		require.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("LOGGER_BASE_LEVEL", "verbose")

		_, err := Load("")
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "base level")
	})
}

func TestLoadFile(t *testing.T) {
	testCases := map[string]struct {
		content       string
		missing       bool
		expected      *Config
		expectedError error
	}{
		"overlay file values": {
			content: "enabled: true\nconsoleLevel: ERROR\n",
			expected: &Config{
				Name:         "consolelog",
				Enabled:      true,
				BaseLevel:    "DEBUG",
				ConsoleLevel: "ERROR",
				Color:        "off",
			},
		},
		"empty file keeps defaults": {
			content: "",
			expected: &Config{
				Name:         "consolelog",
				BaseLevel:    "DEBUG",
				ConsoleLevel: "INFO",
				Color:        "off",
			},
		},
		"unknown field": {
			content:       "rotate: true\n",
			expectedError: ErrParsing,
		},
		"invalid color": {
			content:       "color: rainbow\n",
			expectedError: ErrInvalidConfig,
		},
		"missing file": {
			missing:       true,
			expectedError: syscall.ENOENT,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if !tc.missing {
				path = writeConfigFile(t, tc.content)
			}

			config, err := Load(path)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestRegistryOptions(t *testing.T) {
	t.Parallel()

	config := &Config{
		Name:         "bdbc",
		Enabled:      true,
		BaseLevel:    "INFO",
		ConsoleLevel: "30",
		Color:        "FORCE",
	}

	opts, err := config.RegistryOptions(os.Stdout)
	require.NoError(t, err)
	assert.Equal(t, "bdbc", opts.Name)
	assert.True(t, opts.Enabled)
	assert.Equal(t, logger.INFO, opts.BaseLevel)
	assert.Equal(t, logger.WARNING, opts.ConsoleLevel)
	assert.Equal(t, hclog.ForceColor, opts.Color)
	assert.Equal(t, os.Stdout, opts.Output)

	config.Color = "sometimes"
	_, err = config.RegistryOptions(os.Stdout)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
