// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the logging configuration from the environment and from YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/mia-platform/consolelog/pkg/logger"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
	// ErrInvalidConfig reports values that cannot be turned into logger options.
	ErrInvalidConfig = errors.New("invalid configuration")
)

var colorOptions = map[string]hclog.ColorOption{
	"off":   hclog.ColorOff,
	"auto":  hclog.AutoColor,
	"force": hclog.ForceColor,
}

// Config holds the logging configuration.
type Config struct {
	Name         string `env:"LOGGER_NAME" envDefault:"consolelog" yaml:"name"`
	Enabled      bool   `env:"LOGGER_ENABLED" envDefault:"false" yaml:"enabled"`
	BaseLevel    string `env:"LOGGER_BASE_LEVEL" envDefault:"DEBUG" yaml:"baseLevel"`
	ConsoleLevel string `env:"LOGGER_CONSOLE_LEVEL" envDefault:"INFO" yaml:"consoleLevel"`
	Color        string `env:"LOGGER_COLOR" envDefault:"off" yaml:"color"`
}

// Load reads the configuration from the environment, then overlays the values
// set in the YAML file at path, if any.
func Load(path string) (*Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if path != "" {
		if err := config.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) overlayFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	return nil
}

func (c *Config) validate() error {
	configErrors := make([]string, 0)

	if _, err := logger.ParseLevel(c.BaseLevel); err != nil {
		configErrors = append(configErrors, "base level: "+err.Error())
	}
	if _, err := logger.ParseLevel(c.ConsoleLevel); err != nil {
		configErrors = append(configErrors, "console level: "+err.Error())
	}
	if _, ok := colorOptions[strings.ToLower(c.Color)]; !ok {
		configErrors = append(configErrors, fmt.Sprintf("color %q is not one of off, auto, force", c.Color))
	}

	if len(configErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(configErrors, ", "))
	}
	return nil
}

// RegistryOptions converts the configuration into logger options writing to output.
func (c *Config) RegistryOptions(output io.Writer) (logger.Options, error) {
	if err := c.validate(); err != nil {
		return logger.Options{}, err
	}

	baseLevel, _ := logger.ParseLevel(c.BaseLevel)
	consoleLevel, _ := logger.ParseLevel(c.ConsoleLevel)
	return logger.Options{
		Name:         c.Name,
		Enabled:      c.Enabled,
		BaseLevel:    baseLevel,
		ConsoleLevel: consoleLevel,
		Output:       output,
		Color:        colorOptions[strings.ToLower(c.Color)],
	}, nil
}
