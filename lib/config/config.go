// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/objdesc/objdesc/lib/descriptor"
)

// EnvironmentVariable names the config file when --config is not given.
const EnvironmentVariable = "OBJDESC_CONFIG"

// Config is the objdesc configuration.
type Config struct {
	// Output controls how results are printed.
	Output OutputConfig `yaml:"output"`

	// Decode sets defaults for the decode commands.
	Decode DecodeConfig `yaml:"decode"`

	// Encode sets defaults for the encode command.
	Encode EncodeConfig `yaml:"encode"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is the output format: text, json, yaml, markdown, or html.
	// Default: text
	Format string `yaml:"format"`

	// Color is the color mode: auto, always, or never.
	// Default: auto
	Color string `yaml:"color"`
}

// DecodeConfig sets decode defaults.
type DecodeConfig struct {
	// Mode is the decoder: text, binary, or cbor.
	// Default: text
	Mode string `yaml:"mode"`

	// AnnotateInputPadding shows the input's base64 padding in the
	// padding field when the descriptor has none.
	// Default: true
	AnnotateInputPadding bool `yaml:"annotate_input_padding"`

	// Strict makes decode exit non-zero for error-bearing descriptors.
	// Default: false
	Strict bool `yaml:"strict"`
}

// EncodeConfig sets encode defaults.
type EncodeConfig struct {
	// Form is the encoding: string, json, cbor, or binary.
	// Default: string
	Form string `yaml:"form"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	// Default: warn
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Decode: DecodeConfig{
			Mode:                 string(descriptor.ModeText),
			AnnotateInputPadding: true,
		},
		Encode: EncodeConfig{
			Form: string(descriptor.FormString),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads the file named by OBJDESC_CONFIG, or returns [Default]
// when the variable is unset or empty.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, merged over [Default], and
// validates it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration merged over [Default], expands
// variables, and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} in string values.
func (c *Config) expandVariables() {
	c.Output.Format = expandVars(c.Output.Format)
	c.Output.Color = expandVars(c.Output.Color)
	c.Decode.Mode = expandVars(c.Decode.Mode)
	c.Encode.Form = expandVars(c.Encode.Form)
	c.Log.Level = expandVars(c.Log.Level)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

var (
	outputFormats = []string{"text", "json", "yaml", "markdown", "html"}
	colorModes    = []string{"auto", "always", "never"}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// Validate checks the configuration for errors. Every invalid value is
// reported.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v, got %q", outputFormats, c.Output.Format))
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v, got %q", colorModes, c.Output.Color))
	}
	if _, err := descriptor.ParseMode(c.Decode.Mode); err != nil {
		errs = append(errs, fmt.Errorf("decode.mode: %w", err))
	}
	if _, err := descriptor.ParseEncodeForm(c.Encode.Form); err != nil {
		errs = append(errs, fmt.Errorf("encode.form: %w", err))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v, got %q", logLevels, c.Log.Level))
	}

	return errors.Join(errs...)
}

// LogLevel returns the configured slog level. An invalid level (which
// Validate rejects) reads as warn.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// DecodeMode returns Decode.Mode parsed. It is only meaningful on a
// validated config.
func (c *Config) DecodeMode() descriptor.Mode {
	mode, err := descriptor.ParseMode(c.Decode.Mode)
	if err != nil {
		return descriptor.ModeText
	}
	return mode
}

// EncodeForm returns Encode.Form parsed. It is only meaningful on a
// validated config.
func (c *Config) EncodeForm() descriptor.EncodeForm {
	form, err := descriptor.ParseEncodeForm(c.Encode.Form)
	if err != nil {
		return descriptor.FormString
	}
	return form
}
