// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"cmp"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/config"
	"github.com/objdesc/objdesc/lib/render"
)

// Environment is the process state the descriptor commands read and
// write.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Level gates the command logger. Commands set it from the
	// configured log level, or to debug under --verbose. May be nil.
	Level *slog.LevelVar
}

// ProcessEnvironment returns an Environment over the standard streams.
func ProcessEnvironment(level *slog.LevelVar) Environment {
	return Environment{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr, Level: level}
}

// outputParams holds the flags every descriptor command accepts.
type outputParams struct {
	ConfigPath string `flag:"config" desc:"configuration file (default: $OBJDESC_CONFIG)"`
	Format     string `flag:"format,o" desc:"output format: text, json, yaml, markdown, html (default: from config)"`
	Color      string `flag:"color" desc:"color output: auto, always, never (default: from config)"`
	Verbose    bool   `flag:"verbose,v" desc:"log debug details to stderr"`
}

// session is the resolved configuration and renderer for one command run.
type session struct {
	config   *config.Config
	renderer *render.Renderer
}

// open loads configuration, applies flag overrides, and sets the log
// level. Configuration problems are validation errors, except for a
// --config path that does not exist.
func (p *outputParams) open(env Environment, logger *slog.Logger) (*session, error) {
	cfg, err := p.loadConfig()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err)
		}
		return nil, cli.Validation("%w", err)
	}

	if env.Level != nil {
		level := cfg.LogLevel()
		if p.Verbose {
			level = slog.LevelDebug
		}
		env.Level.Set(level)
	}

	format, err := render.ParseFormat(cmp.Or(p.Format, cfg.Output.Format))
	if err != nil {
		return nil, cli.Validation("--format: %w", err)
	}
	color, err := render.ParseColorMode(cmp.Or(p.Color, cfg.Output.Color))
	if err != nil {
		return nil, cli.Validation("--color: %w", err)
	}

	logger.Debug("configuration resolved",
		"config", cmp.Or(p.ConfigPath, os.Getenv(config.EnvironmentVariable)),
		"format", format,
		"color", color,
	)
	return &session{config: cfg, renderer: render.New(env.Stdout, format, color)}, nil
}

func (p *outputParams) loadConfig() (*config.Config, error) {
	if p.ConfigPath != "" {
		return config.LoadFile(p.ConfigPath)
	}
	return config.Load()
}
