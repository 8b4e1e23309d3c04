// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"log/slog"
	"strings"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/fuzzy"
	"github.com/objdesc/objdesc/lib/render"
)

type samplesParams struct {
	outputParams
}

// sampleRow is one sample with its decoded descriptor.
type sampleRow struct {
	Name       string                `json:"name"       yaml:"name"`
	Mode       descriptor.Mode       `json:"mode"       yaml:"mode"`
	Value      string                `json:"value"      yaml:"value"`
	Descriptor descriptor.Descriptor `json:"descriptor" yaml:"descriptor"`
}

// SamplesCommand returns the "samples" command.
func SamplesCommand(env Environment) *cli.Command {
	var params samplesParams

	return &cli.Command{
		Name:    "samples",
		Summary: "List sample payloads",
		Description: `List example payloads for each descriptor shape, with the descriptor
each one decodes to. An optional pattern fuzzy-matches against the
sample name, decoder, and decoded object name.`,
		Usage: "objdesc samples [flags] [pattern]",
		Examples: []cli.Example{
			{
				Description: "Show every sample",
				Command:     "objdesc samples",
			},
			{
				Description: "Show the binary sample's payload only",
				Command:     "objdesc samples bin --format json",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 1 {
				return cli.Validation("expected at most one pattern, got %d arguments", len(args))
			}
			session, err := params.open(env, logger)
			if err != nil {
				return err
			}

			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			rows := sampleRows(pattern)
			logger.Debug("filtered samples", "pattern", pattern, "matches", len(rows))

			if err := writeSamples(session.renderer, rows); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}

// sampleRows decodes every sample and keeps those matching pattern,
// best match first.
func sampleRows(pattern string) []sampleRow {
	samples := descriptor.Samples()
	rows := make([]sampleRow, 0, len(samples))
	for _, sample := range samples {
		report, err := descriptor.Inspect(sample.Value, sample.Mode)
		if err != nil {
			continue
		}
		rows = append(rows, sampleRow{
			Name:       sample.Name,
			Mode:       sample.Mode,
			Value:      sample.Value,
			Descriptor: report.Descriptor,
		})
	}
	return fuzzy.Filter(rows, pattern, func(row sampleRow) string {
		return strings.Join([]string{row.Name, string(row.Mode), row.Descriptor.ObjectName()}, " ")
	})
}

func writeSamples(renderer *render.Renderer, rows []sampleRow) error {
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		fields := render.EntryFields(render.Entry{Descriptor: row.Descriptor})
		table = append(table, []string{row.Name, describeMode(row.Mode), row.Value, fields[0].Value, fields[1].Value, fields[2].Value})
	}
	return renderer.Table([]string{"Name", "Decoder", "Payload", "Object Name", "ID", "Padding"}, table, rows)
}
