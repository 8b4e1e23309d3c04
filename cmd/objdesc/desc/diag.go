// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"log/slog"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/codec"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/render"
)

type diagParams struct {
	outputParams
	payloadParams
}

// diagResult is the structured output of the diag command.
type diagResult struct {
	Input string   `json:"input" yaml:"input"`
	Items []string `json:"items" yaml:"items"`
}

// DiagCommand returns the "diag" command.
func DiagCommand(env Environment) *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Show CBOR payloads in diagnostic notation",
		Description: `Base64-decode each payload and print the CBOR inside it in RFC 8949
diagnostic notation, one line per data item. A payload holding a CBOR
sequence prints every item. Useful for inspecting "cbor" form
descriptors by eye.`,
		Usage: "objdesc diag [flags] [payload... | file]",
		Examples: []cli.Example{
			{
				Description: "Inspect a CBOR descriptor",
				Command:     "objdesc encode --form cbor --name User --id 789 | objdesc diag",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			session, err := params.open(env, logger)
			if err != nil {
				return err
			}
			payloads, err := params.readPayloads(args, env.Stdin)
			if err != nil {
				return err
			}

			results := make([]diagResult, 0, len(payloads))
			for _, payload := range payloads {
				if payload == "" {
					continue
				}
				data, err := descriptor.DecodeBase64(payload)
				if err != nil {
					return cli.Validation("%w", err)
				}
				items, err := codec.Diagnose(data)
				if err != nil {
					return cli.Validation("%w", err)
				}
				logger.Debug("diagnosed payload", "bytes", len(data), "items", len(items))
				results = append(results, diagResult{Input: payload, Items: items})
			}
			if len(results) == 0 {
				return cli.Validation("nothing to diagnose: %w", descriptor.ErrEmptyInput)
			}

			if err := writeDiag(session.renderer, results); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}

func writeDiag(renderer *render.Renderer, results []diagResult) error {
	switch renderer.Format() {
	case render.FormatText:
		for _, result := range results {
			for _, item := range result.Items {
				if err := renderer.Line(item); err != nil {
					return err
				}
			}
		}
		return nil
	case render.FormatJSON, render.FormatYAML:
		if len(results) == 1 {
			return renderer.Value(results[0])
		}
		return renderer.Value(results)
	default:
		var rows [][]string
		for _, result := range results {
			for _, item := range result.Items {
				rows = append(rows, []string{result.Input, item})
			}
		}
		return renderer.Table([]string{"Input", "Item"}, rows, results)
	}
}
