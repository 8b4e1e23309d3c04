// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"log/slog"
	"strings"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/render"
)

type paddingParams struct {
	outputParams
	payloadParams
}

// paddingResult is the structured output of the padding command.
type paddingResult struct {
	Input      string `json:"input"      yaml:"input"`
	Padding    string `json:"padding"    yaml:"padding"`
	HasPadding bool   `json:"hasPadding" yaml:"hasPadding"`
}

// PaddingCommand returns the "padding" command.
func PaddingCommand(env Environment) *cli.Command {
	var params paddingParams

	return &cli.Command{
		Name:    "padding",
		Summary: "Show the base64 padding of payloads",
		Description: `Report the run of trailing '=' characters on each base64 payload. This
is the "input padding" the decoder annotates when a descriptor has no
padding field of its own.`,
		Usage: "objdesc padding [flags] [payload... | file]",
		Examples: []cli.Example{
			{
				Description: "Check a payload's padding",
				Command:     "objdesc padding VGVzdA==",
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

			results := make([]paddingResult, 0, len(payloads))
			for _, payload := range payloads {
				trimmed := strings.TrimSpace(payload)
				if trimmed == "" {
					continue
				}
				padding, ok := descriptor.DetectPadding(trimmed)
				results = append(results, paddingResult{Input: trimmed, Padding: padding, HasPadding: ok})
			}
			if len(results) == 0 {
				return cli.Validation("nothing to inspect: %w", descriptor.ErrEmptyInput)
			}

			if err := writePadding(session.renderer, results); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}

func writePadding(renderer *render.Renderer, results []paddingResult) error {
	if len(results) == 1 {
		result := results[0]
		return renderer.Fields([]render.Field{
			{Label: "Input", Value: result.Input},
			{Label: "Padding", Value: paddingCell(result)},
		}, result)
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{result.Input, paddingCell(result)})
	}
	return renderer.Table([]string{"Input", "Padding"}, rows, results)
}

func paddingCell(result paddingResult) string {
	if !result.HasPadding {
		return render.Absent
	}
	return result.Padding
}
