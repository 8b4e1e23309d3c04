// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"log/slog"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/formui"
)

type uiParams struct {
	outputParams
	Mode       string `flag:"mode,m" desc:"initial decoder: text, binary, cbor (default: from config)"`
	Form       string `flag:"form,f" desc:"initial encoding: string, json, cbor, binary (default: from config)"`
	NoAnnotate bool   `flag:"no-annotate" desc:"do not report input base64 padding in the padding field"`
}

// UICommand returns the "ui" command.
func UICommand(env Environment) *cli.Command {
	var params uiParams

	return &cli.Command{
		Name:    "ui",
		Summary: "Decode and encode interactively",
		Description: `Open a terminal form with a decode section (a base64 payload) and an
encode section (object name, id, padding).

Keys:
  tab / shift+tab   move between fields
  enter             decode or encode the focused section
  ctrl+b            toggle the text and binary decoders
  ctrl+f            cycle the encode form
  esc / ctrl+c      quit`,
		Usage: "objdesc ui [flags] [payload]",
		Examples: []cli.Example{
			{
				Description: "Open the form with a payload already filled in",
				Command:     "objdesc ui VGVzdE9iamVjdDoxMjM0NQ==",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 1 {
				return cli.Validation("expected at most one payload, got %d arguments", len(args))
			}
			session, err := params.open(env, logger)
			if err != nil {
				return err
			}

			options := formui.Options{
				Mode:                 session.config.DecodeMode(),
				Form:                 session.config.EncodeForm(),
				AnnotateInputPadding: session.config.Decode.AnnotateInputPadding && !params.NoAnnotate,
			}
			if params.Mode != "" {
				if options.Mode, err = descriptor.ParseMode(params.Mode); err != nil {
					return cli.Validation("--mode: %w", err)
				}
			}
			if params.Form != "" {
				if options.Form, err = descriptor.ParseEncodeForm(params.Form); err != nil {
					return cli.Validation("--form: %w", err)
				}
			}
			if len(args) == 1 {
				options.Base64 = args[0]
			}

			logger.Debug("starting form", "mode", options.Mode, "form", options.Form)
			if err := formui.Run(ctx, options, env.Stdin, env.Stdout); err != nil {
				return cli.Internal("%w", err)
			}
			return nil
		},
	}
}
