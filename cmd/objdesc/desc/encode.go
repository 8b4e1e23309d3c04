// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/input"
	"github.com/objdesc/objdesc/lib/render"
)

type encodeParams struct {
	outputParams
	Form    string `flag:"form,f" desc:"encoding: string, json, cbor, binary (default: from config)"`
	Name    string `flag:"name,n" desc:"object name (required unless --file is given)"`
	ID      string `flag:"id" desc:"numeric object id (optional)"`
	Padding string `flag:"padding,p" desc:"padding text (optional)"`
	File    string `flag:"file" desc:"read the descriptor fields from a JSONC file, or - for stdin"`
}

// encodeResult is the structured output of the encode command.
type encodeResult struct {
	Form  descriptor.EncodeForm  `json:"form"  yaml:"form"`
	Input descriptor.EncodeInput `json:"input" yaml:"input"`
	Value string                 `json:"value" yaml:"value"`
}

// EncodeCommand returns the "encode" command.
func EncodeCommand(env Environment) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode an object descriptor as base64",
		Description: `Encode an object name, optional id, and optional padding as a base64
descriptor.

Forms:
  string   "name:id:padding" (an id-less descriptor is "name:padding")
  json     {"objectName": ..., "id": ..., "padding": ...}
  cbor     deterministic CBOR map with the JSON field names
  binary   four-byte object type, big-endian 32-bit id, padding text

The fields come from flags or from a JSONC file (comments and trailing
commas allowed). In text output only the encoded value is printed, so
the command composes with shell pipelines.`,
		Usage: "objdesc encode [flags]",
		Examples: []cli.Example{
			{
				Description: "Encode a delimited descriptor",
				Command:     "objdesc encode --name TestObject --id 12345 --padding somePadding",
			},
			{
				Description: "Encode a JSON descriptor from a file",
				Command:     "objdesc encode --form json --file user.jsonc",
			},
			{
				Description: "Round-trip through the decoder",
				Command:     "objdesc encode -n User --id 789 | objdesc decode",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runEncode(env, params, logger)
		},
	}
}

func runEncode(env Environment, params encodeParams, logger *slog.Logger) error {
	session, err := params.open(env, logger)
	if err != nil {
		return err
	}

	form := session.config.EncodeForm()
	if params.Form != "" {
		form, err = descriptor.ParseEncodeForm(params.Form)
		if err != nil {
			return cli.Validation("--form: %w", err)
		}
	}

	fields, err := params.encodeInput(env.Stdin)
	if err != nil {
		return err
	}

	value, err := descriptor.EncodeAs(form, fields)
	if err != nil {
		return cli.Validation("%w", err)
	}
	logger.Debug("encoded descriptor", "form", form, "object_name", fields.ObjectName)

	result := encodeResult{Form: form, Input: fields, Value: value}
	if session.renderer.Format() == render.FormatText {
		err = session.renderer.Line(value)
	} else {
		err = session.renderer.Fields(encodeFields(result), result)
	}
	if err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}

// encodeInput collects the descriptor fields from --file or the field
// flags. The two sources are mutually exclusive.
func (p encodeParams) encodeInput(stdin io.Reader) (descriptor.EncodeInput, error) {
	if p.File == "" {
		fields, err := descriptor.ParseFormInput(p.Name, p.ID, p.Padding)
		if errors.Is(err, descriptor.ErrEmptyObjectName) {
			return descriptor.EncodeInput{}, cli.Validation("--name is required: %w", err)
		}
		if err != nil {
			return descriptor.EncodeInput{}, cli.Validation("--id: %w", err)
		}
		return fields, nil
	}

	if p.Name != "" || p.ID != "" || p.Padding != "" {
		return descriptor.EncodeInput{}, cli.Validation("--file cannot be combined with --name, --id, or --padding")
	}

	var (
		fields descriptor.EncodeInput
		err    error
	)
	if p.File == "-" {
		var data []byte
		data, err = io.ReadAll(stdin)
		if err != nil {
			return descriptor.EncodeInput{}, cli.Internal("reading stdin: %w", err)
		}
		fields, err = input.ParseEncodeInput(data)
	} else {
		fields, err = input.ReadEncodeInput(p.File)
	}
	if err != nil {
		return descriptor.EncodeInput{}, cli.Validation("%w", err)
	}
	return fields, nil
}

func encodeFields(result encodeResult) []render.Field {
	id := render.Absent
	if result.Input.ID != nil {
		id = strconv.FormatInt(*result.Input.ID, 10)
	}
	padding := render.Absent
	if result.Input.Padding != nil && *result.Input.Padding != "" {
		padding = *result.Input.Padding
	}
	return []render.Field{
		{Label: "Form", Value: string(result.Form)},
		{Label: "Object Name", Value: result.Input.ObjectName},
		{Label: "ID", Value: id},
		{Label: "Padding", Value: padding},
		{Label: "Encoded", Value: result.Value},
	}
}
