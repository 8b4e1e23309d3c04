// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/fingerprint"
	"github.com/objdesc/objdesc/lib/render"
)

type decodeParams struct {
	outputParams
	payloadParams
	Mode        string `flag:"mode,m" desc:"decoder: text, binary, cbor (default: from config)"`
	Strict      bool   `flag:"strict" desc:"exit 1 when any payload fails to decode"`
	Fingerprint bool   `flag:"fingerprint" desc:"include the descriptor fingerprint"`
	NoAnnotate  bool   `flag:"no-annotate" desc:"do not report input base64 padding in the padding field"`
}

// DecodeCommand returns the "decode" command.
func DecodeCommand(env Environment) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode base64 object descriptors",
		Description: `Decode one or more base64 object descriptors.

The text decoder reads a JSON object ({"objectName": ..., "id": ...,
"padding": ...}) or the colon-delimited "name:id:padding" form, falling
back to the raw text as the object name. The binary decoder reads a
four-byte object type, a big-endian 32-bit id, and optional padding
text. The cbor decoder reads a CBOR map with the JSON field names.

Decoding never fails outright: invalid input produces a descriptor whose
object name describes the error. Use --strict to turn those into a
non-zero exit status.

Payloads are taken from the arguments, from a file named by the last
argument, or from stdin. Files may be zstd or LZ4 compressed.`,
		Usage: "objdesc decode [flags] [payload... | file]",
		Examples: []cli.Example{
			{
				Description: "Decode a delimited descriptor",
				Command:     "objdesc decode VGVzdE9iamVjdDoxMjM0NTpzb21lUGFkZGluZw==",
			},
			{
				Description: "Decode a file of payloads, one per line, as JSON",
				Command:     "objdesc decode --lines --format json payloads.txt",
			},
			{
				Description: "Decode raw binary bytes given in hex",
				Command:     "objdesc decode --mode binary --hex 5459504530303031",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runDecode(env, params, args, "", logger)
		},
	}
}

// BinaryCommand returns the "binary" command, decode with the binary
// decoder fixed.
func BinaryCommand(env Environment) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "binary",
		Summary: "Decode binary-layout descriptors",
		Description: `Decode base64 payloads with the binary layout: a four-byte object
type, a big-endian signed 32-bit id, and optional UTF-8 padding text.
Equivalent to "objdesc decode --mode binary".`,
		Usage: "objdesc binary [flags] [payload... | file]",
		Examples: []cli.Example{
			{
				Description: "Decode the binary sample",
				Command:     "objdesc binary VFlQRTAwMDE=",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runDecode(env, params, args, descriptor.ModeBinary, logger)
		},
	}
}

func runDecode(env Environment, params decodeParams, args []string, fixedMode descriptor.Mode, logger *slog.Logger) error {
	session, err := params.open(env, logger)
	if err != nil {
		return err
	}

	mode := fixedMode
	if mode == "" {
		mode = session.config.DecodeMode()
		if params.Mode != "" {
			mode, err = descriptor.ParseMode(params.Mode)
			if err != nil {
				return cli.Validation("--mode: %w", err)
			}
		}
	}
	annotate := session.config.Decode.AnnotateInputPadding && !params.NoAnnotate
	strict := session.config.Decode.Strict || params.Strict

	payloads, err := params.readPayloads(args, env.Stdin)
	if err != nil {
		return err
	}

	entries := make([]render.Entry, 0, len(payloads))
	failures := 0
	for _, payload := range payloads {
		entry, err := decodeEntry(payload, mode, annotate, params.Fingerprint)
		if err != nil {
			return err
		}
		if entry.Format.IsError() {
			failures++
			logger.Warn("payload did not decode", "input", entry.Input, "error", entry.Descriptor.ObjectName())
		}
		logger.Debug("decoded payload", "mode", mode, "format", entry.Format, "fingerprint", entry.Fingerprint)
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return cli.Validation("nothing to decode: %w", descriptor.ErrEmptyInput)
	}

	if err := session.renderer.Entries(entries); err != nil {
		return cli.Internal("writing output: %w", err)
	}

	if strict && failures > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// decodeEntry inspects one payload and shapes it for output.
func decodeEntry(payload string, mode descriptor.Mode, annotate, withFingerprint bool) (render.Entry, error) {
	report, err := descriptor.Inspect(payload, mode)
	if err != nil {
		if errors.Is(err, descriptor.ErrEmptyInput) {
			return render.Entry{}, cli.Validation("nothing to decode: %w", err)
		}
		return render.Entry{}, cli.Validation("%w", err)
	}

	entry := render.Entry{
		Input:        report.Input,
		Mode:         report.Mode,
		Format:       report.Format,
		Descriptor:   report.Descriptor,
		InputPadding: report.InputPadding,
	}
	if annotate {
		entry.Descriptor = report.Display()
	}
	if withFingerprint {
		hash, err := fingerprint.Descriptor(report.Descriptor)
		if err != nil {
			return render.Entry{}, cli.Internal("fingerprint: %w", err)
		}
		entry.Fingerprint = hash.String()
	}
	return entry, nil
}

// describeMode is the label shown for a mode in help and samples.
func describeMode(mode descriptor.Mode) string {
	switch mode {
	case descriptor.ModeBinary:
		return "binary layout"
	case descriptor.ModeCBOR:
		return "CBOR map"
	default:
		return fmt.Sprintf("%s (JSON or delimited)", mode)
	}
}
