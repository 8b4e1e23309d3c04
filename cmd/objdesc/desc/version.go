// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/render"
	"github.com/objdesc/objdesc/lib/version"
)

type versionParams struct {
	outputParams
}

// VersionCommand returns the "version" command.
func VersionCommand(env Environment) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			session, err := params.open(env, logger)
			if err != nil {
				return err
			}

			info := version.Read()
			if session.renderer.Format() == render.FormatText {
				err = session.renderer.Line(fmt.Sprintf("objdesc %s\n  Go: %s\n  Platform: %s", info, info.Go, info.Platform))
			} else {
				err = session.renderer.Fields([]render.Field{
					{Label: "Version", Value: info.Version},
					{Label: "Commit", Value: info.Commit},
					{Label: "Built", Value: info.BuildTime},
					{Label: "Go", Value: info.Go},
					{Label: "Platform", Value: info.Platform},
				}, info)
			}
			if err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}
