/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vdiag/pkg/bom"
	"github.com/NVIDIA/vdiag/pkg/defaults"
	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/header"
	"github.com/NVIDIA/vdiag/pkg/part"
)

// bomDocument is the output of the bom command.
type bomDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Requirements         []bom.Requirement `json:"requirements" yaml:"requirements"`
	AcceptableConditions []part.Condition  `json:"acceptableConditions" yaml:"acceptableConditions"`
}

func bomCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bom",
		EnableShellCompletion: true,
		Usage:                 "Print the bill of materials vehicles are checked against",
		Description: `Prints the required quantity of each part type, in the order diagnostics
report them, and the part conditions considered acceptable.

# Examples

  vdiag bom
  vdiag bom --format table
  vdiag bom --format json --output bom.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   defaults.OutputFormat,
				Usage:   "Output format: yaml, json, table",
				Sources: cli.EnvVars("VDIAG_FORMAT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --format", err)
			}

			b, err := bom.Load()
			if err != nil {
				return err
			}

			doc := bomDocument{
				Requirements:         b.Requirements,
				AcceptableConditions: part.AcceptableConditions(),
			}
			doc.Init(bom.KindBillOfMaterials, header.APIVersionV1, version)

			w, err := newOutputWriter(cmd, outFormat, cmd.String("output"))
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to open output", err)
			}
			defer func() {
				if closeErr := closeOutput(w); closeErr != nil {
					slog.Warn("failed to close output", "error", closeErr)
				}
			}()

			if err := w.Serialize(ctx, doc); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "failed to write bill of materials", err)
			}
			return nil
		},
	}
}
