/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vdiag/pkg/bom"
	"github.com/NVIDIA/vdiag/pkg/defaults"
	"github.com/NVIDIA/vdiag/pkg/diagnostic"
	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/serializer"
	"github.com/NVIDIA/vdiag/pkg/vehicle"
)

func diagnoseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "diagnose",
		Aliases:               []string{"diag"},
		EnableShellCompletion: true,
		Usage:                 "Run diagnostics over a vehicle record",
		Description: `Loads a vehicle record and runs three stages, stopping at the first one
that fails:

  1. fields: year, make and model must be present
  2. parts-presence: every part in the bill of materials must be present
  3. parts-condition: every part must be NEW, GOOD or WORN

Diagnostic lines are written to stdout. The exit status is 0 when the vehicle
is in working condition and 1 when a stage fails or the record cannot be loaded.

# Examples

Diagnose an XML record:
  vdiag diagnose --vehicle car.xml

Read from stdin and write a JSON report file:
  cat car.yaml | vdiag diagnose -f - --input-format yaml --report report.json --format json

Report every part type for an empty parts list:
  vdiag diagnose -f car.xml --strict-empty-parts`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "vehicle",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to the vehicle record (xml, yaml or json); use - for stdin",
				Sources:  cli.EnvVars("VDIAG_VEHICLE"),
			},
			&cli.StringFlag{
				Name:    "input-format",
				Usage:   "Vehicle record format: xml, yaml, json (default: from file extension, xml for stdin)",
				Sources: cli.EnvVars("VDIAG_INPUT_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "report",
				Aliases: []string{"r"},
				Usage:   "Write a structured diagnostic report to this path; use - for stdout",
				Sources: cli.EnvVars("VDIAG_REPORT"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   defaults.OutputFormat,
				Usage:   "Report format: yaml, json, table",
				Sources: cli.EnvVars("VDIAG_FORMAT"),
			},
			&cli.BoolFlag{
				Name:    "strict-empty-parts",
				Usage:   "Report every part type as missing when the parts list is present but empty",
				Sources: cli.EnvVars("VDIAG_STRICT_EMPTY_PARTS"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   defaults.DiagnosticTimeout,
				Usage:   "Maximum duration of the diagnostic run",
				Sources: cli.EnvVars("VDIAG_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write Prometheus text-format metrics to this path",
				Sources: cli.EnvVars("VDIAG_METRICS_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if timeout := cmd.Duration("timeout"); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --format", err)
			}
			inFormat, err := parseInputFormat(cmd)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --input-format", err)
			}

			v, err := loadVehicle(ctx, cmd, cmd.String("vehicle"), inFormat)
			if err != nil {
				return err
			}

			var checkerOpts []bom.Option
			if cmd.Bool("strict-empty-parts") {
				checkerOpts = append(checkerOpts, bom.WithStrictEmptyParts())
			}
			checker, err := bom.NewChecker(checkerOpts...)
			if err != nil {
				return err
			}

			engine, err := diagnostic.New(
				diagnostic.WithOutput(cmd.Root().Writer),
				diagnostic.WithChecker(checker),
				diagnostic.WithVersion(version),
			)
			if err != nil {
				return err
			}

			result, err := engine.Run(ctx, v)
			if err != nil {
				writeMetrics(cmd.String("metrics-file"))
				return err
			}

			if path := strings.TrimSpace(cmd.String("report")); path != "" {
				if err := writeReport(ctx, cmd, outFormat, path, result); err != nil {
					return err
				}
			}
			writeMetrics(cmd.String("metrics-file"))

			if !result.Passed() {
				return errors.WrapWithContext(errors.ErrCodeDiagnosticFailed,
					fmt.Sprintf("diagnostic failed at stage %s", result.FailedStage), nil,
					map[string]any{"runId": result.RunID()})
			}
			return nil
		},
	}
}

func loadVehicle(ctx context.Context, cmd *cli.Command, path string, format serializer.Format) (*vehicle.Vehicle, error) {
	if strings.TrimSpace(path) != serializer.StdoutURI {
		return vehicle.FromFile(ctx, path, format)
	}

	format, err := vehicle.ResolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	return vehicle.FromReader(ctx, stdinReader(cmd), format)
}

func writeReport(ctx context.Context, cmd *cli.Command, format serializer.Format, path string, result *diagnostic.Result) error {
	w, err := newOutputWriter(cmd, format, path)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to open report output", err,
			map[string]any{"path": path})
	}
	defer func() {
		if closeErr := closeOutput(w); closeErr != nil {
			slog.Warn("failed to close report output", "error", closeErr)
		}
	}()

	if err := w.Serialize(ctx, result); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write diagnostic report", err)
	}
	slog.Debug("diagnostic report written", "path", path, "format", format)
	return nil
}

// writeMetrics dumps the default registry to path. Failures are logged only.
func writeMetrics(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("metrics written", "path", path)
}
