/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/logging"
)

const name = "vdiag"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes returned by Run.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitCanceled = 2
)

// Execute runs the vdiag CLI with the process arguments and streams and
// exits with the resulting status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes the CLI with args and returns the process exit status.
// Diagnostics and reports go to stdout, errors to stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	return exitCode(cmd.Run(ctx, args), stderr)
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Rule-based vehicle diagnostics",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Reader:                stdin,
		Writer:                stdout,
		ErrWriter:             stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := logging.LevelFromEnv(slog.LevelInfo)
			if cmd.Bool("debug") {
				level = slog.LevelDebug
			}
			logging.SetDefaultStructuredLogger(name, version, level, cmd.Bool("log-json"))
			slog.Debug("starting", "name", name, "version", version, "commit", commit)
			return ctx, nil
		},
		// Exit status is decided by Run.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			diagnoseCmd(),
			bomCmd(),
		},
	}
}

// exitCode maps err to an exit status, reporting it on w unless it is a
// diagnostic failure whose explanation was already written.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return ExitOK
	}

	if errors.HasCode(err, errors.ErrCodeDiagnosticFailed) {
		slog.Debug("diagnostic failed", "error", err)
		return ExitFailure
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	if errors.HasCode(err, errors.ErrCodeTimeout) ||
		stderrors.Is(err, context.Canceled) ||
		stderrors.Is(err, context.DeadlineExceeded) {
		return ExitCanceled
	}
	return ExitFailure
}

// commandLister completes the names of visible subcommands.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	root := cmd.Root()
	w := root.Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range root.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}
