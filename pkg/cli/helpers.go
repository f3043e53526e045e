/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vdiag/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// parseInputFormat returns the --input-format value, or "" to infer the
// format from the vehicle path.
func parseInputFormat(cmd *cli.Command) (serializer.Format, error) {
	raw := strings.ToLower(strings.TrimSpace(cmd.String("input-format")))
	if raw == "" {
		return "", nil
	}
	f := serializer.Format(raw)
	if !f.IsReadable() {
		return "", fmt.Errorf("unknown input format: %q, valid formats are: %s",
			raw, strings.Join(serializer.SupportedInputFormats(), ", "))
	}
	return f, nil
}

// newOutputWriter returns a serializer for path. An empty path or "-" writes
// to the command's writer so output stays on the same stream as the diagnostics.
func newOutputWriter(cmd *cli.Command, format serializer.Format, path string) (serializer.Serializer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == serializer.StdoutURI {
		return serializer.NewWriter(format, cmd.Root().Writer), nil
	}
	return serializer.NewFileWriterOrStdout(format, path)
}

// closeOutput closes s if it holds a file.
func closeOutput(s serializer.Serializer) error {
	if c, ok := s.(serializer.Closer); ok {
		return c.Close()
	}
	return nil
}

// stdinReader returns the reader used for "-" paths.
func stdinReader(cmd *cli.Command) io.Reader {
	return cmd.Root().Reader
}
