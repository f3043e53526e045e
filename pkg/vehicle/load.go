/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package vehicle

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/serializer"
)

// ResolveFormat picks the input format for path. An explicit format wins.
// Stdin defaults to XML; files are resolved by extension.
func ResolveFormat(path string, format serializer.Format) (serializer.Format, error) {
	if format != "" {
		if !format.IsReadable() {
			return "", errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("unsupported input format %q, supported formats: %s",
					format, strings.Join(serializer.SupportedInputFormats(), ", ")))
		}
		return format, nil
	}
	if strings.TrimSpace(path) == serializer.StdoutURI {
		return serializer.FormatXML, nil
	}
	return serializer.FormatFromPath(path), nil
}

// FromFile loads a vehicle record from path, or from stdin when path is "-".
// An empty format is resolved with ResolveFormat. Loading stops with a
// TIMEOUT error when ctx is done first.
func FromFile(ctx context.Context, path string, format serializer.Format) (*Vehicle, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "vehicle path is required")
	}

	format, err := ResolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	slog.Debug("loading vehicle record",
		slog.String("path", path),
		slog.String("format", string(format)),
	)

	r, err := serializer.NewFileReader(format, path)
	if err != nil {
		code := errors.ErrCodeInvalidRequest
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code, "failed to open vehicle record", err,
			map[string]any{"path": path})
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close vehicle reader", "error", closeErr)
		}
	}()

	return decode(ctx, r, path)
}

// FromReader loads a vehicle record from r in the given format.
// Loading stops with a TIMEOUT error when ctx is done first.
func FromReader(ctx context.Context, r io.Reader, format serializer.Format) (*Vehicle, error) {
	if format == "" {
		format = serializer.FormatXML
	}
	sr, err := serializer.NewReader(format, r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read vehicle record", err)
	}
	return decode(ctx, sr, "")
}

// decode returns once ctx is done even if the reader never delivers data.
// The decoding goroutine is then abandoned.
func decode(ctx context.Context, r *serializer.Reader, path string) (*Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
			"vehicle record load interrupted", err, map[string]any{"path": path})
	}

	var v Vehicle
	done := make(chan error, 1)
	go func() {
		done <- r.Deserialize(&v)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
			"vehicle record load interrupted", ctx.Err(), map[string]any{"path": path})
	case err := <-done:
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to parse vehicle record", err, map[string]any{"path": path})
		}
	}

	slog.Debug("loaded vehicle record",
		slog.String("vehicle", v.Summary()),
		slog.Bool("hasParts", v.HasParts()),
		slog.Int("parts", len(v.Parts)),
	)
	return &v, nil
}
