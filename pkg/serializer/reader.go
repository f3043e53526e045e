/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader deserializes a document in the configured format.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader over r.
func NewReader(format Format, r io.Reader) (*Reader, error) {
	if !format.IsReadable() {
		return nil, fmt.Errorf("unsupported input format %q, supported formats: %s",
			format, strings.Join(SupportedInputFormats(), ", "))
	}
	if r == nil {
		return nil, fmt.Errorf("input reader is nil")
	}
	return &Reader{format: format, input: r}, nil
}

// NewFileReader opens path for reading, or stdin when path is StdoutURI.
func NewFileReader(format Format, path string) (*Reader, error) {
	if strings.TrimSpace(path) == StdoutURI {
		return NewReader(format, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}

	r, err := NewReader(format, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Deserialize decodes the whole document into v.
func (r *Reader) Deserialize(v any) error {
	var err error
	switch r.format {
	case FormatXML:
		err = xml.NewDecoder(r.input).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r.input).Decode(v)
	default:
		err = json.NewDecoder(r.input).Decode(v)
	}

	if err == io.EOF {
		return fmt.Errorf("failed to deserialize %s: document is empty", r.format)
	}
	if err != nil {
		return fmt.Errorf("failed to deserialize %s: %w", r.format, err)
	}
	return nil
}

// Close closes the underlying file, if any. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
