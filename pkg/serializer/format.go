/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"path/filepath"
	"strings"
)

// Format names an encoding understood by the serializer package.
type Format string

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML with two-space indentation.
	FormatYAML Format = "yaml"
	// FormatTable is a flattened FIELD/VALUE listing for terminals.
	FormatTable Format = "table"
	// FormatXML is XML. It is an input-only format.
	FormatXML Format = "xml"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// IsUnknown reports whether f is not a supported output format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// IsReadable reports whether documents in format f can be deserialized.
func (f Format) IsReadable() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatXML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns the names of the supported output formats.
func SupportedFormats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatTable)}
}

// SupportedInputFormats returns the names of the formats NewReader accepts.
func SupportedInputFormats() []string {
	return []string{string(FormatXML), string(FormatYAML), string(FormatJSON)}
}

// FormatFromPath infers the format from a file extension.
// Paths without a recognized extension resolve to FormatJSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".xml":
		return FormatXML
	case ".txt", ".table":
		return FormatTable
	default:
		return FormatJSON
	}
}
