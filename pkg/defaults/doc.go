// Package defaults provides centralized configuration constants for vdiag.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values keeps the CLI flags and the
// library packages in agreement.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/vdiag/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.DiagnosticTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Diagnostics: 30s default covers loading the record from stdin or a slow
//     filesystem; the stages themselves are in-memory
package defaults
