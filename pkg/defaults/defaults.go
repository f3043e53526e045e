/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "time"

const (
	// DiagnosticTimeout bounds a whole diagnose command run.
	DiagnosticTimeout = 30 * time.Second

	// OutputFormat is the default report and bill of materials format.
	OutputFormat = "yaml"
)
