/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diagnostic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	diagnosticRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vdiag_diagnostic_runs_total",
			Help: "Total number of diagnostic runs",
		},
		[]string{"status"}, // passed, failed or error
	)

	diagnosticStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vdiag_diagnostic_stage_duration_seconds",
			Help:    "Duration of a diagnostic stage in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		},
		[]string{"stage"},
	)

	diagnosticFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vdiag_diagnostic_findings_total",
			Help: "Total number of diagnostic findings reported",
		},
		[]string{"kind"},
	)
)
