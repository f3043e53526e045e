/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diagnostic

import (
	"time"

	"github.com/NVIDIA/vdiag/pkg/header"
	"github.com/NVIDIA/vdiag/pkg/part"
)

const (
	// Kind is the resource kind of a diagnostic result.
	Kind header.Kind = "DiagnosticResult"

	// MetadataRunID is the header metadata key holding the run ID.
	MetadataRunID = "runId"
)

// Stage names a diagnostic stage.
type Stage string

const (
	StageFields         Stage = "fields"
	StagePartsPresence  Stage = "parts-presence"
	StagePartsCondition Stage = "parts-condition"
)

// Stages lists the diagnostic stages in execution order.
var Stages = []Stage{StageFields, StagePartsPresence, StagePartsCondition}

// Status is the overall outcome of a run.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// FindingKind classifies a finding.
type FindingKind string

const (
	FindingMissingField FindingKind = "missing-field"
	FindingNoParts      FindingKind = "no-parts"
	FindingMissingPart  FindingKind = "missing-part"
	FindingDamagedPart  FindingKind = "damaged-part"
)

// Finding is one problem reported during a run. Message is the exact line
// written to the diagnostic output.
type Finding struct {
	Kind      FindingKind    `json:"kind" yaml:"kind"`
	Stage     Stage          `json:"stage" yaml:"stage"`
	Field     string         `json:"field,omitempty" yaml:"field,omitempty"`
	PartType  part.Type      `json:"partType,omitempty" yaml:"partType,omitempty"`
	Condition part.Condition `json:"condition,omitempty" yaml:"condition,omitempty"`
	Count     int            `json:"count,omitempty" yaml:"count,omitempty"`
	Message   string         `json:"message" yaml:"message"`
}

// StageResult records the outcome of a stage that ran.
type StageResult struct {
	Name     Stage         `json:"name" yaml:"name"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// VehicleSummary identifies the inspected vehicle.
type VehicleSummary struct {
	Year     string `json:"year" yaml:"year"`
	Make     string `json:"make" yaml:"make"`
	Model    string `json:"model" yaml:"model"`
	HasParts bool   `json:"hasParts" yaml:"hasParts"`
	Parts    int    `json:"parts" yaml:"parts"`
}

// Result is the outcome of a diagnostic run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Vehicle     VehicleSummary `json:"vehicle" yaml:"vehicle"`
	Status      Status         `json:"status" yaml:"status"`
	FailedStage Stage          `json:"failedStage,omitempty" yaml:"failedStage,omitempty"`
	Stages      []StageResult  `json:"stages" yaml:"stages"`
	Findings    []Finding      `json:"findings" yaml:"findings"`
}

// NewResult creates an empty Result with initialized collections.
func NewResult() *Result {
	return &Result{
		Header:   *header.New(),
		Stages:   make([]StageResult, 0, len(Stages)),
		Findings: []Finding{},
	}
}

// Passed reports whether every stage passed.
func (r *Result) Passed() bool {
	return r != nil && r.Status == StatusPassed
}

// RunID returns the run ID stamped on the result.
func (r *Result) RunID() string {
	if r == nil {
		return ""
	}
	return r.Metadata[MetadataRunID]
}
