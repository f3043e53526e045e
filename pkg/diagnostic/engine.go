/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diagnostic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/NVIDIA/vdiag/pkg/bom"
	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/header"
	"github.com/NVIDIA/vdiag/pkg/part"
	"github.com/NVIDIA/vdiag/pkg/vehicle"
	"github.com/google/uuid"
)

// Engine runs diagnostics over vehicle records.
// An Engine holds no per-run state and may be reused.
type Engine struct {
	// Version is the engine version (typically the CLI version).
	Version string

	out     io.Writer
	checker *bom.Checker
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithOutput sets the writer diagnostic lines are written to. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithChecker sets the missing-parts checker.
func WithChecker(c *bom.Checker) Option {
	return func(e *Engine) {
		e.checker = c
	}
}

// WithVersion returns an Option that sets the Engine version string.
func WithVersion(version string) Option {
	return func(e *Engine) {
		e.Version = version
	}
}

// New creates an Engine. Without WithChecker it uses the default bill of
// materials checker.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.out == nil {
		e.out = os.Stdout
	}
	if e.checker == nil {
		c, err := bom.NewChecker()
		if err != nil {
			return nil, err
		}
		e.checker = c
	}
	return e, nil
}

// ValidateFields writes a line for each missing field, in the order year,
// make, model, and reports whether all three are present.
func (e *Engine) ValidateFields(year, make, model string) bool {
	return e.newSession().validateFields(year, make, model)
}

// ReportMissingParts writes the missing-parts lines for report and reports
// whether nothing is missing. A nil report means no parts data at all.
func (e *Engine) ReportMissingParts(report *bom.Report) bool {
	return e.newSession().reportMissingParts(report)
}

// ValidatePartsCondition writes a line for each part that is not in an
// acceptable condition and reports whether none was found. A part without a
// valid type or condition is an internal error and nothing is written.
func (e *Engine) ValidatePartsCondition(parts []part.Part) (bool, error) {
	return e.newSession().validatePartsCondition(parts)
}

// Run diagnoses v, stopping at the first failing stage.
func (e *Engine) Run(ctx context.Context, v *vehicle.Vehicle) (*Result, error) {
	if v == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "vehicle cannot be nil")
	}

	start := time.Now()
	runID := uuid.NewString()

	result := NewResult()
	result.Init(Kind, header.APIVersionV1, e.Version)
	result.Metadata[MetadataRunID] = runID
	result.Vehicle = VehicleSummary{
		Year:     v.Year,
		Make:     v.Make,
		Model:    v.Model,
		HasParts: v.HasParts(),
		Parts:    len(v.Parts),
	}

	s := e.newSession()
	result.Status = StatusPassed

	for _, stage := range Stages {
		select {
		case <-ctx.Done():
			diagnosticRunsTotal.WithLabelValues("error").Inc()
			return nil, errors.WrapWithContext(errors.ErrCodeTimeout, "diagnostic run interrupted", ctx.Err(),
				map[string]any{"runId": runID, "stage": string(stage)})
		default:
		}

		stageStart := time.Now()
		passed, err := s.runStage(stage, v)
		elapsed := time.Since(stageStart)
		diagnosticStageDuration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())

		if err == nil {
			err = s.err
		}
		if err != nil {
			diagnosticRunsTotal.WithLabelValues("error").Inc()
			slog.Debug("diagnostic stage errored", "runId", runID, "stage", stage, "error", err)
			return nil, err
		}

		result.Stages = append(result.Stages, StageResult{Name: stage, Passed: passed, Duration: elapsed})
		slog.Debug("diagnostic stage completed", "runId", runID, "stage", stage, "passed", passed, "duration", elapsed)

		if !passed {
			result.Status = StatusFailed
			result.FailedStage = stage
			s.println(terminationMessage(stage))
			break
		}
	}

	if result.Passed() {
		s.printf(msgSuccess, v.Year, v.Make, v.Model)
	}
	if s.err != nil {
		diagnosticRunsTotal.WithLabelValues("error").Inc()
		return nil, s.err
	}

	result.Findings = s.findings
	diagnosticRunsTotal.WithLabelValues(string(result.Status)).Inc()

	slog.Debug("diagnostic run completed",
		"runId", runID,
		"status", result.Status,
		"failedStage", result.FailedStage,
		"findings", len(result.Findings),
		"duration", time.Since(start))

	return result, nil
}

func terminationMessage(stage Stage) string {
	switch stage {
	case StageFields:
		return msgFieldsFailed
	case StagePartsPresence:
		return msgPresenceFailed
	default:
		return msgConditionFailed
	}
}

func (e *Engine) newSession() *session {
	return &session{out: e.out, checker: e.checker, findings: []Finding{}}
}

// session holds the state of a single run.
type session struct {
	out      io.Writer
	checker  *bom.Checker
	findings []Finding
	stage    Stage

	// err is the first write error; later writes are skipped.
	err error
}

func (s *session) runStage(stage Stage, v *vehicle.Vehicle) (bool, error) {
	s.stage = stage
	switch stage {
	case StageFields:
		return s.validateFields(v.Year, v.Make, v.Model), nil
	case StagePartsPresence:
		return s.reportMissingParts(s.checker.Check(v.Parts)), nil
	case StagePartsCondition:
		return s.validatePartsCondition(v.Parts)
	default:
		return false, errors.New(errors.ErrCodeInternal, fmt.Sprintf("unknown diagnostic stage %q", stage))
	}
}

func (s *session) validateFields(year, make, model string) bool {
	fields := []struct {
		name  string
		value string
	}{
		{"year", year},
		{"make", make},
		{"model", model},
	}

	ok := true
	for _, f := range fields {
		if f.value != "" {
			continue
		}
		ok = false
		s.report(Finding{Kind: FindingMissingField, Field: f.name, Message: fmt.Sprintf(msgMissingField, f.name)})
	}
	return ok
}

func (s *session) reportMissingParts(report *bom.Report) bool {
	if report == nil {
		s.report(Finding{Kind: FindingNoParts, Message: msgNoParts})
		return false
	}
	if report.IsEmpty() {
		return true
	}

	for _, e := range report.Entries() {
		s.report(Finding{
			Kind:     FindingMissingPart,
			PartType: e.Type,
			Count:    e.Count,
			Message:  fmt.Sprintf(msgMissingPart, e.Type, e.Count),
		})
	}
	return false
}

func (s *session) validatePartsCondition(parts []part.Part) (bool, error) {
	for i, p := range parts {
		if !p.Type.IsValid() || !p.Condition.IsValid() {
			return false, errors.WrapWithContext(errors.ErrCodeInternal,
				"part is missing a valid type or condition", nil,
				map[string]any{"index": i, "type": string(p.Type), "condition": string(p.Condition)})
		}
	}

	ok := true
	for _, p := range parts {
		if p.Condition.IsAcceptable() {
			continue
		}
		ok = false
		s.report(Finding{
			Kind:      FindingDamagedPart,
			PartType:  p.Type,
			Condition: p.Condition,
			Message:   fmt.Sprintf(msgDamagedPart, p.Type, p.Condition),
		})
	}
	return ok, nil
}

func (s *session) report(f Finding) {
	f.Stage = s.stage
	s.findings = append(s.findings, f)
	diagnosticFindingsTotal.WithLabelValues(string(f.Kind)).Inc()
	s.println(f.Message)
}

func (s *session) printf(format string, args ...any) {
	s.println(fmt.Sprintf(format, args...))
}

func (s *session) println(line string) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.err = errors.Wrap(errors.ErrCodeInternal, "failed to write diagnostic output", err)
	}
}
