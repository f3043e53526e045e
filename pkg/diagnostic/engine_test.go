/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diagnostic

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/NVIDIA/vdiag/pkg/bom"
	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/header"
	"github.com/NVIDIA/vdiag/pkg/part"
	"github.com/NVIDIA/vdiag/pkg/vehicle"
	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(t part.Type, c part.Condition) part.Part {
	return part.New(t, c)
}

func goodParts() []part.Part {
	return []part.Part{
		p(part.TypeEngine, part.ConditionGood),
		p(part.TypeElectrical, part.ConditionGood),
		p(part.TypeFuelFilter, part.ConditionNew),
		p(part.TypeOilFilter, part.ConditionWorn),
		p(part.TypeTire, part.ConditionGood),
		p(part.TypeTire, part.ConditionGood),
		p(part.TypeTire, part.ConditionNew),
		p(part.TypeTire, part.ConditionWorn),
	}
}

func without(parts []part.Part, t part.Type, n int) []part.Part {
	out := make([]part.Part, 0, len(parts))
	for _, pt := range parts {
		if pt.Type == t && n > 0 {
			n--
			continue
		}
		out = append(out, pt)
	}
	return out
}

func explorer(parts []part.Part) *vehicle.Vehicle {
	return &vehicle.Vehicle{Year: "2006", Make: "Ford", Model: "Explorer", Parts: parts}
}

func newEngine(t *testing.T, buf *bytes.Buffer, opts ...Option) *Engine {
	t.Helper()
	e, err := New(append([]Option{WithOutput(buf), WithVersion("v0.0.0-test")}, opts...)...)
	require.NoError(t, err)
	return e
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestEngine_Run_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		vehicle     *vehicle.Vehicle
		want        string
		failedStage Stage
		stagesRun   int
	}{
		{
			name: "damaged parts",
			vehicle: explorer([]part.Part{
				p(part.TypeEngine, part.ConditionUsed),
				p(part.TypeElectrical, part.ConditionNoPower),
				p(part.TypeTire, part.ConditionFlat),
				p(part.TypeFuelFilter, part.ConditionNew),
				p(part.TypeOilFilter, part.ConditionClogged),
				p(part.TypeTire, part.ConditionGood),
				p(part.TypeTire, part.ConditionGood),
				p(part.TypeTire, part.ConditionGood),
			}),
			want: lines(
				"Damaged Part Detected: ENGINE - Condition: USED",
				"Damaged Part Detected: ELECTRICAL - Condition: NO_POWER",
				"Damaged Part Detected: TIRE - Condition: FLAT",
				"Damaged Part Detected: OIL_FILTER - Condition: CLOGGED",
				"Vehicle has damaged parts. Ending diagnostic.",
			),
			failedStage: StagePartsCondition,
			stagesRun:   3,
		},
		{
			name:    "missing fuel filter",
			vehicle: explorer(without(goodParts(), part.TypeFuelFilter, 1)),
			want: lines(
				"Missing Part(s) Detected: FUEL_FILTER - Count: 1",
				"Vehicle is missing parts. Ending diagnostic.",
			),
			failedStage: StagePartsPresence,
			stagesRun:   2,
		},
		{
			name:    "two tires",
			vehicle: explorer(without(goodParts(), part.TypeTire, 2)),
			want: lines(
				"Missing Part(s) Detected: TIRE - Count: 2",
				"Vehicle is missing parts. Ending diagnostic.",
			),
			failedStage: StagePartsPresence,
			stagesRun:   2,
		},
		{
			name:    "no tires",
			vehicle: explorer(without(goodParts(), part.TypeTire, 4)),
			want: lines(
				"Missing Part(s) Detected: TIRE - Count: 4",
				"Vehicle is missing parts. Ending diagnostic.",
			),
			failedStage: StagePartsPresence,
			stagesRun:   2,
		},
		{
			name:    "no vehicle information",
			vehicle: &vehicle.Vehicle{Parts: goodParts()},
			want: lines(
				"Missing Car Info: year",
				"Missing Car Info: make",
				"Missing Car Info: model",
				"Please enter required vehicle information. Ending diagnostic.",
			),
			failedStage: StageFields,
			stagesRun:   1,
		},
		{
			name:    "no parts",
			vehicle: explorer(nil),
			want: lines(
				"Vehicle missing all parts. Ending diagnostic.",
				"Vehicle is missing parts. Ending diagnostic.",
			),
			failedStage: StagePartsPresence,
			stagesRun:   2,
		},
		{
			name:        "working condition",
			vehicle:     explorer(goodParts()),
			want:        lines("Your 2006 Ford Explorer vehicle is in working condition!"),
			failedStage: "",
			stagesRun:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newEngine(t, &buf)

			result, err := e.Run(context.Background(), tt.vehicle)
			require.NoError(t, err)

			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.failedStage, result.FailedStage)
			assert.Equal(t, tt.failedStage == "", result.Passed())
			assert.Len(t, result.Stages, tt.stagesRun)
			for i, sr := range result.Stages {
				assert.Equal(t, Stages[i], sr.Name)
				assert.Equal(t, sr.Name != tt.failedStage, sr.Passed)
			}
		})
	}
}

func TestEngine_Run_PartialFields(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(t, &buf)

	result, err := e.Run(context.Background(), &vehicle.Vehicle{Make: "Ford", Parts: goodParts()})
	require.NoError(t, err)

	assert.Equal(t, lines(
		"Missing Car Info: year",
		"Missing Car Info: model",
		"Please enter required vehicle information. Ending diagnostic.",
	), buf.String())
	require.Len(t, result.Findings, 2)
	assert.Equal(t, "year", result.Findings[0].Field)
	assert.Equal(t, "model", result.Findings[1].Field)
}

func TestEngine_Run_EmptyParts(t *testing.T) {
	t.Run("treated as absent", func(t *testing.T) {
		var buf bytes.Buffer
		result, err := newEngine(t, &buf).Run(context.Background(), explorer([]part.Part{}))
		require.NoError(t, err)
		assert.Equal(t, lines(
			"Vehicle missing all parts. Ending diagnostic.",
			"Vehicle is missing parts. Ending diagnostic.",
		), buf.String())
		assert.Equal(t, StagePartsPresence, result.FailedStage)
	})

	t.Run("strict", func(t *testing.T) {
		checker, err := bom.NewChecker(bom.WithStrictEmptyParts())
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = newEngine(t, &buf, WithChecker(checker)).Run(context.Background(), explorer([]part.Part{}))
		require.NoError(t, err)
		assert.Equal(t, lines(
			"Missing Part(s) Detected: ENGINE - Count: 1",
			"Missing Part(s) Detected: ELECTRICAL - Count: 1",
			"Missing Part(s) Detected: FUEL_FILTER - Count: 1",
			"Missing Part(s) Detected: OIL_FILTER - Count: 1",
			"Missing Part(s) Detected: TIRE - Count: 4",
			"Vehicle is missing parts. Ending diagnostic.",
		), buf.String())
	})
}

func TestEngine_Run_Result(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(t, &buf)

	result, err := e.Run(context.Background(), explorer(without(goodParts(), part.TypeTire, 3)))
	require.NoError(t, err)

	assert.Equal(t, Kind, result.Kind)
	assert.Equal(t, header.APIVersionV1, result.APIVersion)
	assert.Equal(t, "v0.0.0-test", result.Metadata[header.MetadataVersion])
	assert.NotEmpty(t, result.Metadata[header.MetadataTimestamp])
	_, err = uuid.Parse(result.RunID())
	assert.NoError(t, err)

	assert.Equal(t, VehicleSummary{Year: "2006", Make: "Ford", Model: "Explorer", HasParts: true, Parts: 5}, result.Vehicle)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, []Finding{{
		Kind:     FindingMissingPart,
		Stage:    StagePartsPresence,
		PartType: part.TypeTire,
		Count:    3,
		Message:  "Missing Part(s) Detected: TIRE - Count: 3",
	}}, result.Findings)

	other, err := e.Run(context.Background(), explorer(goodParts()))
	require.NoError(t, err)
	assert.NotEqual(t, result.RunID(), other.RunID())
	assert.Empty(t, other.Findings, "runs do not share findings")
}

func TestEngine_Run_IntegrityViolation(t *testing.T) {
	tests := []struct {
		name string
		bad  part.Part
	}{
		{"no condition", p(part.TypeTire, "")},
		{"unknown condition", p(part.TypeTire, "RUSTY")},
		{"no type", p("", part.ConditionFlat)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := append([]part.Part{p(part.TypeEngine, part.ConditionDamaged)}, goodParts()...)
			parts = append(parts, tt.bad)

			var buf bytes.Buffer
			result, err := newEngine(t, &buf).Run(context.Background(), explorer(parts))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
			assert.Empty(t, buf.String())
		})
	}
}

func TestEngine_Run_NilVehicle(t *testing.T) {
	var buf bytes.Buffer
	_, err := newEngine(t, &buf).Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestEngine_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := newEngine(t, &buf).Run(ctx, explorer(goodParts()))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTimeout))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestEngine_Run_WriteError(t *testing.T) {
	e, err := New(WithOutput(failingWriter{}))
	require.NoError(t, err)

	_, err = e.Run(context.Background(), explorer(goodParts()))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
	assert.Contains(t, err.Error(), "disk full")
}

func TestEngine_ValidateFields(t *testing.T) {
	tests := []struct {
		name              string
		year, make, model string
		want              bool
		out               string
	}{
		{"all present", "2006", "Ford", "Explorer", true, ""},
		{"year missing", "", "Ford", "Explorer", false, lines("Missing Car Info: year")},
		{"make and model missing", "2006", "", "", false, lines("Missing Car Info: make", "Missing Car Info: model")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, newEngine(t, &buf).ValidateFields(tt.year, tt.make, tt.model))
			assert.Equal(t, tt.out, buf.String())
		})
	}
}

func TestEngine_ReportMissingParts(t *testing.T) {
	checker, err := bom.NewChecker()
	require.NoError(t, err)

	t.Run("nil report", func(t *testing.T) {
		var buf bytes.Buffer
		assert.False(t, newEngine(t, &buf).ReportMissingParts(nil))
		assert.Equal(t, lines("Vehicle missing all parts. Ending diagnostic."), buf.String())
	})

	t.Run("empty report", func(t *testing.T) {
		var buf bytes.Buffer
		assert.True(t, newEngine(t, &buf).ReportMissingParts(checker.Check(goodParts())))
		assert.Empty(t, buf.String())
	})

	t.Run("entries in type order", func(t *testing.T) {
		var buf bytes.Buffer
		report := checker.Check([]part.Part{p(part.TypeTire, part.ConditionGood), p(part.TypeOilFilter, part.ConditionGood)})
		assert.False(t, newEngine(t, &buf).ReportMissingParts(report))
		assert.Equal(t, lines(
			"Missing Part(s) Detected: ENGINE - Count: 1",
			"Missing Part(s) Detected: ELECTRICAL - Count: 1",
			"Missing Part(s) Detected: FUEL_FILTER - Count: 1",
			"Missing Part(s) Detected: TIRE - Count: 3",
		), buf.String())
	})
}

func TestEngine_ValidatePartsCondition(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(t, &buf)

	ok, err := e.ValidatePartsCondition(goodParts())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, buf.String())

	ok, err = e.ValidatePartsCondition([]part.Part{
		p(part.TypeTire, part.ConditionFlat),
		p(part.TypeEngine, part.ConditionGood),
		p(part.TypeEngine, part.ConditionSpunBearing),
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, lines(
		"Damaged Part Detected: TIRE - Condition: FLAT",
		"Damaged Part Detected: ENGINE - Condition: SPUN_BEARING",
	), buf.String())

	ok, err = e.ValidatePartsCondition(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func counterValue(t *testing.T, kind string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, diagnosticFindingsTotal.WithLabelValues(kind).Write(&m))
	return m.GetCounter().GetValue()
}

func TestEngine_Run_RecordsFindingMetrics(t *testing.T) {
	before := counterValue(t, string(FindingDamagedPart))

	var buf bytes.Buffer
	_, err := newEngine(t, &buf).Run(context.Background(), explorer(append(goodParts(), p(part.TypeTire, part.ConditionFlat))))
	require.NoError(t, err)

	assert.Equal(t, before+1, counterValue(t, string(FindingDamagedPart)))
}
