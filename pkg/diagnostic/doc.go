/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

/*
Package diagnostic runs rule-based validation over a vehicle record.

A diagnostic run is a fixed sequence of three stages. Each stage runs at most
once and the run stops at the first stage that fails:

 1. fields: year, make and model must be present.
 2. parts-presence: every part required by the bill of materials must be
    present in the required quantity.
 3. parts-condition: every part must be in an acceptable condition
    (NEW, GOOD or WORN).

Diagnostic messages are written line by line to the engine's output writer.
The lines are part of the tool's interface and their text is fixed:

	Missing Car Info: <field>
	Vehicle missing all parts. Ending diagnostic.
	Missing Part(s) Detected: <TYPE> - Count: <N>
	Damaged Part Detected: <TYPE> - Condition: <CONDITION>
	Please enter required vehicle information. Ending diagnostic.
	Vehicle is missing parts. Ending diagnostic.
	Vehicle has damaged parts. Ending diagnostic.
	Your <year> <make> <model> vehicle is in working condition!

# Usage

	engine, err := diagnostic.New(
	    diagnostic.WithOutput(os.Stdout),
	    diagnostic.WithVersion(version),
	)
	if err != nil {
	    return err
	}

	result, err := engine.Run(ctx, v)
	if err != nil {
	    return err // integrity violation or canceled context
	}
	if !result.Passed() {
	    // result.FailedStage names the stage that stopped the run
	}

A failing stage is not an error: Run returns a Result with status failed and
leaves the decision about the process exit status to the caller. Run returns
an error only when a part carries no type or no condition, when the context
is done between stages, or when the output writer fails.

# Results

The Result is a serializable resource (kind DiagnosticResult) carrying the
run ID, the vehicle summary, per-stage timings and every finding in the order
it was reported.

# Metrics

Runs, stage durations and findings are recorded with Prometheus collectors
registered on the default registry:

	vdiag_diagnostic_runs_total{status}
	vdiag_diagnostic_stage_duration_seconds{stage}
	vdiag_diagnostic_findings_total{kind}
*/
package diagnostic
