// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the vdiag tool.
//
// # Overview
//
// vdiag loads a vehicle record and runs rule-based diagnostics over it:
// required descriptive fields, required parts against a fixed bill of
// materials, and part conditions. Diagnostic lines are written to stdout;
// errors and logs go to stderr.
//
// # Commands
//
// diagnose - Run diagnostics over a vehicle record:
//
//	vdiag diagnose --vehicle car.xml
//	vdiag diagnose -f car.yaml --report report.json --format json
//	cat car.xml | vdiag diagnose -f -
//	vdiag diagnose -f car.xml --strict-empty-parts --metrics-file vdiag.prom
//
// Stops at the first failing stage (fields, parts-presence,
// parts-condition). With --report the structured result is written after the
// diagnostic lines.
//
// bom - Print the bill of materials:
//
//	vdiag bom [--output FILE] [--format yaml|json|table]
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Input Formats
//
// XML (default for stdin):
//
//	<car>
//	  <year>2006</year><make>Ford</make><model>Explorer</model>
//	  <parts>
//	    <part type="TIRE" condition="GOOD"/>
//	  </parts>
//	</car>
//
// YAML and JSON use the same field names with parts as a list of
// {type, condition} objects. The format is taken from the file extension
// unless --input-format is set.
//
// # Environment Variables
//
//	LOG_LEVEL                 Set logging verbosity (debug, info, warn, error)
//	VDIAG_VEHICLE             Default for --vehicle
//	VDIAG_INPUT_FORMAT        Default for --input-format
//	VDIAG_REPORT              Default for --report
//	VDIAG_FORMAT              Default for --format
//	VDIAG_STRICT_EMPTY_PARTS  Default for --strict-empty-parts
//	VDIAG_METRICS_FILE        Default for --metrics-file
//
// # Exit Codes
//
//	0  Success (vehicle in working condition)
//	1  Diagnostic stage failed, or general error (invalid arguments, unreadable record)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/vdiag/pkg/cli.version=1.0.0'"
package cli
