/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package bom holds the fixed bill of materials every vehicle is measured
// against and the checker that reports missing parts.
//
// The bill of materials is embedded at build time (data/bom.yaml) and is not
// user configurable:
//
//	ENGINE       1
//	ELECTRICAL   1
//	FUEL_FILTER  1
//	OIL_FILTER   1
//	TIRE         4
//
// Check returns a nil *Report when the vehicle carries no parts data at all
// and an empty report when nothing is missing:
//
//	c, err := bom.NewChecker()
//	if err != nil {
//	    return err
//	}
//	report := c.Check(v.Parts)
//	for _, e := range report.Entries() {
//	    fmt.Println(e.Type, e.Count)
//	}
package bom
