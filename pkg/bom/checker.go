/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package bom

import (
	"log/slog"

	"github.com/NVIDIA/vdiag/pkg/part"
)

// Checker compares a vehicle's parts against the bill of materials.
type Checker struct {
	bom         *BillOfMaterials
	strictEmpty bool
}

// Option is a functional option for configuring Checker instances.
type Option func(*Checker)

// WithStrictEmptyParts makes a present but empty parts collection report
// every part type as missing instead of being treated like absent parts data.
func WithStrictEmptyParts() Option {
	return func(c *Checker) {
		c.strictEmpty = true
	}
}

// NewChecker creates a Checker over the embedded bill of materials.
func NewChecker(opts ...Option) (*Checker, error) {
	b, err := Load()
	if err != nil {
		return nil, err
	}

	c := &Checker{bom: b}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BillOfMaterials returns the requirements the checker measures against.
func (c *Checker) BillOfMaterials() *BillOfMaterials {
	return c.bom
}

// Check returns the per-type deficit of parts against the bill of materials.
// It returns nil when there is no parts data at all. Otherwise the report
// holds only positive deficits; surplus parts are ignored.
func (c *Checker) Check(parts []part.Part) *Report {
	if c.noPartsData(parts) {
		slog.Debug("no parts data", slog.Bool("present", parts != nil))
		return nil
	}

	present := make(map[part.Type]int, len(part.Types))
	for _, p := range parts {
		present[p.Type]++
	}

	r := newReport()
	for _, req := range c.bom.Requirements {
		if missing := req.Quantity - present[req.Type]; missing > 0 {
			r.counts[req.Type] = missing
		}
	}

	slog.Debug("parts checked against bill of materials",
		slog.Int("parts", len(parts)),
		slog.Int("missingTypes", r.Len()),
	)
	return r
}

// noPartsData decides whether parts counts as "no parts data". Absent parts
// always do. An empty collection does too unless strict empty handling is on.
func (c *Checker) noPartsData(parts []part.Part) bool {
	if parts == nil {
		return true
	}
	return len(parts) == 0 && !c.strictEmpty
}
