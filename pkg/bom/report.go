/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package bom

import "github.com/NVIDIA/vdiag/pkg/part"

// Entry is one missing part type and how many are missing.
type Entry struct {
	Type  part.Type `json:"type" yaml:"type"`
	Count int       `json:"count" yaml:"count"`
}

// Report maps part types to positive missing counts.
// An empty report means nothing is missing.
type Report struct {
	counts map[part.Type]int
}

func newReport() *Report {
	return &Report{counts: make(map[part.Type]int)}
}

// IsEmpty reports whether no part is missing.
func (r *Report) IsEmpty() bool {
	return r.Len() == 0
}

// Len returns the number of part types with a deficit.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.counts)
}

// Count returns how many parts of type t are missing.
func (r *Report) Count(t part.Type) int {
	if r == nil {
		return 0
	}
	return r.counts[t]
}

// Entries returns the deficits in part type declaration order.
func (r *Report) Entries() []Entry {
	entries := make([]Entry, 0, r.Len())
	for _, t := range part.Types {
		if n := r.Count(t); n > 0 {
			entries = append(entries, Entry{Type: t, Count: n})
		}
	}
	return entries
}
