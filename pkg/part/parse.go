/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package part

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a misspelling may be from a known
// name for that name to be offered as a suggestion.
const maxSuggestionDistance = 3

// ParseType parses a part type name. Matching ignores case, surrounding
// whitespace, and treats '-' and ' ' as '_'.
func ParseType(s string) (Type, error) {
	t := Type(normalize(s))
	if t.IsValid() {
		return t, nil
	}
	return "", unknownValueError("part type", s, typeNames())
}

// ParseCondition parses a part condition name using the same rules as ParseType.
func ParseCondition(s string) (Condition, error) {
	c := Condition(normalize(s))
	if c.IsValid() {
		return c, nil
	}
	return "", unknownValueError("condition", s, conditionNames())
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text leaves the
// zero value so that a part without a type is kept as such.
func (t *Type) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*t = ""
		return nil
	}
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text leaves the
// zero value so that a part without a condition is kept as such.
func (c *Condition) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*c = ""
		return nil
	}
	v, err := ParseCondition(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func unknownValueError(what, value string, known []string) error {
	if suggestion, ok := closest(normalize(value), known); ok {
		return fmt.Errorf("unknown %s %q, did you mean %q?", what, value, suggestion)
	}
	return fmt.Errorf("unknown %s %q, supported values: %s", what, value, strings.Join(known, ", "))
}

// closest returns the known name with the smallest edit distance to value,
// provided it is within maxSuggestionDistance.
func closest(value string, known []string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(value, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

func typeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = t.String()
	}
	return names
}

func conditionNames() []string {
	names := make([]string, len(Conditions))
	for i, c := range Conditions {
		names[i] = c.String()
	}
	return names
}
