/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package part defines vehicle parts: the closed set of part types, the
// closed set of part conditions and the Part value combining both.
package part

import "fmt"

// Type identifies the kind of a vehicle part.
// The zero value means the part carries no type and is never valid.
type Type string

const (
	TypeEngine     Type = "ENGINE"
	TypeElectrical Type = "ELECTRICAL"
	TypeFuelFilter Type = "FUEL_FILTER"
	TypeOilFilter  Type = "OIL_FILTER"
	TypeTire       Type = "TIRE"
)

// Types lists every part type in declaration order.
// All user-facing output that enumerates part types follows this order.
var Types = []Type{
	TypeEngine,
	TypeElectrical,
	TypeFuelFilter,
	TypeOilFilter,
	TypeTire,
}

// String returns the part type name.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether t is one of the declared part types.
func (t Type) IsValid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// Condition describes the state a part is in.
// The zero value means the part carries no condition and is never valid.
type Condition string

const (
	ConditionNew         Condition = "NEW"
	ConditionGood        Condition = "GOOD"
	ConditionWorn        Condition = "WORN"
	ConditionUsed        Condition = "USED"
	ConditionDamaged     Condition = "DAMAGED"
	ConditionNoPower     Condition = "NO_POWER"
	ConditionFlat        Condition = "FLAT"
	ConditionClogged     Condition = "CLOGGED"
	ConditionSpunBearing Condition = "SPUN_BEARING"
)

// Conditions lists every part condition in declaration order.
var Conditions = []Condition{
	ConditionNew,
	ConditionGood,
	ConditionWorn,
	ConditionUsed,
	ConditionDamaged,
	ConditionNoPower,
	ConditionFlat,
	ConditionClogged,
	ConditionSpunBearing,
}

// acceptable is the fixed set of conditions a working part may be in.
var acceptable = map[Condition]bool{
	ConditionNew:  true,
	ConditionGood: true,
	ConditionWorn: true,
}

// AcceptableConditions returns the acceptable conditions in declaration order.
func AcceptableConditions() []Condition {
	out := make([]Condition, 0, len(acceptable))
	for _, c := range Conditions {
		if acceptable[c] {
			out = append(out, c)
		}
	}
	return out
}

// String returns the condition name.
func (c Condition) String() string {
	return string(c)
}

// IsValid reports whether c is one of the declared conditions.
func (c Condition) IsValid() bool {
	for _, v := range Conditions {
		if v == c {
			return true
		}
	}
	return false
}

// IsAcceptable reports whether a part in condition c is in working order.
// Every valid condition outside NEW, GOOD and WORN counts as damaged.
func (c Condition) IsAcceptable() bool {
	return acceptable[c]
}

// Part is a single vehicle component.
type Part struct {
	Type      Type      `json:"type" yaml:"type"`
	Condition Condition `json:"condition" yaml:"condition"`
}

// New creates a Part.
func New(t Type, c Condition) Part {
	return Part{Type: t, Condition: c}
}

// String returns a compact representation such as "TIRE(FLAT)".
func (p Part) String() string {
	return fmt.Sprintf("%s(%s)", p.Type, p.Condition)
}
