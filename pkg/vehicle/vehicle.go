/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package vehicle defines the vehicle record inspected by the diagnostic
// engine and loads it from XML, YAML or JSON documents.
//
// A record whose parts collection is absent keeps a nil Parts slice. A record
// whose collection is present but has no entries keeps a non-nil, empty slice.
// Every loader preserves that distinction.
package vehicle

import (
	"encoding/xml"
	"strings"

	"github.com/NVIDIA/vdiag/pkg/part"
)

// Vehicle is a deserialized vehicle record.
type Vehicle struct {
	Year  string      `json:"year" yaml:"year"`
	Make  string      `json:"make" yaml:"make"`
	Model string      `json:"model" yaml:"model"`
	Parts []part.Part `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// HasParts reports whether the parts collection was present in the source,
// even if it held no entries.
func (v *Vehicle) HasParts() bool {
	return v != nil && v.Parts != nil
}

// Summary returns "<year> <make> <model>".
func (v *Vehicle) Summary() string {
	if v == nil {
		return ""
	}
	return strings.Join([]string{v.Year, v.Make, v.Model}, " ")
}

type xmlCar struct {
	XMLName xml.Name  `xml:"car"`
	Year    string    `xml:"year"`
	Make    string    `xml:"make"`
	Model   string    `xml:"model"`
	Parts   *xmlParts `xml:"parts"`
}

type xmlParts struct {
	Items []xmlPart `xml:"part"`
}

// xmlPart accepts type and condition either as attributes or as child elements.
type xmlPart struct {
	TypeAttr      part.Type      `xml:"type,attr,omitempty"`
	ConditionAttr part.Condition `xml:"condition,attr,omitempty"`
	Type          part.Type      `xml:"type,omitempty"`
	Condition     part.Condition `xml:"condition,omitempty"`
}

func (p xmlPart) part() part.Part {
	t, c := p.TypeAttr, p.ConditionAttr
	if t == "" {
		t = p.Type
	}
	if c == "" {
		c = p.Condition
	}
	return part.New(t, c)
}

// UnmarshalXML decodes a <car> element.
func (v *Vehicle) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var car xmlCar
	if err := d.DecodeElement(&car, &start); err != nil {
		return err
	}

	*v = Vehicle{
		Year:  car.Year,
		Make:  car.Make,
		Model: car.Model,
	}
	if car.Parts != nil {
		v.Parts = make([]part.Part, 0, len(car.Parts.Items))
		for _, p := range car.Parts.Items {
			v.Parts = append(v.Parts, p.part())
		}
	}
	return nil
}

// MarshalXML encodes v in the same <car> shape UnmarshalXML reads.
func (v Vehicle) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	car := xmlCar{Year: v.Year, Make: v.Make, Model: v.Model}
	if v.Parts != nil {
		car.Parts = &xmlParts{Items: make([]xmlPart, 0, len(v.Parts))}
		for _, p := range v.Parts {
			car.Parts.Items = append(car.Parts.Items, xmlPart{TypeAttr: p.Type, ConditionAttr: p.Condition})
		}
	}
	start.Name = xml.Name{Local: "car"}
	return e.EncodeElement(car, start)
}
