/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package bom

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/NVIDIA/vdiag/pkg/errors"
	"github.com/NVIDIA/vdiag/pkg/header"
	"github.com/NVIDIA/vdiag/pkg/part"
	"gopkg.in/yaml.v3"
)

// KindBillOfMaterials is the resource kind of the bill of materials.
const KindBillOfMaterials header.Kind = "BillOfMaterials"

var (
	//go:embed data/bom.yaml
	bomData []byte

	bomOnce   sync.Once
	cachedBOM *BillOfMaterials
	cachedErr error
)

// Requirement is the quantity of one part type a vehicle must carry.
type Requirement struct {
	Type     part.Type `json:"type" yaml:"type"`
	Quantity int       `json:"quantity" yaml:"quantity"`
}

// BillOfMaterials is the fixed set of part requirements.
type BillOfMaterials struct {
	header.Header `json:",inline" yaml:",inline"`

	Requirements []Requirement `json:"requirements" yaml:"requirements"`
}

// Load returns the embedded bill of materials. The data is parsed and
// validated once; later calls return the cached result.
func Load() (*BillOfMaterials, error) {
	bomOnce.Do(func() {
		cachedBOM, cachedErr = parse(bomData)
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedBOM == nil {
		return nil, errors.New(errors.ErrCodeInternal, "bill of materials not initialized")
	}
	return cachedBOM, nil
}

func parse(data []byte) (*BillOfMaterials, error) {
	var b BillOfMaterials
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to parse bill of materials", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	b.Requirements = b.ordered()
	return &b, nil
}

// validate checks that every declared part type appears exactly once with a
// positive quantity.
func (b *BillOfMaterials) validate() error {
	seen := make(map[part.Type]bool, len(b.Requirements))
	for _, r := range b.Requirements {
		if !r.Type.IsValid() {
			return errors.New(errors.ErrCodeInternal,
				fmt.Sprintf("bill of materials: invalid part type %q", r.Type))
		}
		if seen[r.Type] {
			return errors.New(errors.ErrCodeInternal,
				fmt.Sprintf("bill of materials: duplicate part type %s", r.Type))
		}
		if r.Quantity < 1 {
			return errors.New(errors.ErrCodeInternal,
				fmt.Sprintf("bill of materials: quantity for %s must be positive, got %d", r.Type, r.Quantity))
		}
		seen[r.Type] = true
	}
	for _, t := range part.Types {
		if !seen[t] {
			return errors.New(errors.ErrCodeInternal,
				fmt.Sprintf("bill of materials: missing part type %s", t))
		}
	}
	return nil
}

// ordered returns the requirements in part type declaration order.
func (b *BillOfMaterials) ordered() []Requirement {
	out := make([]Requirement, 0, len(part.Types))
	for _, t := range part.Types {
		out = append(out, Requirement{Type: t, Quantity: b.Quantity(t)})
	}
	return out
}

// Quantity returns the required quantity of t, or 0 for unknown types.
func (b *BillOfMaterials) Quantity(t part.Type) int {
	for _, r := range b.Requirements {
		if r.Type == t {
			return r.Quantity
		}
	}
	return 0
}
