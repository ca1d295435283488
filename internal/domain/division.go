package domain

import "fmt"

// MatrixRow is one slot category of a division. The i-th activation cost is
// the price of the (i+1)-th slot, so the row length is the slot limit.
type MatrixRow struct {
	Name            string `json:"name" yaml:"name"`
	ActivationCosts []int  `json:"activationCosts" yaml:"activationCosts"`
}

// MaxSlots is the number of slots the category can hold.
func (r MatrixRow) MaxSlots() int {
	return len(r.ActivationCosts)
}

// CostMatrix is the ordered list of slot categories of a division.
type CostMatrix struct {
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Matrix []MatrixRow `json:"matrix" yaml:"matrix"`
}

// Division is the catalog a deck is built from.
type Division struct {
	Descriptor string     `json:"descriptor" yaml:"descriptor"`
	CostMatrix CostMatrix `json:"costMatrix" yaml:"costMatrix"`
	Packs      []Pack     `json:"packs" yaml:"packs"`
}

// Row returns the matrix row with the given category name.
func (d *Division) Row(name string) (MatrixRow, bool) {
	for _, row := range d.CostMatrix.Matrix {
		if row.Name == name {
			return row, true
		}
	}
	return MatrixRow{}, false
}

// Pack returns the pack with the given descriptor.
func (d *Division) Pack(packDescriptor string) (Pack, bool) {
	for _, p := range d.Packs {
		if p.PackDescriptor == packDescriptor {
			return p, true
		}
	}
	return Pack{}, false
}

// Validate checks the division, its cost matrix and every pack.
func (d *Division) Validate() error {
	if d.Descriptor == "" {
		return NewValidationError("division", "descriptor", ErrEmptyDescriptor)
	}

	seen := make(map[string]struct{}, len(d.CostMatrix.Matrix))
	for i, row := range d.CostMatrix.Matrix {
		if row.Name == "" {
			return NewValidationError("division", fmt.Sprintf("costMatrix.matrix[%d].name", i), ErrEmptyDescriptor)
		}
		if _, dup := seen[row.Name]; dup {
			return NewValidationError("division", fmt.Sprintf("costMatrix.matrix[%d].name", i), ErrDuplicateCategory)
		}
		seen[row.Name] = struct{}{}
		for _, cost := range row.ActivationCosts {
			if cost < 0 {
				return NewValidationError("division", fmt.Sprintf("costMatrix.matrix[%d].activationCosts", i), ErrNegativeActivationCost)
			}
		}
	}

	packs := make(map[string]struct{}, len(d.Packs))
	for i, p := range d.Packs {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("division %s pack %d: %w", d.Descriptor, i, err)
		}
		if _, dup := packs[p.PackDescriptor]; dup {
			return fmt.Errorf("division %s pack %d: %w", d.Descriptor, i,
				NewValidationError("pack", "packDescriptor", ErrDuplicatePack))
		}
		packs[p.PackDescriptor] = struct{}{}
	}
	return nil
}
