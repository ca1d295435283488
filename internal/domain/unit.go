package domain

import "strings"

// Unit is a catalog unit. FactoryDescriptor is the raw factory classification
// used to place the unit into a slot category.
type Unit struct {
	Descriptor        string `json:"descriptor" yaml:"descriptor"`
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	FactoryDescriptor string `json:"factoryDescriptor" yaml:"factoryDescriptor"`
}

// Validate checks that the unit can be referenced by packs.
func (u Unit) Validate() error {
	if u.Descriptor == "" {
		return NewValidationError("unit", "descriptor", ErrEmptyDescriptor)
	}
	return nil
}

// UnitMap indexes units by descriptor so packs only need to carry the
// descriptor of the unit they deploy.
type UnitMap map[string]Unit

// NewUnitMap builds a UnitMap keyed by each unit's descriptor. Later entries
// win on duplicate descriptors.
func NewUnitMap(units []Unit) UnitMap {
	m := make(UnitMap, len(units))
	for _, u := range units {
		m[u.Descriptor] = u
	}
	return m
}

// Resolve looks a unit up by descriptor. Pack descriptors may carry a path
// prefix ("Descriptor/Unit_M1A1"), so when the exact key is missing the last
// path segment is tried.
func (m UnitMap) Resolve(descriptor string) (Unit, bool) {
	if u, ok := m[descriptor]; ok {
		return u, true
	}
	name := ShortDescriptor(descriptor)
	if name == descriptor {
		return Unit{}, false
	}
	u, ok := m[name]
	return u, ok
}

// ShortDescriptor returns the last "/"-separated segment of a descriptor.
func ShortDescriptor(descriptor string) string {
	if i := strings.LastIndex(descriptor, "/"); i >= 0 {
		return descriptor[i+1:]
	}
	return descriptor
}
