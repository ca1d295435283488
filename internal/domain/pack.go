package domain

// Pack is a purchasable catalog entry. NumberOfUnitInPackXPMultiplier holds
// one multiplier per veterancy level; NumberOfCards caps how many times the
// pack may be selected in the same deck.
type Pack struct {
	PackDescriptor                 string    `json:"packDescriptor" yaml:"packDescriptor"`
	UnitDescriptor                 string    `json:"unitDescriptor" yaml:"unitDescriptor"`
	NumberOfUnitsInPack            float64   `json:"numberOfUnitsInPack" yaml:"numberOfUnitsInPack"`
	NumberOfUnitInPackXPMultiplier []float64 `json:"numberOfUnitInPackXPMultiplier" yaml:"numberOfUnitInPackXPMultiplier"`
	NumberOfCards                  int       `json:"numberOfCards" yaml:"numberOfCards"`
	AvailableTransports            []string  `json:"availableTransports,omitempty" yaml:"availableTransports,omitempty"`
}

// VeterancyLevels is the number of veterancy levels this pack can be bought at.
func (p Pack) VeterancyLevels() int {
	return len(p.NumberOfUnitInPackXPMultiplier)
}

// OffersTransport reports whether the pack lists the given transport unit.
func (p Pack) OffersTransport(descriptor string) bool {
	for _, t := range p.AvailableTransports {
		if t == descriptor || ShortDescriptor(t) == ShortDescriptor(descriptor) {
			return true
		}
	}
	return false
}

// Validate checks the pack's catalog data.
func (p Pack) Validate() error {
	if p.PackDescriptor == "" {
		return NewValidationError("pack", "packDescriptor", ErrEmptyDescriptor)
	}
	if p.UnitDescriptor == "" {
		return NewValidationError("pack", "unitDescriptor", ErrEmptyDescriptor)
	}
	if p.NumberOfUnitsInPack < 0 {
		return NewValidationError("pack", "numberOfUnitsInPack", ErrNegativeQuantity)
	}
	if len(p.NumberOfUnitInPackXPMultiplier) == 0 {
		return NewValidationError("pack", "numberOfUnitInPackXPMultiplier", ErrEmptyMultipliers)
	}
	if p.NumberOfCards < 0 {
		return NewValidationError("pack", "numberOfCards", ErrNegativeCards)
	}
	return nil
}
