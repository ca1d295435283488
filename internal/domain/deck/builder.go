package deck

import (
	"fmt"

	"github.com/phrazzld/armoury-api/internal/domain"
)

// Builder is one deck being edited: a read-only division and unit map plus
// the ledger of selections made from them.
type Builder struct {
	division *domain.Division
	units    domain.UnitMap
	ledger   *Ledger
}

// NewBuilder starts an empty deck for the division.
func NewBuilder(division *domain.Division, units domain.UnitMap, policy Policy) *Builder {
	b := &Builder{
		division: division,
		units:    units,
	}
	b.ledger = NewLedger(policy, b)
	return b
}

// Division returns the division the deck is built from.
func (b *Builder) Division() *domain.Division {
	return b.division
}

// Units returns the unit map used to resolve packs.
func (b *Builder) Units() domain.UnitMap {
	return b.units
}

// Ledger returns the deck's ledger.
func (b *Builder) Ledger() *Ledger {
	return b.ledger
}

// Add buys a pack into the deck.
func (b *Builder) Add(intent PurchaseIntent) (SelectedPackConfig, error) {
	return b.ledger.Add(intent)
}

// Remove drops a selection. Unknown ids are ignored.
func (b *Builder) Remove(id int) bool {
	return b.ledger.Remove(id)
}

// CheckPurchase implements LimitChecker.
func (b *Builder) CheckPurchase(intent PurchaseIntent, current []SelectedPackConfig) error {
	if CountPack(current, intent.Pack.PackDescriptor) >= intent.Pack.NumberOfCards {
		return fmt.Errorf("%w: %s allows %d", ErrCardLimitReached,
			intent.Pack.PackDescriptor, intent.Pack.NumberOfCards)
	}

	groups := GroupSelections(b.division, current)
	category := Classify(intent.Unit.FactoryDescriptor)
	if _, ok := groups.Buckets[category]; !ok {
		category = CategoryUndefined
	}
	row, _ := b.division.Row(string(category))
	if EvaluateCategory(row, groups.Get(category)).Full() {
		return fmt.Errorf("%w: %s", ErrCategoryFull, category)
	}
	return nil
}

// ArmouryPack is a catalog pack with its resolved unit and purchase state.
type ArmouryPack struct {
	Pack        domain.Pack `json:"pack"`
	Unit        domain.Unit `json:"unit"`
	Quantities  []float64   `json:"quantities"`
	Selected    int         `json:"selected"`
	Purchasable bool        `json:"purchasable"`
	CanPurchase bool        `json:"can_purchase"`
}

// ArmouryCategory is one category of the armoury.
type ArmouryCategory struct {
	Slots SlotState     `json:"slots"`
	Packs []ArmouryPack `json:"packs"`
}

// Armoury is the catalog of the division grouped by category, annotated with
// what can still be bought given the current selections.
type Armoury struct {
	Division   string            `json:"division"`
	Categories []ArmouryCategory `json:"categories"`
	Unresolved []domain.Pack     `json:"unresolved,omitempty"`
}

// Armoury builds the armoury view from the current ledger snapshot.
func (b *Builder) Armoury() Armoury {
	selections := b.ledger.Selections()
	packs := GroupPacks(b.division, b.units)
	slots := EvaluateSlots(b.division, GroupSelections(b.division, selections))

	view := Armoury{
		Division:   b.division.Descriptor,
		Categories: make([]ArmouryCategory, 0, len(packs.Categories)),
		Unresolved: packs.Unresolved,
	}
	for i, c := range packs.Categories {
		category := ArmouryCategory{Slots: slots[i], Packs: []ArmouryPack{}}
		for _, p := range packs.Get(c) {
			unit, _ := b.units.Resolve(p.UnitDescriptor)
			category.Packs = append(category.Packs, ArmouryPack{
				Pack:        p,
				Unit:        unit,
				Quantities:  PackQuantities(p),
				Selected:    CountPack(selections, p.PackDescriptor),
				Purchasable: Purchasable(p, selections),
				CanPurchase: CanPurchase(p, slots[i], selections),
			})
		}
		view.Categories = append(view.Categories, category)
	}
	return view
}

// DeckCategory is one category of the built deck.
type DeckCategory struct {
	Slots      SlotState            `json:"slots"`
	Selections []SelectedPackConfig `json:"selections"`
}

// Deck is the built deck grouped by category.
type Deck struct {
	Division   string         `json:"division"`
	Categories []DeckCategory `json:"categories"`
	Total      int            `json:"total"`
}

// Deck builds the deck view from the current ledger snapshot.
func (b *Builder) Deck() Deck {
	selections := b.ledger.Selections()
	groups := GroupSelections(b.division, selections)
	slots := EvaluateSlots(b.division, groups)

	view := Deck{
		Division:   b.division.Descriptor,
		Categories: make([]DeckCategory, 0, len(groups.Categories)),
		Total:      len(selections),
	}
	for i, c := range groups.Categories {
		view.Categories = append(view.Categories, DeckCategory{
			Slots:      slots[i],
			Selections: groups.Get(c),
		})
	}
	return view
}
