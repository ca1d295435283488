package deck

import "github.com/phrazzld/armoury-api/internal/domain"

// SlotState is the slot usage of one category.
type SlotState struct {
	Category  Category `json:"category"`
	UsedSlots int      `json:"used_slots"`
	MaxSlots  int      `json:"max_slots"`
	// NextSlotCost is nil once the category is full.
	NextSlotCost *int `json:"next_slot_cost"`
	// UnitCount is the number of units fielded by the category's selections.
	UnitCount int `json:"unit_count"`
}

// Full reports whether no further slot can be activated.
func (s SlotState) Full() bool {
	return s.UsedSlots >= s.MaxSlots
}

// EvaluateCategory computes the slot state of a category from its row and
// the selections grouped into it.
func EvaluateCategory(row domain.MatrixRow, selections []SelectedPackConfig) SlotState {
	state := SlotState{
		Category:  Category(row.Name),
		UsedSlots: len(selections),
		MaxSlots:  row.MaxSlots(),
	}
	if state.UsedSlots < state.MaxSlots {
		cost := row.ActivationCosts[state.UsedSlots]
		state.NextSlotCost = &cost
	}
	for _, s := range selections {
		state.UnitCount += UnitCount(s.Quantity())
	}
	return state
}

// EvaluateSlots returns the slot state of every category of the grouping, in
// grouping order. Categories without a matrix row (CategoryUndefined) have no
// slots.
func EvaluateSlots(division *domain.Division, groups SelectionGroups) []SlotState {
	states := make([]SlotState, 0, len(groups.Categories))
	for _, c := range groups.Categories {
		row, ok := division.Row(string(c))
		if !ok {
			row = domain.MatrixRow{Name: string(c)}
		}
		states = append(states, EvaluateCategory(row, groups.Get(c)))
	}
	return states
}

// CountPack counts the selections bought from the given pack.
func CountPack(selections []SelectedPackConfig, packDescriptor string) int {
	n := 0
	for _, s := range selections {
		if s.Pack.PackDescriptor == packDescriptor {
			n++
		}
	}
	return n
}

// Purchasable reports whether the pack is still under its card limit. It
// ignores category slots; see CanPurchase.
func Purchasable(pack domain.Pack, selections []SelectedPackConfig) bool {
	return CountPack(selections, pack.PackDescriptor) < pack.NumberOfCards
}

// CanPurchase combines the card limit of the pack with the slot state of its
// category. A pack is buyable only when neither limit is reached.
func CanPurchase(pack domain.Pack, slots SlotState, selections []SelectedPackConfig) bool {
	return Purchasable(pack, selections) && !slots.Full()
}
