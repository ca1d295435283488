package deck

import (
	"errors"
	"fmt"

	"github.com/phrazzld/armoury-api/internal/domain"
)

// Limit errors returned by Ledger.Add under PolicyStrict.
var (
	ErrCategoryFull     = errors.New("category has no free slot")
	ErrCardLimitReached = errors.New("pack card limit reached")
)

// Policy decides whether the ledger enforces slot and card limits on Add.
type Policy int

const (
	// PolicyAdvisory never rejects an Add. Limits are only reported by the
	// evaluator so callers can disable purchase affordances.
	PolicyAdvisory Policy = iota
	// PolicyStrict rejects an Add that would exceed a category's slot count
	// or a pack's card limit.
	PolicyStrict
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyAdvisory:
		return "advisory"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "advisory":
		return PolicyAdvisory, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyAdvisory, fmt.Errorf("unknown deck policy %q", s)
	}
}

// SelectedPackConfig is one pack bought into the deck.
type SelectedPackConfig struct {
	ID        int          `json:"id"`
	Unit      domain.Unit  `json:"unit"`
	Veterancy int          `json:"veterancy"`
	Transport *domain.Unit `json:"transport,omitempty"`
	Pack      domain.Pack  `json:"pack"`
}

// Category returns the slot category of the selected unit.
func (c SelectedPackConfig) Category() Category {
	return Classify(c.Unit.FactoryDescriptor)
}

// Quantity returns the pack quantity at the selected veterancy.
func (c SelectedPackConfig) Quantity() float64 {
	return QuantityAt(c.Pack, c.Veterancy)
}

// detached returns c with its own copy of the transport unit.
func (c SelectedPackConfig) detached() SelectedPackConfig {
	if c.Transport != nil {
		t := *c.Transport
		c.Transport = &t
	}
	return c
}

// PurchaseIntent carries what the caller wants to add. The caller guarantees
// that Pack.UnitDescriptor resolves to Unit.
type PurchaseIntent struct {
	Unit      domain.Unit
	Veterancy int
	Transport *domain.Unit
	Pack      domain.Pack
}

// LimitChecker validates a purchase against the current selections. It is
// consulted by the ledger only under PolicyStrict.
type LimitChecker interface {
	CheckPurchase(intent PurchaseIntent, current []SelectedPackConfig) error
}

// Ledger owns the ordered selections of a deck and allocates their ids.
// Ids start at 1, strictly increase and are never reused, even after the
// selection holding them is removed.
type Ledger struct {
	policy     Policy
	limits     LimitChecker
	lastID     int
	selections []SelectedPackConfig
}

// NewLedger creates an empty ledger. limits may be nil, in which case no
// limit is enforced regardless of policy.
func NewLedger(policy Policy, limits LimitChecker) *Ledger {
	return &Ledger{
		policy:     policy,
		limits:     limits,
		selections: []SelectedPackConfig{},
	}
}

// Policy returns the ledger's limit policy.
func (l *Ledger) Policy() Policy {
	return l.policy
}

// Add appends a new selection built from intent and returns it. Under
// PolicyStrict a purchase over a limit is rejected before an id is allocated.
func (l *Ledger) Add(intent PurchaseIntent) (SelectedPackConfig, error) {
	if l.policy == PolicyStrict && l.limits != nil {
		if err := l.limits.CheckPurchase(intent, l.selections); err != nil {
			return SelectedPackConfig{}, err
		}
	}

	l.lastID++
	config := SelectedPackConfig{
		ID:        l.lastID,
		Unit:      intent.Unit,
		Veterancy: intent.Veterancy,
		Transport: intent.Transport,
		Pack:      intent.Pack,
	}.detached()
	l.selections = append(l.selections, config)
	return config.detached(), nil
}

// Remove deletes the selection with the given id. Removing an unknown id is
// a no-op and reports false.
func (l *Ledger) Remove(id int) bool {
	for i, s := range l.selections {
		if s.ID != id {
			continue
		}
		next := make([]SelectedPackConfig, 0, len(l.selections)-1)
		next = append(next, l.selections[:i]...)
		next = append(next, l.selections[i+1:]...)
		l.selections = next
		return true
	}
	return false
}

// Get returns the selection with the given id.
func (l *Ledger) Get(id int) (SelectedPackConfig, bool) {
	for _, s := range l.selections {
		if s.ID == id {
			return s.detached(), true
		}
	}
	return SelectedPackConfig{}, false
}

// Selections returns a snapshot of the selections in insertion order.
// Transport units are copied, so callers may modify the result freely.
func (l *Ledger) Selections() []SelectedPackConfig {
	out := make([]SelectedPackConfig, len(l.selections))
	for i, s := range l.selections {
		out[i] = s.detached()
	}
	return out
}

// Len returns the number of selections.
func (l *Ledger) Len() int {
	return len(l.selections)
}

// LastID returns the most recently allocated id, or 0 if none was allocated.
func (l *Ledger) LastID() int {
	return l.lastID
}
