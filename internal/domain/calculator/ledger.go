package calculator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is an ordered collection of line items. Insertion order is display
// order. A ledger belongs to a single calculator session and is never shared.
type Ledger struct {
	items []LineItem
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Items returns the line items in insertion order. The returned slice is a
// copy; mutating it does not affect the ledger.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Add appends a new item with a fresh ID. The zero value is a valid price;
// negative prices are rejected and the item is not added.
func (l *Ledger) Add(name string, price decimal.Decimal) (LineItem, bool) {
	if price.IsNegative() {
		return LineItem{}, false
	}
	item := LineItem{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
	}
	l.items = append(l.items, item)
	return item, true
}

// Remove deletes the item with the given ID. Removing an unknown ID is a
// no-op; Remove is idempotent.
func (l *Ledger) Remove(id uuid.UUID) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// SetPrice updates an item's price. Returns false when the ID does not
// exist or the price is negative; it never creates a new item.
func (l *Ledger) SetPrice(id uuid.UUID, price decimal.Decimal) bool {
	if price.IsNegative() {
		return false
	}
	item := l.find(id)
	if item == nil {
		return false
	}
	item.Price = price
	return true
}

// SetName updates an item's name. Returns false when the ID does not exist.
func (l *Ledger) SetName(id uuid.UUID, name string) bool {
	item := l.find(id)
	if item == nil {
		return false
	}
	item.Name = name
	return true
}

// SetPercentages sets or clears an item's percentage overrides. Passing nil
// for both clears any override and reverts the item to the global
// percentages. Values outside [0,100] are rejected without changing state.
func (l *Ledger) SetPercentages(id uuid.UUID, tradePercent, cashPercent *decimal.Decimal) bool {
	if tradePercent != nil && !ValidPercent(*tradePercent) {
		return false
	}
	if cashPercent != nil && !ValidPercent(*cashPercent) {
		return false
	}
	item := l.find(id)
	if item == nil {
		return false
	}
	item.CustomTradePercent = tradePercent
	item.CustomCashPercent = cashPercent
	return true
}

// Clear removes all items. Clearing an empty ledger is a no-op.
func (l *Ledger) Clear() {
	l.items = nil
}

func (l *Ledger) find(id uuid.UUID) *LineItem {
	for i := range l.items {
		if l.items[i].ID == id {
			return &l.items[i]
		}
	}
	return nil
}
