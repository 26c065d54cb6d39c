package calculator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLedgerAdd(t *testing.T) {
	l := NewLedger()

	item, ok := l.Add("Charizard", dec("120.50"))
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if item.ID == uuid.Nil {
		t.Error("expected a generated item ID")
	}
	if l.Len() != 1 {
		t.Errorf("expected 1 item, got %d", l.Len())
	}

	// Zero is a valid price
	if _, ok := l.Add("", decimal.Zero); !ok {
		t.Error("expected zero-price add to succeed")
	}

	// Negative prices are rejected
	if _, ok := l.Add("Bad", dec("-1")); ok {
		t.Error("expected negative-price add to fail")
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 items after rejected add, got %d", l.Len())
	}
}

func TestLedgerRemoveIsIdempotent(t *testing.T) {
	l := NewLedger()
	item, _ := l.Add("Pikachu", dec("5"))

	l.Remove(item.ID)
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d items", l.Len())
	}

	// Removing again, or removing an unknown ID, is a no-op
	l.Remove(item.ID)
	l.Remove(uuid.New())
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d items", l.Len())
	}
}

func TestLedgerSetPrice(t *testing.T) {
	l := NewLedger()
	item, _ := l.Add("Mewtwo", dec("10"))

	if !l.SetPrice(item.ID, dec("25.99")) {
		t.Fatal("expected price update to succeed")
	}
	if got := l.Items()[0].Price; !got.Equal(dec("25.99")) {
		t.Errorf("expected 25.99, got %s", got)
	}

	if l.SetPrice(item.ID, dec("-3")) {
		t.Error("expected negative price update to fail")
	}
	if l.SetPrice(uuid.New(), dec("1")) {
		t.Error("expected update of unknown ID to fail")
	}
	if l.Len() != 1 {
		t.Errorf("unknown-ID update must not create items, got %d", l.Len())
	}
}

func TestLedgerSetPercentages(t *testing.T) {
	l := NewLedger()
	item, _ := l.Add("Blastoise", dec("40"))

	tp := dec("95")
	cp := dec("85")
	if !l.SetPercentages(item.ID, &tp, &cp) {
		t.Fatal("expected override to succeed")
	}
	got := l.Items()[0]
	if got.CustomTradePercent == nil || !got.CustomTradePercent.Equal(tp) {
		t.Errorf("expected trade override 95, got %v", got.CustomTradePercent)
	}

	// Out-of-range values are rejected without changing state
	bad := dec("101")
	if l.SetPercentages(item.ID, &bad, nil) {
		t.Error("expected out-of-range override to fail")
	}
	if got := l.Items()[0]; got.CustomTradePercent == nil {
		t.Error("rejected override must not clear existing state")
	}

	// Passing nil for both clears the override
	if !l.SetPercentages(item.ID, nil, nil) {
		t.Fatal("expected clear to succeed")
	}
	got = l.Items()[0]
	if got.CustomTradePercent != nil || got.CustomCashPercent != nil {
		t.Error("expected overrides to be cleared")
	}
}

func TestLedgerClear(t *testing.T) {
	l := NewLedger()
	l.Add("A", dec("1"))
	l.Add("B", dec("2"))

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d", l.Len())
	}
	// Clearing an empty ledger is a no-op
	l.Clear()
}

func TestLedgerItemsReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.Add("A", dec("1"))

	items := l.Items()
	items[0].Price = dec("999")

	if got := l.Items()[0].Price; !got.Equal(dec("1")) {
		t.Errorf("mutating the returned slice must not affect the ledger, got %s", got)
	}
}

func TestLedgerInsertionOrder(t *testing.T) {
	l := NewLedger()
	l.Add("first", dec("1"))
	second, _ := l.Add("second", dec("2"))
	l.Add("third", dec("3"))

	l.Remove(second.ID)

	items := l.Items()
	if items[0].Name != "first" || items[1].Name != "third" {
		t.Errorf("expected [first third], got [%s %s]", items[0].Name, items[1].Name)
	}
}
