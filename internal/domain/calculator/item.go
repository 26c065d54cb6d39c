package calculator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a single priced card in the calculator ledger. The custom
// percentages, when set, override the global trade/cash percentages for
// this item only. JSON field names match the trade snapshot wire format.
type LineItem struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"cardName,omitempty"`
	Price              decimal.Decimal  `json:"price"`
	CustomTradePercent *decimal.Decimal `json:"customTradePercent,omitempty"`
	CustomCashPercent  *decimal.Decimal `json:"customCashPercent,omitempty"`
}

// EffectiveTradePercent returns the item's trade percentage, falling back
// to the global value when no override is set.
func (i *LineItem) EffectiveTradePercent(global decimal.Decimal) decimal.Decimal {
	if i.CustomTradePercent != nil {
		return *i.CustomTradePercent
	}
	return global
}

// EffectiveCashPercent returns the item's cash percentage, falling back
// to the global value when no override is set.
func (i *LineItem) EffectiveCashPercent(global decimal.Decimal) decimal.Decimal {
	if i.CustomCashPercent != nil {
		return *i.CustomCashPercent
	}
	return global
}

// ValidPercent reports whether a percentage is within [0,100].
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(decimal.NewFromInt(100))
}
