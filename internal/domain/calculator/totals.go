package calculator

import "github.com/shopspring/decimal"

// Totals are the derived running totals for a set of line items. They are
// always recomputed from the items and percentages, never stored as state.
type Totals struct {
	ItemTotal  decimal.Decimal `json:"itemTotal"`
	TradeTotal decimal.Decimal `json:"tradeTotal"`
	CashTotal  decimal.Decimal `json:"cashTotal"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives item/trade/cash totals from the given items and the
// global trade/cash percentages. Per-item overrides win over the global
// values. Accumulation happens at full precision; rounding to two decimal
// places is applied once at the end so per-item rounding error cannot
// compound across a large ledger. An empty item set yields zero totals.
func ComputeTotals(items []LineItem, globalTradePercent, globalCashPercent decimal.Decimal) Totals {
	itemTotal := decimal.Zero
	tradeTotal := decimal.Zero
	cashTotal := decimal.Zero

	for i := range items {
		price := items[i].Price
		itemTotal = itemTotal.Add(price)
		tradeTotal = tradeTotal.Add(price.Mul(items[i].EffectiveTradePercent(globalTradePercent)).Div(oneHundred))
		cashTotal = cashTotal.Add(price.Mul(items[i].EffectiveCashPercent(globalCashPercent)).Div(oneHundred))
	}

	return Totals{
		ItemTotal:  itemTotal.Round(2),
		TradeTotal: tradeTotal.Round(2),
		CashTotal:  cashTotal.Round(2),
	}
}
