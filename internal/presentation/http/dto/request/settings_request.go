package request

import "github.com/shopspring/decimal"

// UpdateSettingsRequest represents an update settings request. Omitted
// fields keep their current values.
type UpdateSettingsRequest struct {
	TradePercent *decimal.Decimal `json:"trade_percent"`
	CashPercent  *decimal.Decimal `json:"cash_percent"`
}
