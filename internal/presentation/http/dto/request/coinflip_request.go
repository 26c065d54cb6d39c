package request

import "github.com/shopspring/decimal"

// RecordFlipRequest represents a coin flip log request
type RecordFlipRequest struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	WinPrice   decimal.Decimal `json:"win_price"`
	LosePrice  decimal.Decimal `json:"lose_price"`
	Winner     string          `json:"winner" binding:"required,oneof=buyer seller"`
	FinalPrice decimal.Decimal `json:"final_price"`
}
