package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeItemRequest is one line item in a trade being saved. Field names
// match the calculator's wire format so clients submit items exactly as
// they render them.
type TradeItemRequest struct {
	ID                 uuid.UUID        `json:"id"`
	CardName           string           `json:"cardName"`
	Price              decimal.Decimal  `json:"price"`
	CustomTradePercent *decimal.Decimal `json:"customTradePercent"`
	CustomCashPercent  *decimal.Decimal `json:"customCashPercent"`
}

// SaveTradeRequest represents a save trade request
type SaveTradeRequest struct {
	CustomerName    *string            `json:"customer_name"`
	Items           []TradeItemRequest `json:"items" binding:"required,min=1"`
	TradePercent    decimal.Decimal    `json:"trade_percent"`
	CashPercent     decimal.Decimal    `json:"cash_percent"`
	TransactionType string             `json:"transaction_type" binding:"required,oneof=cash trade"`
	FolderID        *uuid.UUID         `json:"folder_id"`
}

// MoveTradeRequest represents a move-to-folder request. A null folder_id
// moves the trade back to uncategorized.
type MoveTradeRequest struct {
	FolderID *uuid.UUID `json:"folder_id"`
}
