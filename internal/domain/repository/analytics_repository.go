package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeStats are aggregates over a user's saved trades.
type TradeStats struct {
	TradeCount    int64           `json:"trade_count"`
	ItemTotalSum  decimal.Decimal `json:"item_total_sum"`
	TradeTotalSum decimal.Decimal `json:"trade_total_sum"`
	CashTotalSum  decimal.Decimal `json:"cash_total_sum"`
	FolderCount   int64           `json:"folder_count"`
	UnfiledTrades int64           `json:"unfiled_trades"`
}

// CoinFlipStats are aggregates over a user's recorded coin flips.
type CoinFlipStats struct {
	FlipCount  int64 `json:"flip_count"`
	BuyerWins  int64 `json:"buyer_wins"`
	SellerWins int64 `json:"seller_wins"`
}

// AnalyticsRepository defines the interface for dashboard aggregation queries.
type AnalyticsRepository interface {
	TradeStats(ctx context.Context, userID uuid.UUID) (*TradeStats, error)
	CoinFlipStats(ctx context.Context, userID uuid.UUID) (*CoinFlipStats, error)
}
