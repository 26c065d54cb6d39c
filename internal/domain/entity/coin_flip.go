package entity

import (
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CoinFlip records the outcome of a coin-flip negotiation. Clients log these
// fire-and-forget; a lost write is acceptable, a blocked flip is not.
type CoinFlip struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	BasePrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"base_price"`
	WinPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"win_price"`
	LosePrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"lose_price"`
	Winner     enum.FlipWinner `gorm:"size:10;not null" json:"winner"`
	FinalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"final_price"`
	CreatedAt  time.Time       `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new coin flip
func (c *CoinFlip) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CoinFlip model
func (CoinFlip) TableName() string {
	return "coin_flips"
}
