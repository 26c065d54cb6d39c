package entity

import (
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trade is an immutable snapshot of a closed-out calculator session. Items
// are frozen into a JSON document at save time; the stored totals are
// re-derived server-side from those items before the row is written. After
// creation only the folder assignment may change.
type Trade struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName *string        `gorm:"size:255" json:"customer_name,omitempty"`
	Items        datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`

	ItemTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"item_total"`
	TradeTotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"trade_total"`
	CashTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cash_total"`

	// Global percentages at save time; per-item overrides live in Items.
	TradePercent decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"trade_percent"`
	CashPercent  decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"cash_percent"`

	TransactionType enum.TransactionType `gorm:"size:10;not null" json:"transaction_type"`
	FolderID        *uuid.UUID           `gorm:"type:uuid;index" json:"folder_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Folder *Folder `gorm:"foreignKey:FolderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new trade
func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Trade model
func (Trade) TableName() string {
	return "trades"
}
