package entity

import (
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a dealer account. The subscription fields mirror what the
// billing webhook and trial activation maintain; entitlement derivation
// happens in the entitlement package, never here.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName  string    `gorm:"size:255;not null" json:"first_name"`
	LastName   string    `gorm:"size:255;not null" json:"last_name"`
	Email      string    `gorm:"size:255;unique;not null" json:"email"`
	Password   string    `gorm:"size:255" json:"-"`
	Provider   string    `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string   `gorm:"size:255" json:"-"`
	Photo      *string   `gorm:"size:255" json:"photo,omitempty"`
	StoreName  *string   `gorm:"size:255" json:"store_name,omitempty"`

	SubscriptionTier    enum.SubscriptionTier `gorm:"size:20;default:'free'" json:"subscription_tier"`
	SubscriptionExpires *time.Time            `json:"subscription_expires,omitempty"`
	TrialEndDate        *time.Time            `json:"trial_end_date,omitempty"`
	TrialUsed           bool                  `gorm:"default:false" json:"trial_used"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Trades    []Trade    `gorm:"foreignKey:UserID" json:"-"`
	Folders   []Folder   `gorm:"foreignKey:UserID" json:"-"`
	CoinFlips []CoinFlip `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
