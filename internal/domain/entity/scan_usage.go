package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScanUsage is the per-user daily scan counter. Day is a UTC calendar date;
// one row per user per day, incremented atomically on successful scans.
// Pro users never touch this table.
type ScanUsage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_scan_usage_user_day" json:"user_id"`
	Day       string    `gorm:"size:10;not null;uniqueIndex:idx_scan_usage_user_day" json:"day"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new usage row
func (s *ScanUsage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ScanUsage model
func (ScanUsage) TableName() string {
	return "scan_usage"
}

// ScanDay formats a timestamp as the UTC day key used by ScanUsage.
func ScanDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
