package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderColors is the fixed palette a folder color must come from.
var FolderColors = []string{
	"#EF4444", // red
	"#F97316", // orange
	"#EAB308", // yellow
	"#22C55E", // green
	"#3B82F6", // blue
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#64748B", // slate
}

// ValidFolderColor reports whether the color is in the palette.
func ValidFolderColor(color string) bool {
	for _, c := range FolderColors {
		if c == color {
			return true
		}
	}
	return false
}

// Folder groups saved trades for one user. Deleting a folder moves its
// trades back to uncategorized; it never deletes them.
type Folder struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Color     string         `gorm:"size:10;not null" json:"color"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Trades []Trade `gorm:"foreignKey:FolderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new folder
func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Folder model
func (Folder) TableName() string {
	return "folders"
}
