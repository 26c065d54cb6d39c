package repository

import (
	"context"
	"errors"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	domainRepo "github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scanUsageRepository struct {
	db *gorm.DB
}

// NewScanUsageRepository creates a new scan usage repository
func NewScanUsageRepository(db *gorm.DB) domainRepo.ScanUsageRepository {
	return &scanUsageRepository{db: db}
}

func (r *scanUsageRepository) CountForDay(ctx context.Context, userID uuid.UUID, day string) (int, error) {
	var usage entity.ScanUsage
	err := r.db.WithContext(ctx).
		First(&usage, "user_id = ? AND day = ?", userID, day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return usage.Count, nil
}

// Increment uses an upsert so concurrent scans on the same day never lose
// counts or violate the (user_id, day) unique index.
func (r *scanUsageRepository) Increment(ctx context.Context, userID uuid.UUID, day string) error {
	usage := entity.ScanUsage{
		UserID: userID,
		Day:    day,
		Count:  1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("scan_usage.count + 1")}),
	}).Create(&usage).Error
}
