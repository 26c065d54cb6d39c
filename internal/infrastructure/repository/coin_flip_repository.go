package repository

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	domainRepo "github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type coinFlipRepository struct {
	db *gorm.DB
}

// NewCoinFlipRepository creates a new coin flip repository
func NewCoinFlipRepository(db *gorm.DB) domainRepo.CoinFlipRepository {
	return &coinFlipRepository{db: db}
}

func (r *coinFlipRepository) Create(ctx context.Context, flip *entity.CoinFlip) error {
	return r.db.WithContext(ctx).Create(flip).Error
}

func (r *coinFlipRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CoinFlip, error) {
	var flips []entity.CoinFlip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&flips).Error
	return flips, err
}
