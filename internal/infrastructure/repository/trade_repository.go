package repository

import (
	"context"
	"errors"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	domainRepo "github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *gorm.DB) domainRepo.TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *tradeRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Trade, error) {
	var trade entity.Trade
	err := r.db.WithContext(ctx).
		First(&trade, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &trade, err
}

func (r *tradeRepository) List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, params *pagination.PaginationParams) ([]entity.Trade, int64, error) {
	var trades []entity.Trade
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Trade{}).Where("user_id = ?", userID)
	if folderID != nil {
		query = query.Where("folder_id = ?", *folderID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&trades).Error
	if err != nil {
		return nil, 0, err
	}

	return trades, total, nil
}

func (r *tradeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Trade{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *tradeRepository) UpdateFolder(ctx context.Context, userID, id uuid.UUID, folderID *uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Trade{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("folder_id", folderID).Error
}

func (r *tradeRepository) CountByFolder(ctx context.Context, userID, folderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Trade{}).
		Where("user_id = ? AND folder_id = ?", userID, folderID).
		Count(&count).Error
	return count, err
}
