package repository

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	domainRepo "github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TradeStats(ctx context.Context, userID uuid.UUID) (*domainRepo.TradeStats, error) {
	var stats domainRepo.TradeStats

	err := r.db.WithContext(ctx).Model(&entity.Trade{}).
		Select("COUNT(*) as trade_count, COALESCE(SUM(item_total), 0) as item_total_sum, COALESCE(SUM(trade_total), 0) as trade_total_sum, COALESCE(SUM(cash_total), 0) as cash_total_sum").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.Folder{}).
		Where("user_id = ?", userID).
		Count(&stats.FolderCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.Trade{}).
		Where("user_id = ? AND folder_id IS NULL", userID).
		Count(&stats.UnfiledTrades).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *analyticsRepository) CoinFlipStats(ctx context.Context, userID uuid.UUID) (*domainRepo.CoinFlipStats, error) {
	var stats domainRepo.CoinFlipStats

	err := r.db.WithContext(ctx).Model(&entity.CoinFlip{}).
		Select("COUNT(*) as flip_count, COUNT(*) FILTER (WHERE winner = 'buyer') as buyer_wins, COUNT(*) FILTER (WHERE winner = 'seller') as seller_wins").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
