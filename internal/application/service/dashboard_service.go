package service

import (
	"context"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/google/uuid"
)

// DashboardService aggregates trade and coin-flip statistics for a user
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	scanUsageRepo repository.ScanUsageRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, scanUsageRepo repository.ScanUsageRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		scanUsageRepo: scanUsageRepo,
	}
}

// DashboardStats bundles all dashboard aggregates in one payload
type DashboardStats struct {
	Trades     *repository.TradeStats    `json:"trades"`
	CoinFlips  *repository.CoinFlipStats `json:"coin_flips"`
	ScansToday int                       `json:"scans_today"`
}

// GetStats returns the user's dashboard statistics
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	tradeStats, err := s.analyticsRepo.TradeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipStats, err := s.analyticsRepo.CoinFlipStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	scansToday, err := s.scanUsageRepo.CountForDay(ctx, userID, entity.ScanDay(time.Now()))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Trades:     tradeStats,
		CoinFlips:  flipStats,
		ScansToday: scansToday,
	}, nil
}
