package service

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CoinFlipService records coin-flip negotiation outcomes
type CoinFlipService struct {
	flipRepo repository.CoinFlipRepository
}

// NewCoinFlipService creates a new coin flip service
func NewCoinFlipService(flipRepo repository.CoinFlipRepository) *CoinFlipService {
	return &CoinFlipService{flipRepo: flipRepo}
}

// RecordFlipInput represents the record flip input
type RecordFlipInput struct {
	UserID     uuid.UUID
	BasePrice  decimal.Decimal
	WinPrice   decimal.Decimal
	LosePrice  decimal.Decimal
	Winner     enum.FlipWinner
	FinalPrice decimal.Decimal
}

// RecordFlip logs a completed coin flip
func (s *CoinFlipService) RecordFlip(ctx context.Context, input *RecordFlipInput) (*entity.CoinFlip, error) {
	if !input.Winner.IsValid() {
		return nil, apperror.NewBadRequestError("Winner must be buyer or seller")
	}
	if input.BasePrice.IsNegative() || input.WinPrice.IsNegative() || input.LosePrice.IsNegative() || input.FinalPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	flip := &entity.CoinFlip{
		UserID:     input.UserID,
		BasePrice:  input.BasePrice,
		WinPrice:   input.WinPrice,
		LosePrice:  input.LosePrice,
		Winner:     input.Winner,
		FinalPrice: input.FinalPrice,
	}

	if err := s.flipRepo.Create(ctx, flip); err != nil {
		return nil, err
	}

	return flip, nil
}

// RecentFlips returns the user's most recent coin flips
func (s *CoinFlipService) RecentFlips(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CoinFlip, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.flipRepo.ListRecent(ctx, userID, limit)
}
