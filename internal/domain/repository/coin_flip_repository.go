package repository

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/google/uuid"
)

// CoinFlipRepository defines the interface for coin flip data access.
type CoinFlipRepository interface {
	Create(ctx context.Context, flip *entity.CoinFlip) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CoinFlip, error)
}
