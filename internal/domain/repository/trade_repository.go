package repository

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/pkg/pagination"
	"github.com/google/uuid"
)

// TradeRepository defines the interface for trade snapshot data access.
// All queries are scoped to the owning user.
type TradeRepository interface {
	Create(ctx context.Context, trade *entity.Trade) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Trade, error)
	List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, params *pagination.PaginationParams) ([]entity.Trade, int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// UpdateFolder moves a trade into a folder, or out of any folder when
	// folderID is nil. This is the only permitted mutation of a saved trade.
	UpdateFolder(ctx context.Context, userID, id uuid.UUID, folderID *uuid.UUID) error
	CountByFolder(ctx context.Context, userID, folderID uuid.UUID) (int64, error)
}
