package repository

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/google/uuid"
)

// FolderRepository defines the interface for folder data access.
type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Folder, error)
	List(ctx context.Context, userID uuid.UUID) ([]entity.Folder, error)
	Update(ctx context.Context, folder *entity.Folder) error
	// DeleteAndReassign deletes the folder and, in the same transaction,
	// moves every trade referencing it back to uncategorized. The trades
	// themselves are never deleted.
	DeleteAndReassign(ctx context.Context, userID, id uuid.UUID) error
}
