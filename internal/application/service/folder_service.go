package service

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
)

// FolderService handles trade folder operations
type FolderService struct {
	folderRepo repository.FolderRepository
	tradeRepo  repository.TradeRepository
}

// NewFolderService creates a new folder service
func NewFolderService(folderRepo repository.FolderRepository, tradeRepo repository.TradeRepository) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
		tradeRepo:  tradeRepo,
	}
}

// CreateFolderInput represents the create folder input
type CreateFolderInput struct {
	UserID uuid.UUID
	Name   string
	Color  string
}

// CreateFolder creates a new folder. The color must come from the fixed
// palette.
func (s *FolderService) CreateFolder(ctx context.Context, input *CreateFolderInput) (*entity.Folder, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Folder name is required")
	}
	if !entity.ValidFolderColor(input.Color) {
		return nil, apperror.NewBadRequestError("Folder color must come from the palette")
	}

	folder := &entity.Folder{
		UserID: input.UserID,
		Name:   input.Name,
		Color:  input.Color,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// FolderWithCount pairs a folder with the number of trades filed in it.
type FolderWithCount struct {
	entity.Folder
	TradeCount int64 `json:"trade_count"`
}

// ListFolders lists the user's folders with per-folder trade counts
func (s *FolderService) ListFolders(ctx context.Context, userID uuid.UUID) ([]FolderWithCount, error) {
	folders, err := s.folderRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]FolderWithCount, 0, len(folders))
	for _, folder := range folders {
		count, err := s.tradeRepo.CountByFolder(ctx, userID, folder.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, FolderWithCount{Folder: folder, TradeCount: count})
	}
	return out, nil
}

// UpdateFolderInput represents the update folder input
type UpdateFolderInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Name   *string
	Color  *string
}

// UpdateFolder renames or recolors a folder
func (s *FolderService) UpdateFolder(ctx context.Context, input *UpdateFolderInput) (*entity.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NewNotFoundError("Folder")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Folder name is required")
		}
		folder.Name = *input.Name
	}
	if input.Color != nil {
		if !entity.ValidFolderColor(*input.Color) {
			return nil, apperror.NewBadRequestError("Folder color must come from the palette")
		}
		folder.Color = *input.Color
	}

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// DeleteFolder deletes a folder and moves its trades back to uncategorized
func (s *FolderService) DeleteFolder(ctx context.Context, userID, id uuid.UUID) error {
	folder, err := s.folderRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NewNotFoundError("Folder")
	}
	return s.folderRepo.DeleteAndReassign(ctx, userID, id)
}
