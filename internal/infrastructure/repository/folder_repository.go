package repository

import (
	"context"
	"errors"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	domainRepo "github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type folderRepository struct {
	db *gorm.DB
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *gorm.DB) domainRepo.FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *folderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Folder, error) {
	var folder entity.Folder
	err := r.db.WithContext(ctx).
		First(&folder, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &folder, err
}

func (r *folderRepository) List(ctx context.Context, userID uuid.UUID) ([]entity.Folder, error) {
	var folders []entity.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&folders).Error
	return folders, err
}

func (r *folderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	return r.db.WithContext(ctx).Save(folder).Error
}

// DeleteAndReassign runs in a single transaction so trades are never left
// pointing at a deleted folder.
func (r *folderRepository) DeleteAndReassign(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Trade{}).
			Where("folder_id = ? AND user_id = ?", id, userID).
			Update("folder_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&entity.Folder{}, "id = ? AND user_id = ?", id, userID).Error
	})
}
