package service

import (
	"context"
	"testing"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
)

func folderFixture() (*FolderService, *fakeFolderRepo, *fakeTradeRepo) {
	trades := newFakeTradeRepo()
	folders := newFakeFolderRepo(trades)
	return NewFolderService(folders, trades), folders, trades
}

func TestCreateFolder(t *testing.T) {
	svc, _, _ := folderFixture()

	folder, err := svc.CreateFolder(context.Background(), &CreateFolderInput{
		UserID: uuid.New(),
		Name:   "Vintage",
		Color:  "#3B82F6",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder.ID == uuid.Nil {
		t.Error("expected folder to get an ID")
	}
}

func TestCreateFolderValidation(t *testing.T) {
	svc, _, _ := folderFixture()

	_, err := svc.CreateFolder(context.Background(), &CreateFolderInput{
		UserID: uuid.New(),
		Color:  "#3B82F6",
	})
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("expected bad request for empty name, got %v", err)
	}

	_, err = svc.CreateFolder(context.Background(), &CreateFolderInput{
		UserID: uuid.New(),
		Name:   "Vintage",
		Color:  "#123456",
	})
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("expected bad request for off-palette color, got %v", err)
	}
}

func TestListFoldersWithCounts(t *testing.T) {
	svc, folders, trades := folderFixture()
	userID := uuid.New()

	folder := &entity.Folder{UserID: userID, Name: "Vintage", Color: "#3B82F6"}
	_ = folders.Create(context.Background(), folder)

	for i := 0; i < 2; i++ {
		_ = trades.Create(context.Background(), &entity.Trade{UserID: userID, FolderID: &folder.ID})
	}
	_ = trades.Create(context.Background(), &entity.Trade{UserID: userID})

	out, err := svc.ListFolders(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 folder, got %d", len(out))
	}
	if out[0].TradeCount != 2 {
		t.Errorf("expected 2 filed trades, got %d", out[0].TradeCount)
	}
}

func TestUpdateFolder(t *testing.T) {
	svc, folders, _ := folderFixture()
	userID := uuid.New()

	folder := &entity.Folder{UserID: userID, Name: "Vintage", Color: "#3B82F6"}
	_ = folders.Create(context.Background(), folder)

	name := "Modern"
	color := "#22C55E"
	updated, err := svc.UpdateFolder(context.Background(), &UpdateFolderInput{
		UserID: userID,
		ID:     folder.ID,
		Name:   &name,
		Color:  &color,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Modern" || updated.Color != "#22C55E" {
		t.Errorf("update not applied: %+v", updated)
	}

	bad := "#000000"
	_, err = svc.UpdateFolder(context.Background(), &UpdateFolderInput{
		UserID: userID,
		ID:     folder.ID,
		Color:  &bad,
	})
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("expected bad request for off-palette color, got %v", err)
	}
}

func TestDeleteFolderReassignsTrades(t *testing.T) {
	svc, folders, trades := folderFixture()
	userID := uuid.New()

	folder := &entity.Folder{UserID: userID, Name: "Vintage", Color: "#3B82F6"}
	_ = folders.Create(context.Background(), folder)

	var filed []*entity.Trade
	for i := 0; i < 3; i++ {
		trade := &entity.Trade{UserID: userID, FolderID: &folder.ID}
		_ = trades.Create(context.Background(), trade)
		filed = append(filed, trade)
	}

	if err := svc.DeleteFolder(context.Background(), userID, folder.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := folders.folders[folder.ID]; ok {
		t.Error("folder still present after delete")
	}
	for i, trade := range filed {
		if trade.FolderID != nil {
			t.Errorf("trade %d still filed after folder delete", i)
		}
	}
}

func TestDeleteFolderScopedToOwner(t *testing.T) {
	svc, folders, _ := folderFixture()

	folder := &entity.Folder{UserID: uuid.New(), Name: "Vintage", Color: "#3B82F6"}
	_ = folders.Create(context.Background(), folder)

	err := svc.DeleteFolder(context.Background(), uuid.New(), folder.ID)
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("expected not found for another user, got %v", err)
	}
	if _, ok := folders.folders[folder.ID]; !ok {
		t.Error("another user's delete must not remove the folder")
	}
}
