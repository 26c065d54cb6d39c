package service

import (
	"context"
	"testing"

	"github.com/dealflowhq/dealflow-api/internal/domain/calculator"
	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func tradeFixture() (*TradeService, *fakeTradeRepo, *fakeFolderRepo) {
	trades := newFakeTradeRepo()
	folders := newFakeFolderRepo(trades)
	return NewTradeService(trades, folders), trades, folders
}

func saveInput(userID uuid.UUID) *SaveTradeInput {
	return &SaveTradeInput{
		UserID: userID,
		Items: []calculator.LineItem{
			{ID: uuid.New(), Name: "Charizard", Price: decimal.RequireFromString("100.00")},
			{ID: uuid.New(), Name: "Blastoise", Price: decimal.RequireFromString("40.00")},
		},
		TradePercent:    decimal.RequireFromString("90"),
		CashPercent:     decimal.RequireFromString("80"),
		TransactionType: enum.TransactionTypeCash,
	}
}

func TestSaveTradeRecomputesTotals(t *testing.T) {
	svc, _, _ := tradeFixture()
	userID := uuid.New()

	trade, err := svc.SaveTrade(context.Background(), saveInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !trade.ItemTotal.Equal(decimal.RequireFromString("140.00")) {
		t.Errorf("item total: got %s, want 140.00", trade.ItemTotal)
	}
	if !trade.TradeTotal.Equal(decimal.RequireFromString("126.00")) {
		t.Errorf("trade total: got %s, want 126.00", trade.TradeTotal)
	}
	if !trade.CashTotal.Equal(decimal.RequireFromString("112.00")) {
		t.Errorf("cash total: got %s, want 112.00", trade.CashTotal)
	}
}

func TestSaveTradeItemsRoundTrip(t *testing.T) {
	svc, _, _ := tradeFixture()
	userID := uuid.New()
	input := saveInput(userID)
	override := decimal.RequireFromString("50")
	input.Items[0].CustomTradePercent = &override

	trade, err := svc.SaveTrade(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.TradeItems(trade)
	if err != nil {
		t.Fatalf("decoding items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Charizard" || !items[0].Price.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("first item did not survive the round trip: %+v", items[0])
	}
	if items[0].CustomTradePercent == nil || !items[0].CustomTradePercent.Equal(override) {
		t.Error("per-item override did not survive the round trip")
	}
	if items[1].CustomTradePercent != nil {
		t.Error("second item must keep inherited percentages")
	}
}

func TestSaveTradeValidation(t *testing.T) {
	svc, _, _ := tradeFixture()
	userID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*SaveTradeInput)
	}{
		{"empty items", func(in *SaveTradeInput) { in.Items = nil }},
		{"bad transaction type", func(in *SaveTradeInput) { in.TransactionType = "loan" }},
		{"trade percent above 100", func(in *SaveTradeInput) { in.TradePercent = decimal.RequireFromString("101") }},
		{"negative cash percent", func(in *SaveTradeInput) { in.CashPercent = decimal.RequireFromString("-1") }},
		{"negative item price", func(in *SaveTradeInput) { in.Items[0].Price = decimal.RequireFromString("-5") }},
		{"bad item override", func(in *SaveTradeInput) {
			bad := decimal.RequireFromString("150")
			in.Items[0].CustomCashPercent = &bad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := saveInput(userID)
			tt.mutate(input)
			_, err := svc.SaveTrade(context.Background(), input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if apperror.GetAppError(err).Code != 400 {
				t.Errorf("expected bad request, got %d", apperror.GetAppError(err).Code)
			}
		})
	}
}

func TestSaveTradeRejectsForeignFolder(t *testing.T) {
	svc, _, folders := tradeFixture()
	userID := uuid.New()

	other := &entity.Folder{UserID: uuid.New(), Name: "Not yours"}
	_ = folders.Create(context.Background(), other)

	input := saveInput(userID)
	input.FolderID = &other.ID

	_, err := svc.SaveTrade(context.Background(), input)
	if err == nil {
		t.Fatal("expected error for another user's folder")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("expected not found, got %d", apperror.GetAppError(err).Code)
	}
}

func TestDeleteTrade(t *testing.T) {
	svc, trades, _ := tradeFixture()
	userID := uuid.New()

	trade, err := svc.SaveTrade(context.Background(), saveInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteTrade(context.Background(), userID, trade.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := trades.trades[trade.ID]; ok {
		t.Error("trade still present after delete")
	}

	err = svc.DeleteTrade(context.Background(), userID, trade.ID)
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestDeleteTradeScopedToOwner(t *testing.T) {
	svc, trades, _ := tradeFixture()
	userID := uuid.New()

	trade, err := svc.SaveTrade(context.Background(), saveInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = svc.DeleteTrade(context.Background(), uuid.New(), trade.ID)
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("expected not found for another user, got %v", err)
	}
	if _, ok := trades.trades[trade.ID]; !ok {
		t.Error("another user's delete must not remove the trade")
	}
}

func TestMoveToFolder(t *testing.T) {
	svc, _, folders := tradeFixture()
	userID := uuid.New()

	folder := &entity.Folder{UserID: userID, Name: "Vintage"}
	_ = folders.Create(context.Background(), folder)

	trade, err := svc.SaveTrade(context.Background(), saveInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved, err := svc.MoveToFolder(context.Background(), userID, trade.ID, &folder.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.FolderID == nil || *moved.FolderID != folder.ID {
		t.Error("trade not moved into the folder")
	}

	moved, err = svc.MoveToFolder(context.Background(), userID, trade.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.FolderID != nil {
		t.Error("nil folder must move the trade back to uncategorized")
	}
}

func TestMoveToFolderRejectsForeignFolder(t *testing.T) {
	svc, _, folders := tradeFixture()
	userID := uuid.New()

	other := &entity.Folder{UserID: uuid.New(), Name: "Not yours"}
	_ = folders.Create(context.Background(), other)

	trade, err := svc.SaveTrade(context.Background(), saveInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.MoveToFolder(context.Background(), userID, trade.ID, &other.ID)
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("expected not found, got %v", err)
	}
}
