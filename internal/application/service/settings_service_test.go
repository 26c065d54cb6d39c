package service

import (
	"context"
	"testing"

	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGetSettingsCreatesDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	userID := uuid.New()

	settings, err := svc.GetSettings(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.TradePercent.Equal(decimal.NewFromInt(90)) {
		t.Errorf("default trade percent: got %s, want 90", settings.TradePercent)
	}
	if !settings.CashPercent.Equal(decimal.NewFromInt(80)) {
		t.Errorf("default cash percent: got %s, want 80", settings.CashPercent)
	}
	if repo.settings[userID] == nil {
		t.Error("expected the default row to be persisted on first read")
	}

	again, err := svc.GetSettings(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != settings.ID {
		t.Error("second read must return the same row, not create another")
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	userID := uuid.New()

	trade := decimal.NewFromInt(85)
	settings, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		UserID:       userID,
		TradePercent: &trade,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.TradePercent.Equal(trade) {
		t.Errorf("trade percent not updated: got %s", settings.TradePercent)
	}
	if !settings.CashPercent.Equal(decimal.NewFromInt(80)) {
		t.Errorf("cash percent must keep its default, got %s", settings.CashPercent)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	userID := uuid.New()

	over := decimal.NewFromInt(101)
	negative := decimal.NewFromInt(-1)
	_, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		UserID:       userID,
		TradePercent: &over,
		CashPercent:  &negative,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("expected unprocessable entity, got %d", appErr.Code)
	}
	if len(appErr.Errors) != 2 {
		t.Errorf("expected both fields flagged, got %+v", appErr.Errors)
	}
	if repo.settings[userID] != nil {
		t.Error("rejected update must not create or write a settings row")
	}
}

func TestUpdateSettingsBoundaries(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	userID := uuid.New()

	zero := decimal.NewFromInt(0)
	hundred := decimal.NewFromInt(100)
	settings, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		UserID:       userID,
		TradePercent: &hundred,
		CashPercent:  &zero,
	})
	if err != nil {
		t.Fatalf("0 and 100 are valid percentages: %v", err)
	}
	if !settings.TradePercent.Equal(hundred) || !settings.CashPercent.Equal(zero) {
		t.Errorf("boundary update not applied: %+v", settings)
	}
}
