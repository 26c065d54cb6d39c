package service

import (
	"context"

	"github.com/dealflowhq/dealflow-api/internal/domain/calculator"
	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default payout percentages applied when a user has no settings row yet.
var (
	DefaultTradePercent = decimal.NewFromInt(90)
	DefaultCashPercent  = decimal.NewFromInt(80)
)

// SettingsService handles the dealer's global payout percentages
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's settings, creating the default row on
// first read so every caller sees a concrete record.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.UserSettings{
		UserID:       userID,
		TradePercent: DefaultTradePercent,
		CashPercent:  DefaultCashPercent,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	UserID       uuid.UUID
	TradePercent *decimal.Decimal
	CashPercent  *decimal.Decimal
}

// UpdateSettings updates the user's global percentages. Values outside
// [0,100] are rejected before anything is written.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	var fieldErrors []apperror.FieldError
	if input.TradePercent != nil && !calculator.ValidPercent(*input.TradePercent) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "trade_percent", Message: "must be between 0 and 100"})
	}
	if input.CashPercent != nil && !calculator.ValidPercent(*input.CashPercent) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cash_percent", Message: "must be between 0 and 100"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.GetSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.TradePercent != nil {
		settings.TradePercent = *input.TradePercent
	}
	if input.CashPercent != nil {
		settings.CashPercent = *input.CashPercent
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
