package service

import (
	"context"
	"encoding/json"

	"github.com/dealflowhq/dealflow-api/internal/domain/calculator"
	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/dealflowhq/dealflow-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TradeService handles saving and browsing trade snapshots
type TradeService struct {
	tradeRepo  repository.TradeRepository
	folderRepo repository.FolderRepository
}

// NewTradeService creates a new trade service
func NewTradeService(tradeRepo repository.TradeRepository, folderRepo repository.FolderRepository) *TradeService {
	return &TradeService{
		tradeRepo:  tradeRepo,
		folderRepo: folderRepo,
	}
}

// SaveTradeInput represents the save trade input
type SaveTradeInput struct {
	UserID          uuid.UUID
	CustomerName    *string
	Items           []calculator.LineItem
	TradePercent    decimal.Decimal
	CashPercent     decimal.Decimal
	TransactionType enum.TransactionType
	FolderID        *uuid.UUID
}

// SaveTrade freezes a calculator session into a trade snapshot. Totals are
// recomputed server-side from the submitted items, so a client cannot store
// totals that disagree with the item math.
func (s *TradeService) SaveTrade(ctx context.Context, input *SaveTradeInput) (*entity.Trade, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A trade must contain at least one item")
	}
	if !input.TransactionType.IsValid() {
		return nil, apperror.NewBadRequestError("Transaction type must be cash or trade")
	}
	if !calculator.ValidPercent(input.TradePercent) || !calculator.ValidPercent(input.CashPercent) {
		return nil, apperror.NewBadRequestError("Percentages must be between 0 and 100")
	}
	for i := range input.Items {
		if input.Items[i].Price.IsNegative() {
			return nil, apperror.NewBadRequestError("Item prices cannot be negative")
		}
		if input.Items[i].CustomTradePercent != nil && !calculator.ValidPercent(*input.Items[i].CustomTradePercent) {
			return nil, apperror.NewBadRequestError("Percentages must be between 0 and 100")
		}
		if input.Items[i].CustomCashPercent != nil && !calculator.ValidPercent(*input.Items[i].CustomCashPercent) {
			return nil, apperror.NewBadRequestError("Percentages must be between 0 and 100")
		}
	}

	if input.FolderID != nil {
		folder, err := s.folderRepo.GetByID(ctx, input.UserID, *input.FolderID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, apperror.NewNotFoundError("Folder")
		}
	}

	totals := calculator.ComputeTotals(input.Items, input.TradePercent, input.CashPercent)

	itemsJSON, err := json.Marshal(input.Items)
	if err != nil {
		return nil, err
	}

	trade := &entity.Trade{
		UserID:          input.UserID,
		CustomerName:    input.CustomerName,
		Items:           datatypes.JSON(itemsJSON),
		ItemTotal:       totals.ItemTotal,
		TradeTotal:      totals.TradeTotal,
		CashTotal:       totals.CashTotal,
		TradePercent:    input.TradePercent,
		CashPercent:     input.CashPercent,
		TransactionType: input.TransactionType,
		FolderID:        input.FolderID,
	}

	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		return nil, err
	}

	return trade, nil
}

// GetTrade retrieves one of the user's trades by ID
func (s *TradeService) GetTrade(ctx context.Context, userID, id uuid.UUID) (*entity.Trade, error) {
	trade, err := s.tradeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, apperror.NewNotFoundError("Trade")
	}
	return trade, nil
}

// ListTrades lists the user's trades, optionally filtered to one folder
func (s *TradeService) ListTrades(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Trade], error) {
	trades, total, err := s.tradeRepo.List(ctx, userID, folderID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(trades, pag), nil
}

// DeleteTrade permanently deletes one of the user's trades
func (s *TradeService) DeleteTrade(ctx context.Context, userID, id uuid.UUID) error {
	trade, err := s.tradeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if trade == nil {
		return apperror.NewNotFoundError("Trade")
	}
	return s.tradeRepo.Delete(ctx, userID, id)
}

// MoveToFolder moves a trade into a folder, or back to uncategorized when
// folderID is nil. Folder ownership is verified before the move.
func (s *TradeService) MoveToFolder(ctx context.Context, userID, tradeID uuid.UUID, folderID *uuid.UUID) (*entity.Trade, error) {
	trade, err := s.tradeRepo.GetByID(ctx, userID, tradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, apperror.NewNotFoundError("Trade")
	}

	if folderID != nil {
		folder, err := s.folderRepo.GetByID(ctx, userID, *folderID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, apperror.NewNotFoundError("Folder")
		}
	}

	if err := s.tradeRepo.UpdateFolder(ctx, userID, tradeID, folderID); err != nil {
		return nil, err
	}

	trade.FolderID = folderID
	return trade, nil
}

// TradeItems decodes the frozen item snapshot of a trade
func (s *TradeService) TradeItems(trade *entity.Trade) ([]calculator.LineItem, error) {
	var items []calculator.LineItem
	if err := json.Unmarshal(trade.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}
