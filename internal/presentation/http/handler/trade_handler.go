package handler

import (
	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/domain/calculator"
	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/request"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/dealflowhq/dealflow-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TradeHandler handles trade snapshot HTTP requests
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// SaveTrade freezes a calculator session into a saved trade
func (h *TradeHandler) SaveTrade(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]calculator.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		id := it.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		items = append(items, calculator.LineItem{
			ID:                 id,
			Name:               it.CardName,
			Price:              it.Price,
			CustomTradePercent: it.CustomTradePercent,
			CustomCashPercent:  it.CustomCashPercent,
		})
	}

	trade, err := h.tradeService.SaveTrade(c.Request.Context(), &service.SaveTradeInput{
		UserID:          *userID,
		CustomerName:    req.CustomerName,
		Items:           items,
		TradePercent:    req.TradePercent,
		CashPercent:     req.CashPercent,
		TransactionType: enum.TransactionType(req.TransactionType),
		FolderID:        req.FolderID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Trade saved successfully", trade)
}

// ListTrades lists the user's trades, optionally filtered by folder
func (h *TradeHandler) ListTrades(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	var folderID *uuid.UUID
	if raw := c.Query("folder_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid folder ID")
			return
		}
		folderID = &id
	}

	result, err := h.tradeService.ListTrades(c.Request.Context(), *userID, folderID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Trades retrieved successfully", result)
}

// GetTrade retrieves a single trade
func (h *TradeHandler) GetTrade(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trade ID")
		return
	}

	trade, err := h.tradeService.GetTrade(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trade retrieved successfully", trade)
}

// DeleteTrade permanently deletes a trade
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trade ID")
		return
	}

	if err := h.tradeService.DeleteTrade(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trade deleted successfully", nil)
}

// MoveTrade moves a trade into or out of a folder
func (h *TradeHandler) MoveTrade(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trade ID")
		return
	}

	var req request.MoveTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trade, err := h.tradeService.MoveToFolder(c.Request.Context(), *userID, id, req.FolderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trade moved successfully", trade)
}
