package handler

import (
	"strconv"

	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/request"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CoinFlipHandler handles coin flip HTTP requests
type CoinFlipHandler struct {
	flipService *service.CoinFlipService
}

// NewCoinFlipHandler creates a new coin flip handler
func NewCoinFlipHandler(flipService *service.CoinFlipService) *CoinFlipHandler {
	return &CoinFlipHandler{flipService: flipService}
}

// RecordFlip logs a coin flip outcome
func (h *CoinFlipHandler) RecordFlip(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordFlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	flip, err := h.flipService.RecordFlip(c.Request.Context(), &service.RecordFlipInput{
		UserID:     *userID,
		BasePrice:  req.BasePrice,
		WinPrice:   req.WinPrice,
		LosePrice:  req.LosePrice,
		Winner:     enum.FlipWinner(req.Winner),
		FinalPrice: req.FinalPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Coin flip recorded successfully", flip)
}

// ListFlips returns the user's recent coin flips
func (h *CoinFlipHandler) ListFlips(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	flips, err := h.flipService.RecentFlips(c.Request.Context(), *userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coin flips retrieved successfully", flips)
}
