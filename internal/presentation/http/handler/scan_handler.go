package handler

import (
	"errors"

	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/request"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/dealflowhq/dealflow-api/pkg/scanner"
	"github.com/gin-gonic/gin"
)

// ScanHandler handles card recognition HTTP requests
type ScanHandler struct {
	scanService *service.ScanService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanService *service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// GetScanLimit reports the user's remaining scans for today
func (h *ScanHandler) GetScanLimit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit, err := h.scanService.CheckScanLimit(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Scan limit retrieved successfully", limit)
}

// Scan submits a card image for recognition
func (h *ScanHandler) Scan(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	card, limit, err := h.scanService.RecognizeCard(c.Request.Context(), *userID, req.ImageBase64)
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrNotRecognized):
			// An unrecognizable photo is an answer, not a failure. No
			// quota is consumed for it either.
			response.OK(c, "Card could not be recognized", gin.H{
				"recognized": false,
				"limit":      limit,
			})
		case errors.Is(err, scanner.ErrNotConfigured):
			response.ErrorWithCode(c, 503, "Card recognition is not available")
		default:
			response.Error(c, err)
		}
		return
	}

	response.OK(c, "Card recognized successfully", gin.H{
		"recognized": true,
		"card":       card,
		"limit":      limit,
	})
}
