package handler

import (
	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// EntitlementHandler handles subscription status HTTP requests
type EntitlementHandler struct {
	entitlementService *service.EntitlementService
}

// NewEntitlementHandler creates a new entitlement handler
func NewEntitlementHandler(entitlementService *service.EntitlementService) *EntitlementHandler {
	return &EntitlementHandler{entitlementService: entitlementService}
}

// GetStatus returns the user's resolved feature-access matrix
func (h *EntitlementHandler) GetStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	status, err := h.entitlementService.Resolve(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription status retrieved successfully", status)
}

// ActivateTrial starts the one-shot free trial
func (h *EntitlementHandler) ActivateTrial(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	status, err := h.entitlementService.ActivateTrial(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trial activated successfully", status)
}
