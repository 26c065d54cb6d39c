package handler

import (
	"crypto/subtle"

	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/request"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// WebhookHandler handles subscription platform webhook deliveries
type WebhookHandler struct {
	billingService *service.BillingService
	webhookSecret  string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(billingService *service.BillingService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		billingService: billingService,
		webhookSecret:  webhookSecret,
	}
}

// HandleSubscriptionEvent applies a platform billing event to the user's
// subscription record. The Authorization header must carry the shared
// webhook secret configured in the platform dashboard.
func (h *WebhookHandler) HandleSubscriptionEvent(c *gin.Context) {
	if h.webhookSecret == "" {
		response.ErrorWithCode(c, 503, "Webhook is not configured")
		return
	}
	auth := c.GetHeader("Authorization")
	if subtle.ConstantTimeCompare([]byte(auth), []byte(h.webhookSecret)) != 1 {
		response.Unauthorized(c, "Invalid webhook credentials")
		return
	}

	var payload request.WebhookEventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid webhook payload")
		return
	}

	err := h.billingService.HandleWebhookEvent(c.Request.Context(), &service.WebhookEvent{
		Type:           payload.Event.Type,
		AppUserID:      payload.Event.AppUserID,
		ExpirationAtMs: payload.Event.ExpirationAtMs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event processed", nil)
}
