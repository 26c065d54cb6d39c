package middleware

import (
	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/domain/entitlement"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireFeature gates a route behind a pro capability. Denials return a
// 403 carrying the feature name so clients can open the matching upsell
// prompt.
func RequireFeature(entitlements *service.EntitlementService, feature entitlement.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}
		userID, ok := userIDVal.(uuid.UUID)
		if !ok {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		decision, err := entitlements.CheckFeature(c.Request.Context(), userID, feature)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		if !decision.Allowed {
			response.UpsellRequired(c, string(decision.Feature))
			c.Abort()
			return
		}

		c.Next()
	}
}
