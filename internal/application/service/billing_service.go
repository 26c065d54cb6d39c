package service

import (
	"context"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/google/uuid"
)

// Subscription platform webhook event types.
const (
	EventInitialPurchase = "INITIAL_PURCHASE"
	EventRenewal         = "RENEWAL"
	EventUncancellation  = "UNCANCELLATION"
	EventCancellation    = "CANCELLATION"
	EventExpiration      = "EXPIRATION"
	EventBillingIssue    = "BILLING_ISSUE"
	EventProductChange   = "PRODUCT_CHANGE"
)

// BillingService applies subscription platform webhook events to user
// records. The platform is the source of truth for paid state; this
// service only mirrors it into the users table.
type BillingService struct {
	userRepo repository.UserRepository
}

// NewBillingService creates a new billing service
func NewBillingService(userRepo repository.UserRepository) *BillingService {
	return &BillingService{userRepo: userRepo}
}

// WebhookEvent is the subset of a platform webhook payload this service acts on.
type WebhookEvent struct {
	Type           string
	AppUserID      string
	ExpirationAtMs int64
}

// HandleWebhookEvent maps a platform event onto the user's subscription
// fields. Purchase-shaped events grant pro; a cancellation keeps pro until
// the paid-through date; expiration and billing issues drop to free
// immediately. Unknown event types are acknowledged without any change so
// the platform does not retry them forever.
func (s *BillingService) HandleWebhookEvent(ctx context.Context, event *WebhookEvent) error {
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		return apperror.NewBadRequestError("Event app_user_id is not a valid user ID")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	var expires *time.Time
	if event.ExpirationAtMs > 0 {
		t := time.UnixMilli(event.ExpirationAtMs).UTC()
		expires = &t
	}

	switch event.Type {
	case EventInitialPurchase, EventRenewal, EventUncancellation, EventProductChange:
		return s.userRepo.UpdateSubscription(ctx, userID, enum.SubscriptionTierPro, expires)
	case EventCancellation:
		// Access continues until the paid-through date; entitlement
		// resolution handles the eventual lapse.
		return s.userRepo.UpdateSubscription(ctx, userID, enum.SubscriptionTierPro, expires)
	case EventExpiration, EventBillingIssue:
		return s.userRepo.UpdateSubscription(ctx, userID, enum.SubscriptionTierFree, nil)
	default:
		return nil
	}
}
