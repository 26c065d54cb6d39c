package service

import (
	"context"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/entitlement"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/dealflowhq/dealflow-api/pkg/revenuecat"
	"github.com/google/uuid"
)

// EntitlementService resolves feature access for a user by combining the
// server-side profile with the subscription platform's entitlement state.
type EntitlementService struct {
	userRepo      repository.UserRepository
	platform      revenuecat.Client
	entitlementID string
	trialDays     int
}

// NewEntitlementService creates a new entitlement service
func NewEntitlementService(userRepo repository.UserRepository, platform revenuecat.Client, entitlementID string, trialDays int) *EntitlementService {
	return &EntitlementService{
		userRepo:      userRepo,
		platform:      platform,
		entitlementID: entitlementID,
		trialDays:     trialDays,
	}
}

// Resolve derives the current feature-access matrix for a user. A platform
// outage degrades to "no platform entitlement" rather than an error, so a
// pro tier or trial stored server-side keeps working while the platform is
// down.
func (s *EntitlementService) Resolve(ctx context.Context, userID uuid.UUID) (entitlement.Status, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entitlement.Status{}, err
	}
	if user == nil {
		return entitlement.Status{}, apperror.ErrNotFound
	}

	now := time.Now()

	platformActive := false
	if s.platform.IsConfigured() {
		subscriber, err := s.platform.GetSubscriber(ctx, userID.String())
		if err == nil && subscriber != nil {
			platformActive = subscriber.Active(s.entitlementID, now)
		}
	}

	profile := entitlement.Profile{
		Tier:                user.SubscriptionTier,
		SubscriptionExpires: user.SubscriptionExpires,
		TrialEndDate:        user.TrialEndDate,
	}

	return entitlement.Resolve(profile, platformActive, now), nil
}

// CheckFeature resolves the user's status and gates a single feature.
func (s *EntitlementService) CheckFeature(ctx context.Context, userID uuid.UUID, feature entitlement.Feature) (entitlement.Decision, error) {
	status, err := s.Resolve(ctx, userID)
	if err != nil {
		return entitlement.Decision{}, err
	}
	return entitlement.Check(status, feature), nil
}

// ActivateTrial starts the one-shot free trial. A trial can be used exactly
// once per account; a second activation conflicts even after the first
// trial has expired.
func (s *EntitlementService) ActivateTrial(ctx context.Context, userID uuid.UUID) (entitlement.Status, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entitlement.Status{}, err
	}
	if user == nil {
		return entitlement.Status{}, apperror.ErrNotFound
	}

	if user.TrialUsed {
		return entitlement.Status{}, apperror.NewConflictError("Free trial already used")
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, s.trialDays)
	user.TrialEndDate = &trialEnd
	user.TrialUsed = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return entitlement.Status{}, err
	}

	profile := entitlement.Profile{
		Tier:                user.SubscriptionTier,
		SubscriptionExpires: user.SubscriptionExpires,
		TrialEndDate:        user.TrialEndDate,
	}
	return entitlement.Resolve(profile, false, now), nil
}
