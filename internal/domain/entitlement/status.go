package entitlement

import (
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
)

// Profile is the subscription-relevant slice of a user record. Optional
// fields that are absent or stale simply grant nothing.
type Profile struct {
	Tier                enum.SubscriptionTier
	SubscriptionExpires *time.Time
	TrialEndDate        *time.Time
}

// Status is the derived feature-access matrix for a user. The product is
// single-tier, so all four capabilities track IsPro; they are kept as
// separate fields because callers gate on capabilities, not on the tier.
type Status struct {
	IsPro                   bool       `json:"is_pro"`
	HasUnlimitedScans       bool       `json:"has_unlimited_scans"`
	CanSaveHistory          bool       `json:"can_save_history"`
	CanUseCustomPercentages bool       `json:"can_use_custom_percentages"`
	CanUseFolders           bool       `json:"can_use_folders"`
	OnTrial                 bool       `json:"on_trial"`
	TrialEndsAt             *time.Time `json:"trial_ends_at,omitempty"`
}

// Resolve derives the feature-access matrix from the server-side profile and
// the subscription platform's entitlement flag. Pure function: any one of
// trial, platform entitlement, or an unexpired pro tier grants full access.
// An expired trial is inert. A pro tier with no expiry never expires.
func Resolve(profile Profile, platformEntitlementActive bool, now time.Time) Status {
	onTrial := profile.TrialEndDate != nil && profile.TrialEndDate.After(now)

	tierActive := profile.Tier == enum.SubscriptionTierPro &&
		(profile.SubscriptionExpires == nil || profile.SubscriptionExpires.After(now))

	isPro := onTrial || platformEntitlementActive || tierActive

	status := Status{
		IsPro:                   isPro,
		HasUnlimitedScans:       isPro,
		CanSaveHistory:          isPro,
		CanUseCustomPercentages: isPro,
		CanUseFolders:           isPro,
		OnTrial:                 onTrial,
	}
	if onTrial {
		status.TrialEndsAt = profile.TrialEndDate
	}
	return status
}
