package entitlement

// Feature is a gated product capability.
type Feature string

const (
	FeatureScan          Feature = "scan"
	FeatureHistory       Feature = "history"
	FeatureCustomPercent Feature = "custom_percent"
	FeatureFolder        Feature = "folder"
)

// Decision is the outcome of a capability check. A denial carries the
// feature so the HTTP layer can open the right upsell prompt instead of a
// bare error.
type Decision struct {
	Allowed bool    `json:"allowed"`
	Feature Feature `json:"feature"`
	Upsell  bool    `json:"upsell"`
}

// Check gates a feature against a resolved status. Every gated action goes
// through this single function rather than duplicating the boolean check
// at each call site.
func Check(status Status, feature Feature) Decision {
	allowed := false
	switch feature {
	case FeatureScan:
		allowed = status.HasUnlimitedScans
	case FeatureHistory:
		allowed = status.CanSaveHistory
	case FeatureCustomPercent:
		allowed = status.CanUseCustomPercentages
	case FeatureFolder:
		allowed = status.CanUseFolders
	}

	return Decision{
		Allowed: allowed,
		Feature: feature,
		Upsell:  !allowed,
	}
}
