package enum

// SubscriptionTier represents the server-side subscription tier of a user
type SubscriptionTier string

const (
	SubscriptionTierFree SubscriptionTier = "free"
	SubscriptionTierPro  SubscriptionTier = "pro"
)

// IsValid reports whether the value is a known subscription tier
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionTierFree, SubscriptionTierPro:
		return true
	}
	return false
}
