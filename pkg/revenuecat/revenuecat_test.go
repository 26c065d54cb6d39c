package revenuecat

import (
	"testing"
	"time"
)

func TestSubscriberActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name    string
		expires *time.Time
		want    bool
	}{
		{"nil expiry is non-expiring", nil, true},
		{"future expiry active", &future, true},
		{"past expiry inactive", &past, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := &SubscriberInfo{Entitlements: map[string]Entitlement{
				"DealFlow Pro": {ExpiresDate: tc.expires},
			}}
			if got := info.Active("DealFlow Pro", now); got != tc.want {
				t.Errorf("Active = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSubscriberActiveUnknownEntitlement(t *testing.T) {
	info := &SubscriberInfo{Entitlements: map[string]Entitlement{}}
	if info.Active("DealFlow Pro", time.Now()) {
		t.Error("missing entitlement must be inactive")
	}
}
