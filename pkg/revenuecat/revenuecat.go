package revenuecat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.revenuecat.com/v1"

var (
	// ErrNotConfigured means no API key was configured.
	ErrNotConfigured = errors.New("revenuecat: API key is not configured")
)

// Entitlement describes one entitlement on a subscriber.
type Entitlement struct {
	ExpiresDate       *time.Time `json:"expires_date"`
	PurchaseDate      *time.Time `json:"purchase_date"`
	ProductIdentifier string     `json:"product_identifier"`
}

// SubscriberInfo is the subset of the subscriber payload this service uses.
type SubscriberInfo struct {
	Entitlements map[string]Entitlement
}

// Active reports whether the named entitlement is currently active.
func (s *SubscriberInfo) Active(entitlementID string, now time.Time) bool {
	ent, ok := s.Entitlements[entitlementID]
	if !ok {
		return false
	}
	// A missing expiry means a non-expiring (e.g. lifetime) entitlement.
	return ent.ExpiresDate == nil || ent.ExpiresDate.After(now)
}

// Client fetches subscriber state from the subscription platform.
type Client interface {
	// GetSubscriber returns the subscriber record for an app user ID.
	GetSubscriber(ctx context.Context, appUserID string) (*SubscriberInfo, error)
	// IsConfigured returns true if the client can reach the platform.
	IsConfigured() bool
}

type restClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a RevenueCat REST API client.
func NewClient(apiKey string) Client {
	return &restClient{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *restClient) IsConfigured() bool {
	return c.apiKey != ""
}

func (c *restClient) GetSubscriber(ctx context.Context, appUserID string) (*SubscriberInfo, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/subscribers/%s", c.baseURL, url.PathEscape(appUserID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("revenuecat: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("revenuecat: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("revenuecat: API returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Subscriber struct {
			Entitlements map[string]struct {
				ExpiresDate       *time.Time `json:"expires_date"`
				PurchaseDate      *time.Time `json:"purchase_date"`
				ProductIdentifier string     `json:"product_identifier"`
			} `json:"entitlements"`
		} `json:"subscriber"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("revenuecat: invalid response: %w", err)
	}

	info := &SubscriberInfo{Entitlements: make(map[string]Entitlement, len(payload.Subscriber.Entitlements))}
	for id, ent := range payload.Subscriber.Entitlements {
		info.Entitlements[id] = Entitlement{
			ExpiresDate:       ent.ExpiresDate,
			PurchaseDate:      ent.PurchaseDate,
			ProductIdentifier: ent.ProductIdentifier,
		}
	}

	return info, nil
}

// --- Null client (used when no API key is configured) ---

type nullClient struct{}

// NewNullClient creates a client that reports every subscriber as having no
// platform entitlements. Server-side tier and trial state still apply.
func NewNullClient() Client {
	return nullClient{}
}

func (nullClient) IsConfigured() bool {
	return false
}

func (nullClient) GetSubscriber(ctx context.Context, appUserID string) (*SubscriberInfo, error) {
	return &SubscriberInfo{Entitlements: map[string]Entitlement{}}, nil
}
