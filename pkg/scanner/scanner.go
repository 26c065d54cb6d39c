package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrNotRecognized means the webhook answered but without usable card data.
	// It is an advisory for the caller, not a transport failure.
	ErrNotRecognized = errors.New("scanner: card not recognized")
	// ErrNotConfigured means no webhook URL was configured.
	ErrNotConfigured = errors.New("scanner: recognition webhook is not configured")
)

// TCGPlayerPrices holds marketplace pricing for a recognized card.
type TCGPlayerPrices struct {
	MarketPrice     float64  `json:"marketPrice"`
	LowListingPrice *float64 `json:"lowListingPrice,omitempty"`
	LatestSalePrice *float64 `json:"latestSalePrice,omitempty"`
	LatestSaleDate  *string  `json:"latestSaleDate,omitempty"`
	URL             *string  `json:"url,omitempty"`
}

// GradedSale is a single recent graded-card sale.
type GradedSale struct {
	Price float64 `json:"price"`
	Date  string  `json:"date"`
	Title string  `json:"title"`
	URL   string  `json:"url"`
}

// EBayGraded holds graded-market statistics for a recognized card.
type EBayGraded struct {
	TotalFound   *int         `json:"totalFound,omitempty"`
	HighestPrice *float64     `json:"highestPrice,omitempty"`
	LowestPrice  *float64     `json:"lowestPrice,omitempty"`
	AveragePrice *float64     `json:"averagePrice,omitempty"`
	RecentSales  []GradedSale `json:"recentSales,omitempty"`
}

// CardData is the recognition result returned by the webhook.
type CardData struct {
	CardName  string           `json:"cardName"`
	UpdatedAt string           `json:"updatedAt"`
	TCGPlayer *TCGPlayerPrices `json:"tcgplayer"`
	EBay      *EBayGraded      `json:"ebayGraded,omitempty"`
}

// Client identifies trading cards from a captured image.
type Client interface {
	// Recognize submits a base64-encoded image and returns the recognized card.
	// Returns ErrNotRecognized when the webhook responds without usable data.
	Recognize(ctx context.Context, imageBase64 string) (*CardData, error)
	// IsConfigured returns true if a recognition endpoint is available.
	IsConfigured() bool
}

// --- Webhook client (posts the image to an external recognition endpoint) ---

type webhookClient struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
}

// NewWebhookClient creates a recognition client backed by an HTTP webhook.
// The timeout bounds the whole request; the upstream pipeline can be slow.
func NewWebhookClient(url string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &webhookClient{
		url:        url,
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

func (c *webhookClient) IsConfigured() bool {
	return c.url != ""
}

func (c *webhookClient) Recognize(ctx context.Context, imageBase64 string) (*CardData, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{"imageBase64": imageBase64})
	if err != nil {
		return nil, fmt.Errorf("scanner: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("scanner: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scanner: recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("scanner: webhook returned %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scanner: failed to read response: %w", err)
	}

	return ParseResponse(body)
}

// ParseResponse decodes a webhook response body into CardData.
// Some webhook pipelines wrap the result in a one-element array; both shapes
// are accepted. A response missing cardName or tcgplayer.marketPrice yields
// ErrNotRecognized.
func ParseResponse(body []byte) (*CardData, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("scanner: empty response from webhook")
	}

	if trimmed[0] == '[' {
		var wrapped []json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("scanner: invalid JSON response: %w", err)
		}
		if len(wrapped) == 0 {
			return nil, ErrNotRecognized
		}
		trimmed = wrapped[0]
	}

	var card CardData
	if err := json.Unmarshal(trimmed, &card); err != nil {
		return nil, fmt.Errorf("scanner: invalid JSON response: %w", err)
	}

	if card.CardName == "" || card.TCGPlayer == nil {
		return nil, ErrNotRecognized
	}

	return &card, nil
}

// --- Null client (used when no webhook URL is configured) ---

type nullClient struct{}

// NewNullClient creates a client that rejects every recognition request.
func NewNullClient() Client {
	return nullClient{}
}

func (nullClient) IsConfigured() bool {
	return false
}

func (nullClient) Recognize(ctx context.Context, imageBase64 string) (*CardData, error) {
	return nil, ErrNotConfigured
}
