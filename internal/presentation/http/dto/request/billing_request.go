package request

// WebhookEventPayload is the event envelope posted by the subscription
// platform. Only the fields this service acts on are declared.
type WebhookEventPayload struct {
	Event struct {
		Type           string `json:"type"`
		AppUserID      string `json:"app_user_id"`
		ExpirationAtMs int64  `json:"expiration_at_ms"`
	} `json:"event"`
}
