package request

// ScanRequest represents a card recognition request
type ScanRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}
