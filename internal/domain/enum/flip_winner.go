package enum

// FlipWinner represents which side won a coin flip negotiation
type FlipWinner string

const (
	FlipWinnerBuyer  FlipWinner = "buyer"
	FlipWinnerSeller FlipWinner = "seller"
)

// IsValid reports whether the value is a known flip winner
func (w FlipWinner) IsValid() bool {
	switch w {
	case FlipWinnerBuyer, FlipWinnerSeller:
		return true
	}
	return false
}
