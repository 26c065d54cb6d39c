package enum

// TransactionType represents how a trade was paid out
type TransactionType string

const (
	TransactionTypeCash  TransactionType = "cash"
	TransactionTypeTrade TransactionType = "trade"
)

// IsValid reports whether the value is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeCash, TransactionTypeTrade:
		return true
	}
	return false
}
