package repository

import (
	"context"

	"github.com/google/uuid"
)

// ScanUsageRepository defines the interface for the daily scan counter.
// The counter is the server-side authority for free-tier quota; day keys
// are UTC dates.
type ScanUsageRepository interface {
	// CountForDay returns the number of scans recorded for the user on the
	// given day. A missing row counts as zero.
	CountForDay(ctx context.Context, userID uuid.UUID, day string) (int, error)
	// Increment atomically bumps the counter for the user and day, creating
	// the row if needed.
	Increment(ctx context.Context, userID uuid.UUID, day string) error
}
