package service

import (
	"context"
	"net/http"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/dealflowhq/dealflow-api/pkg/scanner"
	"github.com/google/uuid"
)

// UnlimitedScans is the remaining-count sentinel for users with no quota.
const UnlimitedScans = -1

// ErrScanLimitReached is returned when a free user has exhausted today's quota.
var ErrScanLimitReached = apperror.NewAppError(http.StatusTooManyRequests, "Daily scan limit reached")

// ScanService enforces the daily scan quota and runs card recognition.
type ScanService struct {
	entitlements   *EntitlementService
	usageRepo      repository.ScanUsageRepository
	recognizer     scanner.Client
	freeDailyLimit int
}

// NewScanService creates a new scan service
func NewScanService(entitlements *EntitlementService, usageRepo repository.ScanUsageRepository, recognizer scanner.Client, freeDailyLimit int) *ScanService {
	return &ScanService{
		entitlements:   entitlements,
		usageRepo:      usageRepo,
		recognizer:     recognizer,
		freeDailyLimit: freeDailyLimit,
	}
}

// ScanLimit is the outcome of a quota check. Remaining is UnlimitedScans
// for pro users.
type ScanLimit struct {
	CanScan   bool `json:"can_scan"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
}

// CheckScanLimit reports whether the user may scan right now. Pro users
// bypass the counter entirely. The check fails closed: if the counter
// cannot be read, scanning is denied rather than granted.
func (s *ScanService) CheckScanLimit(ctx context.Context, userID uuid.UUID) (ScanLimit, error) {
	status, err := s.entitlements.Resolve(ctx, userID)
	if err != nil {
		return ScanLimit{CanScan: false, Remaining: 0, Limit: s.freeDailyLimit}, err
	}

	if status.HasUnlimitedScans {
		return ScanLimit{CanScan: true, Remaining: UnlimitedScans, Limit: s.freeDailyLimit}, nil
	}

	count, err := s.usageRepo.CountForDay(ctx, userID, entity.ScanDay(time.Now()))
	if err != nil {
		return ScanLimit{CanScan: false, Remaining: 0, Limit: s.freeDailyLimit}, err
	}

	remaining := s.freeDailyLimit - count
	if remaining < 0 {
		remaining = 0
	}
	return ScanLimit{
		CanScan:   remaining > 0,
		Remaining: remaining,
		Limit:     s.freeDailyLimit,
	}, nil
}

// RecognizeCard checks quota, submits the image to the recognition
// webhook, and on success records the scan against the daily counter.
// Failed recognitions do not consume quota.
func (s *ScanService) RecognizeCard(ctx context.Context, userID uuid.UUID, imageBase64 string) (*scanner.CardData, ScanLimit, error) {
	limit, err := s.CheckScanLimit(ctx, userID)
	if err != nil {
		return nil, limit, err
	}
	if !limit.CanScan {
		return nil, limit, ErrScanLimitReached
	}

	card, err := s.recognizer.Recognize(ctx, imageBase64)
	if err != nil {
		return nil, limit, err
	}

	if limit.Remaining != UnlimitedScans {
		if err := s.usageRepo.Increment(ctx, userID, entity.ScanDay(time.Now())); err != nil {
			// The scan already succeeded; losing one counter tick is
			// preferable to failing the request.
			return card, limit, nil
		}
		limit.Remaining--
		limit.CanScan = limit.Remaining > 0
	}

	return card, limit, nil
}
